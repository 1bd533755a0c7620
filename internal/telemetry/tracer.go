package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Common attribute keys for netcode and extractor operations.
// These follow OpenTelemetry semantic conventions where applicable.
const (
	// ========================================================================
	// Client attributes
	// ========================================================================
	AttrClientIP   = "client.ip"
	AttrClientAddr = "client.address"
	AttrClientPort = "client.port"
	AttrClientHost = "client.host"

	// ========================================================================
	// Connection attributes (pkg/netcode)
	// ========================================================================
	AttrConnRole      = "conn.role" // client or server
	AttrConnRemote    = "conn.remote_addr"
	AttrFrameWireID   = "frame.wire_id"
	AttrFrameLength   = "frame.length"
	AttrFrameKind     = "frame.kind"
	AttrPolicyRequest = "conn.policy_request"

	// ========================================================================
	// Packet/protocol attributes (pkg/protocol)
	// ========================================================================
	AttrPacketKind = "packet.kind"
	AttrPacketSide = "packet.side"

	// ========================================================================
	// Extractor attributes (pkg/extractor, pkg/avm2, pkg/swf)
	// ========================================================================
	AttrExtractorBuild     = "extractor.build_version"
	AttrExtractorClassName = "extractor.class_name"
	AttrExtractorMappedN   = "extractor.mapped_count"
	AttrExtractorUnmappedN = "extractor.unmapped_count"

	// ========================================================================
	// Cache attributes
	// ========================================================================
	AttrCacheHit    = "cache.hit"
	AttrCacheSource = "cache.source"
	AttrCacheState  = "cache.state"
	AttrCacheSize   = "cache.size"

	// ========================================================================
	// Storage backend attributes (pkg/clientstore, pkg/mappingstore, pkg/auditstore)
	// ========================================================================
	AttrContentID = "content.id"
	AttrStoreName = "store.name"
	AttrStoreType = "store.type"
	AttrBucket    = "storage.bucket"
	AttrKey       = "storage.key"
	AttrRegion    = "storage.region"
)

// Span names for operations.
const (
	// ========================================================================
	// Connection lifecycle spans
	// ========================================================================
	SpanConnAccept = "conn.accept"
	SpanConnDial   = "conn.dial"
	SpanConnClose  = "conn.close"

	// ========================================================================
	// Frame codec spans
	// ========================================================================
	SpanFrameRead  = "frame.read"
	SpanFrameWrite = "frame.write"

	// ========================================================================
	// Extractor spans
	// ========================================================================
	SpanExtractorParse      = "extractor.parse"
	SpanExtractorMappings   = "extractor.extract_mappings"
	SpanExtractorParameters = "extractor.extract_parameters"

	// ========================================================================
	// Internal storage operations
	// ========================================================================
	SpanCacheLookup  = "cache.lookup"
	SpanCacheWrite   = "cache.write"
	SpanContentRead  = "content.read"
	SpanContentWrite = "content.write"
)

// ClientIP returns an attribute for client IP address.
func ClientIP(ip string) attribute.KeyValue {
	return attribute.String(AttrClientIP, ip)
}

// ClientAddr returns an attribute for full client address.
func ClientAddr(addr string) attribute.KeyValue {
	return attribute.String(AttrClientAddr, addr)
}

// ConnRole returns an attribute for which side of a connection this
// process is playing, client or server.
func ConnRole(role string) attribute.KeyValue {
	return attribute.String(AttrConnRole, role)
}

// FrameWireID returns an attribute for a frame's build-specific wire
// byte tag.
func FrameWireID(wireID uint8) attribute.KeyValue {
	return attribute.Int(AttrFrameWireID, int(wireID))
}

// FrameLength returns an attribute for a frame's total encoded length.
func FrameLength(length uint32) attribute.KeyValue {
	return attribute.Int64(AttrFrameLength, int64(length))
}

// FrameKind returns an attribute for a frame's resolved internal kind
// name, when Mappings has decoded the wire ID.
func FrameKind(name string) attribute.KeyValue {
	return attribute.String(AttrFrameKind, name)
}

// PacketKind returns an attribute for a packet's internal kind name.
func PacketKind(name string) attribute.KeyValue {
	return attribute.String(AttrPacketKind, name)
}

// ExtractorBuild returns an attribute for the client build version an
// extraction run targeted.
func ExtractorBuild(version string) attribute.KeyValue {
	return attribute.String(AttrExtractorBuild, version)
}

// ExtractorMappedCount returns an attribute for how many wire IDs an
// extraction run successfully mapped.
func ExtractorMappedCount(n int) attribute.KeyValue {
	return attribute.Int(AttrExtractorMappedN, n)
}

// CacheHit returns an attribute for cache hit indicator.
func CacheHit(hit bool) attribute.KeyValue {
	return attribute.Bool(AttrCacheHit, hit)
}

// CacheSource returns an attribute for cache source.
func CacheSource(source string) attribute.KeyValue {
	return attribute.String(AttrCacheSource, source)
}

// ContentID returns an attribute for content ID.
func ContentID(id string) attribute.KeyValue {
	return attribute.String(AttrContentID, id)
}

// Bucket returns an attribute for S3 bucket name.
func Bucket(name string) attribute.KeyValue {
	return attribute.String(AttrBucket, name)
}

// StorageKey returns an attribute for S3 object key.
func StorageKey(key string) attribute.KeyValue {
	return attribute.String(AttrKey, key)
}

// StartConnSpan starts a span for a connection lifecycle event.
func StartConnSpan(ctx context.Context, name string, role string, remoteAddr string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	allAttrs := []attribute.KeyValue{
		ConnRole(role),
		ClientAddr(remoteAddr),
	}
	allAttrs = append(allAttrs, attrs...)

	return StartSpan(ctx, name, trace.WithAttributes(allAttrs...))
}

// StartFrameSpan starts a span for a single frame read or write.
func StartFrameSpan(ctx context.Context, name string, wireID uint8, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	allAttrs := []attribute.KeyValue{
		FrameWireID(wireID),
	}
	allAttrs = append(allAttrs, attrs...)

	return StartSpan(ctx, name, trace.WithAttributes(allAttrs...))
}

// StartExtractorSpan starts a span for a mapping-extraction step.
func StartExtractorSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return StartSpan(ctx, name, trace.WithAttributes(attrs...))
}

// StartContentSpan starts a span for a content store operation.
func StartContentSpan(ctx context.Context, operation string, contentID string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	allAttrs := []attribute.KeyValue{
		ContentID(contentID),
	}
	allAttrs = append(allAttrs, attrs...)

	return StartSpan(ctx, "content."+operation, trace.WithAttributes(allAttrs...))
}

// StartCacheSpan starts a span for a cache operation.
func StartCacheSpan(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return StartSpan(ctx, "cache."+operation, trace.WithAttributes(attrs...))
}

// CacheState returns an attribute for cache state.
func CacheState(state string) attribute.KeyValue {
	return attribute.String(AttrCacheState, state)
}

// StoreName returns an attribute for store name.
func StoreName(name string) attribute.KeyValue {
	return attribute.String(AttrStoreName, name)
}

// StoreType returns an attribute for store type.
func StoreType(t string) attribute.KeyValue {
	return attribute.String(AttrStoreType, t)
}

// Region returns an attribute for cloud region.
func Region(region string) attribute.KeyValue {
	return attribute.String(AttrRegion, region)
}
