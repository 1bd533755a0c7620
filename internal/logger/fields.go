package logger

import (
	"fmt"
	"log/slog"
)

// Standard field keys for structured logging across the connection,
// packet, and extractor layers.
const (
	KeyTraceID = "trace_id"
	KeySpanID  = "span_id"

	KeyConnectionID = "connection_id"
	KeyRemoteAddr   = "remote_addr"
	KeyDirection    = "direction" // "c2s" or "s2c"

	KeyPacketKind = "packet_kind"
	KeyPacketID   = "packet_id" // wire byte tag
	KeyFrameLen   = "frame_len"

	KeyBuildVersion = "build_version"
	KeyUnmapped     = "unmapped_count"
	KeyMappedCount  = "mapped_count"

	KeyDurationMs = "duration_ms"
	KeyError      = "error"
	KeyBytes      = "bytes"
)

// TraceID returns a slog.Attr for OpenTelemetry trace ID
func TraceID(id string) slog.Attr {
	return slog.String(KeyTraceID, id)
}

// SpanID returns a slog.Attr for OpenTelemetry span ID
func SpanID(id string) slog.Attr {
	return slog.String(KeySpanID, id)
}

// ConnectionID returns a slog.Attr for the connection identifier
func ConnectionID(id string) slog.Attr {
	return slog.String(KeyConnectionID, id)
}

// RemoteAddr returns a slog.Attr for the remote socket address
func RemoteAddr(addr string) slog.Attr {
	return slog.String(KeyRemoteAddr, addr)
}

// Direction returns a slog.Attr for frame direction
func Direction(dir string) slog.Attr {
	return slog.String(KeyDirection, dir)
}

// PacketKind returns a slog.Attr for a decoded packet kind name
func PacketKind(kind string) slog.Attr {
	return slog.String(KeyPacketKind, kind)
}

// PacketID returns a slog.Attr for the wire-level packet byte tag
func PacketID(id uint8) slog.Attr {
	return slog.Int(KeyPacketID, int(id))
}

// FrameLen returns a slog.Attr for a frame's declared length
func FrameLen(n uint32) slog.Attr {
	return slog.Uint64(KeyFrameLen, uint64(n))
}

// BuildVersion returns a slog.Attr for the client build version
func BuildVersion(v string) slog.Attr {
	return slog.String(KeyBuildVersion, v)
}

// UnmappedCount returns a slog.Attr for the number of unmapped packet kinds
func UnmappedCount(n int) slog.Attr {
	return slog.Int(KeyUnmapped, n)
}

// MappedCount returns a slog.Attr for the number of mapped packet kinds
func MappedCount(n int) slog.Attr {
	return slog.Int(KeyMappedCount, n)
}

// DurationMs returns a slog.Attr for duration in milliseconds
func DurationMs(ms float64) slog.Attr {
	return slog.Float64(KeyDurationMs, ms)
}

// Err returns a slog.Attr for an error
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Bytes returns a slog.Attr for a byte count
func Bytes(n int) slog.Attr {
	return slog.Int(KeyBytes, n)
}

// Hex renders an arbitrary byte slice as a hex-encoded attribute, used
// for logging cipher key fingerprints without leaking the raw key.
func Hex(b []byte) slog.Attr {
	return slog.String("hex", fmt.Sprintf("%x", b))
}
