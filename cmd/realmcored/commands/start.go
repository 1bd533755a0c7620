package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/oryxlabs/realmcore/internal/logger"
	"github.com/oryxlabs/realmcore/internal/telemetry"
	"github.com/oryxlabs/realmcore/pkg/adminapi"
	adminauth "github.com/oryxlabs/realmcore/pkg/adminapi/auth"
	"github.com/oryxlabs/realmcore/pkg/auditstore"
	"github.com/oryxlabs/realmcore/pkg/clientstore"
	"github.com/oryxlabs/realmcore/pkg/config"
	"github.com/oryxlabs/realmcore/pkg/extractor"
	"github.com/oryxlabs/realmcore/pkg/mappingstore/badger"
	"github.com/oryxlabs/realmcore/pkg/metrics"
	"github.com/oryxlabs/realmcore/pkg/netcode"
	"github.com/oryxlabs/realmcore/pkg/protocol"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the realmcore connection listener and admin API",
	Long: `Start the game connection listener, the admin/control HTTP API,
metrics, and tracing for the build version named in the config file's
listen.build_version.

Examples:
  realmcored start
  realmcored start --config /etc/realmcore/config.yaml
  REALMCORE_LOGGING_LEVEL=DEBUG realmcored start`,
	RunE: runStart,
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, err := config.MustLoad(GetConfigFile())
	if err != nil {
		return err
	}

	if err := logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	telemetryShutdown, err := telemetry.Init(ctx, telemetry.Config{
		Enabled:        cfg.Telemetry.Enabled,
		ServiceName:    "realmcored",
		ServiceVersion: Version,
		Endpoint:       cfg.Telemetry.Endpoint,
		Insecure:       cfg.Telemetry.Insecure,
		SampleRate:     cfg.Telemetry.SampleRate,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		if err := telemetryShutdown(context.Background()); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}()

	profilingShutdown, err := telemetry.InitProfiling(telemetry.ProfilingConfig{
		Enabled:        cfg.Telemetry.Profiling.Enabled,
		ServiceName:    "realmcored",
		ServiceVersion: Version,
		Endpoint:       cfg.Telemetry.Profiling.Endpoint,
		ProfileTypes:   []string{"cpu"},
	})
	if err != nil {
		return fmt.Errorf("failed to initialize profiling: %w", err)
	}
	defer func() {
		if err := profilingShutdown(); err != nil {
			logger.Error("profiling shutdown error", "error", err)
		}
	}()

	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
	}

	clientStore, err := clientstore.NewFromConfig(ctx, clientstore.Config{
		Bucket:         cfg.ClientStore.Bucket,
		Region:         cfg.ClientStore.Region,
		Endpoint:       cfg.ClientStore.Endpoint,
		KeyPrefix:      cfg.ClientStore.KeyPrefix,
		ForcePathStyle: cfg.ClientStore.ForcePathStyle,
		MaxObjectSize:  cfg.ClientStore.MaxObjectSize,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize client store: %w", err)
	}

	mappingStore, err := badger.Open(cfg.MappingStore.Path)
	if err != nil {
		return fmt.Errorf("failed to open mapping cache: %w", err)
	}
	defer mappingStore.Close()

	audit, err := auditstore.Open(ctx, auditstore.Config{
		Driver:         auditstore.Driver(cfg.AuditStore.Driver),
		DSN:            cfg.AuditStore.DSN,
		MigrationsPath: cfg.AuditStore.MigrationsPath,
	})
	if err != nil {
		return fmt.Errorf("failed to open audit store: %w", err)
	}

	reloader := &buildReloader{
		clientStore:  clientStore,
		mappingStore: mappingStore,
		buildVersion: cfg.Listen.BuildVersion,
	}

	mappings, parameters, err := reloader.Reload(ctx)
	if err != nil {
		return fmt.Errorf("failed initial extraction of build %s: %w", cfg.Listen.BuildVersion, err)
	}
	if unmapped := mappings.FindUnmapped(); len(unmapped) > 0 {
		logger.Warn("build has unmapped packet kinds", "build_version", cfg.Listen.BuildVersion, "unmapped_count", len(unmapped))
	}

	jwtService, err := adminauth.NewJWTService(adminauth.JWTConfig{
		Secret:        cfg.AdminAPI.JWTSecret,
		Issuer:        "realmcored",
		TokenDuration: cfg.AdminAPI.TokenTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize admin API auth: %w", err)
	}

	adminServer := adminapi.NewServer(cfg.Listen.BuildVersion, mappings, parameters, reloader, jwtService, audit)
	adminHTTP := &http.Server{
		Addr:    cfg.AdminAPI.Address,
		Handler: adminapi.NewRouter(adminServer),
	}

	group, gctx := errGroup(ctx)
	group.Go(func() error {
		logger.Info("admin API listening", "address", cfg.AdminAPI.Address)
		if err := adminHTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("admin API: %w", err)
		}
		return nil
	})

	listener, err := netcode.Listen(cfg.Listen.Address, mappings)
	if err != nil {
		return fmt.Errorf("failed to bind game listener on %s: %w", cfg.Listen.Address, err)
	}

	group.Go(func() error {
		logger.Info("game listener accepting connections", "address", listener.Addr().String(), "build_version", cfg.Listen.BuildVersion)
		for {
			conn, err := listener.Accept()
			if err != nil {
				if gctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("accept: %w", err)
			}
			go serveConn(conn)
		}
	})

	<-gctx.Done()
	logger.Info("shutdown signal received, draining connections", "timeout", cfg.ShutdownTimeout.String())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	_ = listener.Close()
	_ = adminHTTP.Shutdown(shutdownCtx)

	return nil
}

// serveConn reads packets from an accepted connection until it closes
// or a framing error occurs. This core carries no game logic (a
// Non-goal); it logs each decoded packet's kind for observability and
// nothing more.
func serveConn(conn *netcode.Conn) {
	defer conn.Close()
	for {
		p, err := conn.ReadPacket()
		if err != nil {
			if err != io.EOF {
				logger.Debug("connection read error", "connection_id", conn.ID, "error", err)
			}
			return
		}
		logger.Debug("packet received", "connection_id", conn.ID, "kind", p.Kind.Name())
	}
}

// buildReloader implements adminapi.Reloader for one build version: it
// returns the mapping cache's entry when one exists, and otherwise
// fetches the client binary from the client store, extracts Mappings and
// Parameters, and caches the result.
type buildReloader struct {
	clientStore  *clientstore.Store
	mappingStore *badger.Store
	buildVersion string
}

func (r *buildReloader) Reload(ctx context.Context) (*protocol.Mappings, *extractor.Parameters, error) {
	if cached, cachedParams, ok, err := r.mappingStore.Get(ctx, r.buildVersion); err == nil && ok {
		logger.Debug("reload: serving from mapping cache", "build_version", r.buildVersion)
		return cached, cachedParams, nil
	}

	ctx, span := telemetry.StartExtractorSpan(ctx, telemetry.SpanExtractorParse, telemetry.ExtractorBuild(r.buildVersion))
	defer span.End()
	start := time.Now()

	mappings, parameters, err := r.extract(ctx)
	if err != nil {
		metrics.ExtractorRun("failure", time.Since(start), 0, 0)
		telemetry.RecordError(ctx, err)
		return nil, nil, err
	}
	metrics.ExtractorRun("success", time.Since(start), mappings.Len(), len(mappings.FindUnmapped()))
	span.SetAttributes(telemetry.ExtractorMappedCount(mappings.Len()))

	if err := r.mappingStore.Put(ctx, r.buildVersion, mappings, parameters); err != nil {
		logger.Warn("reload: failed to cache extraction result", "build_version", r.buildVersion, "error", err)
	}

	return mappings, parameters, nil
}

func (r *buildReloader) extract(ctx context.Context) (*protocol.Mappings, *extractor.Parameters, error) {
	movie, err := r.clientStore.Fetch(ctx, r.buildVersion)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch client binary: %w", err)
	}

	client, err := extractor.Parse(bytes.NewReader(movie))
	if err != nil {
		return nil, nil, fmt.Errorf("parse client binary: %w", err)
	}

	mappings, err := client.ExtractMappings()
	if err != nil {
		return nil, nil, fmt.Errorf("extract mappings: %w", err)
	}
	parameters, err := client.ExtractParameters()
	if err != nil {
		return nil, nil, fmt.Errorf("extract parameters: %w", err)
	}
	return mappings, parameters, nil
}

// errGroupCtx is the minimal errgroup-style helper used here instead of
// pulling in golang.org/x/sync for two goroutines.
type errGroupCtx struct {
	cancel context.CancelFunc
}

func errGroup(ctx context.Context) (*errGroupCtx, context.Context) {
	gctx, cancel := context.WithCancel(ctx)
	return &errGroupCtx{cancel: cancel}, gctx
}

func (g *errGroupCtx) Go(fn func() error) {
	go func() {
		if err := fn(); err != nil {
			logger.Error("server goroutine exited", "error", err)
		}
		g.cancel()
	}()
}
