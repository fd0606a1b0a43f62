package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	combatv1alpha1 "github.com/KirkDiggler/rpg-combat/internal/api/combat/v1alpha1"
	"github.com/KirkDiggler/rpg-combat/internal/config"
	entity "github.com/KirkDiggler/rpg-combat/internal/entities/combat"
	"github.com/KirkDiggler/rpg-combat/internal/errors"
	"github.com/KirkDiggler/rpg-combat/internal/handlers/combat/v1alpha1"
	"github.com/KirkDiggler/rpg-combat/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-combat/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-combat/internal/repositories/combatant"
	"github.com/KirkDiggler/rpg-combat/internal/repositories/gear"
)

var (
	configPath string
	envFile    string
	grpcPort   int
	logLevel   string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the RPG combat gRPC server with the gear catalog from config.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&configPath, "config", "config.yaml", "Path to YAML config")
	serverCmd.Flags().StringVar(&envFile, "env-file", ".env", "Path to .env file")
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := newGRPCServer(ctx, cfg)
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("gRPC server starting", "addr", cfg.Addr())
		if err := srv.Serve(lis); err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down gRPC server")
		shutdown(srv, cfg.ShutdownTimeout)
		return nil
	})

	return g.Wait()
}

// loadConfig layers defaults, YAML, .env, environment and explicit flags
func loadConfig(cmd *cobra.Command) (config.Server, error) {
	cfg, err := config.LoadServer(configPath)
	if err != nil {
		return cfg, err
	}

	if err := config.LoadDotEnv(envFile); err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("port") {
		cfg.Port = grpcPort
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// newGRPCServer wires the combat stack and registers it with a new server
func newGRPCServer(ctx context.Context, cfg config.Server) (*grpc.Server, error) {
	bus := events.NewBus()
	combat.SubscribeLogger(bus)

	combatService, err := combat.NewOrchestrator(&combat.Config{
		CharacterRepo: combatant.NewInMemory(),
		GearRepo:      gear.NewInMemory(),
		IDGenerator:   idgen.NewUUID(""),
		EventBus:      bus,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create combat orchestrator: %w", err)
	}

	if err := seedGear(ctx, combatService, cfg.Gear); err != nil {
		return nil, err
	}

	combatHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		CombatService: combatService,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create combat handler: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	combatv1alpha1.RegisterCombatServiceServer(srv, combatHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(combatv1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	return srv, nil
}

// seedGear registers the configured gear catalog
func seedGear(ctx context.Context, svc combat.Service, entries []config.GearEntry) error {
	for _, e := range entries {
		slot, ok := entity.ParseGearSlot(e.Slot)
		if !ok {
			return errors.InvalidArgumentf("gear %q has invalid slot %q", e.Name, e.Slot)
		}

		out, err := svc.CreateGear(ctx, &combat.CreateGearInput{
			Name: e.Name,
			AP:   e.AP,
			DP:   e.DP,
			HP:   e.HP,
			Slot: slot,
		})
		if err != nil {
			return errors.Wrapf(err, "failed to seed gear %q", e.Name)
		}

		slog.Debug("gear seeded", "gear_id", out.Gear.ID, "name", out.Gear.Name, "slot", out.Gear.Slot)
	}
	return nil
}

func shutdown(srv *grpc.Server, timeout time.Duration) {
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-time.After(timeout):
		slog.Warn("graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		slog.Info("server stopped gracefully")
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
