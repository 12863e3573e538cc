package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	ctrlzap "sigs.k8s.io/controller-runtime/pkg/log/zap"
	"k8s.io/apimachinery/pkg/runtime"

	pb "github.com/shiftpod/migration-manager/api/proto"
	migrationv1 "github.com/shiftpod/migration-manager/api/v1"
	"github.com/shiftpod/migration-manager/internal/config"
	"github.com/shiftpod/migration-manager/internal/coordinator"
	"github.com/shiftpod/migration-manager/internal/nodeinfo"
	"github.com/shiftpod/migration-manager/internal/rpcserver"
	"github.com/shiftpod/migration-manager/internal/store"
)

func main() {
	v := viper.New()
	rootCmd := &cobra.Command{
		Use:   "shiftpod-manager",
		Short: "per-node migration manager coordinating live container migration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return run(cmd.Context(), cfg)
		},
	}

	config.BindFlags(rootCmd.Flags(), v)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	level, err := zapLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	ctrl.SetLogger(ctrlzap.New(ctrlzap.Level(level)))

	logger, err := newLogger(level)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	if err := os.MkdirAll(cfg.CheckpointDir, 0o755); err != nil {
		return fmt.Errorf("create checkpoint dir: %w", err)
	}

	scheme := runtime.NewScheme()
	if err := clientgoscheme.AddToScheme(scheme); err != nil {
		return fmt.Errorf("register client-go scheme: %w", err)
	}
	if err := migrationv1.AddToScheme(scheme); err != nil {
		return fmt.Errorf("register migration scheme: %w", err)
	}

	restCfg, err := ctrl.GetConfig()
	if err != nil {
		return fmt.Errorf("load cluster config: %w", err)
	}
	k8sClient, err := client.New(restCfg, client.Options{Scheme: scheme})
	if err != nil {
		return fmt.Errorf("build cluster client: %w", err)
	}

	nodeAddress := cfg.NodeAddress
	if nodeAddress == "" {
		nodeAddress, err = nodeinfo.DiscoverAddress(ctx, k8sClient, cfg.NodeName)
		if err != nil {
			return fmt.Errorf("discover node address: %w", err)
		}
		cfg.NodeAddress = nodeAddress
	}

	logger.Info("starting shiftpod manager",
		zap.String("node_name", cfg.NodeName),
		zap.String("node_address", cfg.NodeAddress),
		zap.Int("grpc_port", cfg.GRPCPort),
		zap.String("checkpoint_dir", cfg.CheckpointDir),
	)

	resourceStore := store.New(k8sClient, cfg.Namespace)
	node := coordinator.NodeInfo{Name: cfg.NodeName, Address: cfg.PeerAddress()}
	coord := coordinator.New(resourceStore, node, cfg.CheckpointDir, logger)
	service := rpcserver.New(coord, logger)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 2)
	go func() { errCh <- servePeer(ctx, cfg, service, logger) }()
	go func() { errCh <- serveLocal(ctx, cfg, service, logger) }()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		return nil
	case err := <-errCh:
		return err
	}
}

func servePeer(ctx context.Context, cfg config.Config, service *rpcserver.Server, logger *zap.Logger) error {
	addr := fmt.Sprintf("0.0.0.0:%d", cfg.GRPCPort)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on peer port %s: %w", addr, err)
	}

	srv := newGRPCServer(service)
	logger.Info("peer channel listening", zap.String("addr", addr))
	return serveUntilDone(ctx, srv, lis)
}

func serveLocal(ctx context.Context, cfg config.Config, service *rpcserver.Server, logger *zap.Logger) error {
	_ = os.Remove(cfg.UnixSocket)
	lis, err := net.Listen("unix", cfg.UnixSocket)
	if err != nil {
		return fmt.Errorf("listen on local socket %s: %w", cfg.UnixSocket, err)
	}

	srv := newGRPCServer(service)
	logger.Info("local shim channel listening", zap.String("path", cfg.UnixSocket))
	return serveUntilDone(ctx, srv, lis)
}

func serveUntilDone(ctx context.Context, srv *grpc.Server, lis net.Listener) error {
	go func() {
		<-ctx.Done()
		srv.GracefulStop()
	}()
	err := srv.Serve(lis)
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func newGRPCServer(service *rpcserver.Server) *grpc.Server {
	srv := grpc.NewServer(grpc.ForceServerCodec(pb.Codec))
	pb.RegisterManagerServiceServer(srv, service)

	healthSrv := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthSrv)
	healthSrv.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)
	return srv
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.EncoderConfig.TimeKey = "ts"
	return zc.Build()
}

func zapLevel(s string) (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}
