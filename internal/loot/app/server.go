// Package server wires the loot runtime and gRPC lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"

	lootv1 "github.com/louisbranch/spoils/api/gen/go/loot/v1"
	"github.com/louisbranch/spoils/internal/loot/pack"
	lootservice "github.com/louisbranch/spoils/internal/loot/service"
	"github.com/louisbranch/spoils/internal/loot/session"
	"github.com/louisbranch/spoils/internal/loot/world"
	"github.com/louisbranch/spoils/internal/platform/config"
	"github.com/louisbranch/spoils/internal/random"
	"github.com/louisbranch/spoils/internal/storage/sqlite"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

type serverEnv struct {
	DBPath        string  `env:"SPOILS_LOOT_DB_PATH"`
	WorldDropRate float64 `env:"SPOILS_WORLD_DROP_RATE" envDefault:"1.0"`
	WorldGoldRate float64 `env:"SPOILS_WORLD_GOLD_RATE" envDefault:"1.0"`
}

func loadServerEnv() serverEnv {
	var cfg serverEnv
	_ = config.ParseEnv(&cfg)
	if strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = filepath.Join("data", "loot.db")
	}
	return cfg
}

// Server hosts the loot gRPC API and catalog storage lifecycle.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	store      *sqlite.Store
}

// New creates a configured loot server listening on the provided port.
func New(port int) (*Server, error) {
	return NewWithAddr(fmt.Sprintf(":%d", port))
}

// NewWithAddr creates a configured loot server for the provided address.
func NewWithAddr(addr string) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	env := loadServerEnv()
	store, err := openCatalogStore(env.DBPath)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	rng := random.NewRand()
	generator, err := pack.NewGenerator(pack.Config{
		Catalog:       store,
		Rand:          rng,
		WorldDropRate: env.WorldDropRate,
		WorldGoldRate: env.WorldGoldRate,
	})
	if err != nil {
		_ = listener.Close()
		_ = store.Close()
		return nil, fmt.Errorf("build pack generator: %w", err)
	}

	w := world.New()
	manager, err := session.NewManager(session.Config{
		Catalog:   store,
		Generator: generator,
		Inventory: w,
		Currency:  w,
		Quests:    w,
		Roster:    w,
		Modifiers: w,
		ItemIDs:   w,
		Notifier:  world.LogNotifier{},
		Rand:      rng,
	})
	if err != nil {
		_ = listener.Close()
		_ = store.Close()
		return nil, fmt.Errorf("build session manager: %w", err)
	}

	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	apiService := lootservice.NewService(manager)
	healthServer := health.NewServer()
	lootv1.RegisterLootServiceServer(grpcServer, apiService)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("loot.v1.LootService", grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		store:      store,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a loot server until context cancellation.
func Run(ctx context.Context, port int) error {
	server, err := New(port)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the gRPC server until context cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("loot server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.Shutdown()
		}
		s.grpcServer.GracefulStop()
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}
}

// Close releases loot server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close loot store: %v", err)
		}
	}
}

func openCatalogStore(path string) (*sqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := sqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open loot sqlite store: %w", err)
	}
	if err := store.Validate(context.Background()); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("validate loot catalog: %w", err)
	}
	return store, nil
}
