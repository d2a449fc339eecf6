// Package admin поднимает служебный gRPC-listener: health-check и reflection.
package admin

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName: имя, под которым публикуется статус HTTP API.
const ServiceName = "notas.api"

// Pinger проверяет доступность БД.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Server struct {
	grpc   *grpc.Server
	health *health.Server
	log    *slog.Logger
}

func NewServer(log *slog.Logger) *Server {
	s := &Server{
		grpc:   grpc.NewServer(),
		health: health.NewServer(),
		log:    log,
	}
	healthpb.RegisterHealthServer(s.grpc, s.health)
	reflection.Register(s.grpc)

	// до проверки БД сервис не готов
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	s.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	return s
}

// Health возвращает health-сервер (для тестов и прямых проверок).
func (s *Server) Health() healthpb.HealthServer {
	return s.health
}

// MarkReady пингует БД и переводит статус в SERVING.
func (s *Server) MarkReady(ctx context.Context, db Pinger) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	return nil
}

// Serve блокируется до остановки listener'а.
func (s *Server) Serve(lis net.Listener) error {
	s.log.Info("admin gRPC server listening", slog.String("addr", lis.Addr().String()))
	return s.grpc.Serve(lis)
}

// Stop переводит все сервисы в NOT_SERVING и дожидается завершения активных вызовов.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}
