// Package grpc exposes the account service as identcore.v1.AccountService.
package grpc

import (
	"context"
	"errors"
	"net"

	"github.com/dmitrijs2005/identcore/internal/logging"
	pb "github.com/dmitrijs2005/identcore/internal/proto"
	"github.com/dmitrijs2005/identcore/internal/server/metrics"
	"github.com/dmitrijs2005/identcore/internal/server/models"
	"github.com/dmitrijs2005/identcore/internal/server/services"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// AccountService is the orchestrator the handlers delegate to.
type AccountService interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.Account, error)
	Authenticate(ctx context.Context, identifier, password, sourceIP string) (*models.Account, error)
	ResolveSession(ctx context.Context, token string) (*models.Account, error)
	UpdateProfile(ctx context.Context, token string, fields map[string]any) (*services.UpdateResult, error)
	SignOut(ctx context.Context, token string) (string, error)
}

type GRPCServer struct {
	pb.UnimplementedAccountServiceServer
	address  string
	accounts AccountService
	logger   logging.Logger
	metrics  *metrics.RPCMetrics
	health   *health.Server
}

func NewGRPCServer(a string, l logging.Logger, svc AccountService, m *metrics.RPCMetrics) *GRPCServer {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		accounts: svc,
		metrics:  m,
		health:   health.NewServer(),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			s.requestIDInterceptor,
			s.loggingInterceptor,
			s.recoverInterceptor,
			s.accessTokenInterceptor,
		),
	)

	pb.RegisterAccountServiceServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(pb.AccountService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then drains
// in-flight calls.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}

	return nil
}
