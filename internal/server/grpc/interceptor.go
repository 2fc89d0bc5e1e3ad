package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/identcore/internal/common"
	"github.com/dmitrijs2005/identcore/internal/logging"
	pb "github.com/dmitrijs2005/identcore/internal/proto"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const accessTokenKey ctxKey = "accessToken"

// methods that act on an existing session
var sessionMethods = map[string]struct{}{
	pb.AccountService_AccountDetail_FullMethodName: {},
	pb.AccountService_UpdateProfile_FullMethodName: {},
	pb.AccountService_SignOut_FullMethodName:       {},
}

// accessTokenInterceptor lifts the session token from call metadata into the
// context. Verification stays with the account service.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if _, ok := sessionMethods[info.FullMethod]; ok {
		if token := tokenFromMetadata(ctx); token != "" {
			ctx = context.WithValue(ctx, accessTokenKey, token)
		}
	}

	return handler(ctx, req)
}

func tokenFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 && values[0] != "" {
		return values[0]
	}
	if values := md.Get(common.AuthorizationHeaderName); len(values) > 0 {
		scheme, token, found := strings.Cut(values[0], " ")
		if found && strings.EqualFold(scheme, "bearer") {
			return strings.TrimSpace(token)
		}
	}
	return ""
}

func accessTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(accessTokenKey).(string)
	return token
}

// requestIDInterceptor propagates x-request-id, minting one when absent, and
// echoes it in the response header.
func (s *GRPCServer) requestIDInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	var id string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.RequestIDHeaderName); len(values) > 0 {
			id = values[0]
		}
	}
	if id == "" {
		id = uuid.NewString()
	}

	_ = grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDHeaderName, id))
	ctx = logging.ContextWithRequestID(ctx, id)

	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	elapsed := time.Since(start)

	code := status.Code(err)
	method := info.FullMethod[strings.LastIndex(info.FullMethod, "/")+1:]
	s.metrics.Observe(method, code.String(), elapsed)

	args := []any{"method", method, "code", code.String(), "duration_ms", elapsed.Milliseconds()}
	switch code {
	case codes.OK:
		s.logger.Info(ctx, "rpc handled", args...)
	case codes.Internal, codes.Unknown:
		s.logger.Error(ctx, "rpc failed", args...)
	default:
		s.logger.Warn(ctx, "rpc rejected", args...)
	}

	return resp, err
}

func (s *GRPCServer) recoverInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error(ctx, "panic in handler", "method", info.FullMethod, "panic", r)
			resp, err = nil, status.Error(codes.Internal, internalMessage)
		}
	}()
	return handler(ctx, req)
}
