package grpc

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/identcore/internal/common"
	"github.com/dmitrijs2005/identcore/internal/logging"
	pb "github.com/dmitrijs2005/identcore/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func newTestServer() *GRPCServer {
	return NewGRPCServer("", nopLogger{}, &fakeAccounts{}, nil)
}

func TestInterceptor_NonSession_IgnoresToken(t *testing.T) {
	s := newTestServer()

	md := metadata.New(map[string]string{common.AccessTokenHeaderName: "tok"})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: pb.AccountService_SignIn_FullMethodName}

	var got string
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		got = accessTokenFromContext(ctx)
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(ctx, nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
	if got != "" {
		t.Fatalf("token should not be lifted for SignIn, got %q", got)
	}
}

func TestInterceptor_Session_MissingTokenStillCallsHandler(t *testing.T) {
	s := newTestServer()

	info := &grpc.UnaryServerInfo{FullMethod: pb.AccountService_AccountDetail_FullMethodName}
	called := false
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		called = true
		return nil, nil
	}

	if _, err := s.accessTokenInterceptor(context.Background(), nil, info, h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatal("handler was not called")
	}
}

func TestInterceptor_Session_LiftsToken(t *testing.T) {
	s := newTestServer()

	md := metadata.New(map[string]string{common.AuthorizationHeaderName: "Bearer tok-123"})
	ctx := metadata.NewIncomingContext(context.Background(), md)

	for _, method := range []string{
		pb.AccountService_AccountDetail_FullMethodName,
		pb.AccountService_UpdateProfile_FullMethodName,
		pb.AccountService_SignOut_FullMethodName,
	} {
		var got string
		h := func(ctx context.Context, req interface{}) (interface{}, error) {
			got = accessTokenFromContext(ctx)
			return nil, nil
		}
		if _, err := s.accessTokenInterceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: method}, h); err != nil {
			t.Fatalf("%s: unexpected error: %v", method, err)
		}
		if got != "tok-123" {
			t.Fatalf("%s: token not propagated, got %q", method, got)
		}
	}
}

func TestRequestIDInterceptor(t *testing.T) {
	s := newTestServer()
	info := &grpc.UnaryServerInfo{FullMethod: pb.AccountService_SignIn_FullMethodName}

	var got string
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		got = logging.RequestIDFromContext(ctx)
		return nil, nil
	}

	md := metadata.New(map[string]string{common.RequestIDHeaderName: "req-1"})
	if _, err := s.requestIDInterceptor(metadata.NewIncomingContext(context.Background(), md), nil, info, h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "req-1" {
		t.Fatalf("expected incoming request id, got %q", got)
	}

	if _, err := s.requestIDInterceptor(context.Background(), nil, info, h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 36 {
		t.Fatalf("expected generated uuid, got %q", got)
	}
}

func TestRecoverInterceptor(t *testing.T) {
	s := newTestServer()
	info := &grpc.UnaryServerInfo{FullMethod: pb.AccountService_Register_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		panic("boom")
	}

	_, err := s.recoverInterceptor(context.Background(), nil, info, h)
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal, got %v", status.Code(err))
	}
}
