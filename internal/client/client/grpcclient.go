package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/identcore/internal/common"
	pb "github.com/dmitrijs2005/identcore/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/structpb"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.AccountServiceClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if token := s.AccessToken(); token != "" {
		ctx = withAccessToken(ctx, token)
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewAccountClient connects lazily to endpointURL. Extra dial options are
// appended after the defaults.
func NewAccountClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient(opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, dialOpts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAccountServiceClient(conn)
	return nil
}

func (s *GRPCClient) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) SetAccessToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

func (s *GRPCClient) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.Account, error) {

	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return nil, mapError(err)
	}

	s.SetAccessToken(resp.GetAccount().GetSessionToken())
	return resp.GetAccount(), nil
}

func (s *GRPCClient) SignIn(ctx context.Context, identifier, password string) (*pb.Account, error) {

	req := &pb.SignInRequest{Identifier: identifier, Password: password}

	resp, err := s.client.SignIn(ctx, req)
	if err != nil {
		return nil, mapError(err)
	}

	s.SetAccessToken(resp.GetAccount().GetSessionToken())
	return resp.GetAccount(), nil
}

func (s *GRPCClient) AccountDetail(ctx context.Context) (*pb.Account, error) {
	resp, err := s.client.AccountDetail(ctx, &pb.AccountDetailRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.GetAccount(), nil
}

// UpdateProfile sends a partial account document. When the server renames
// the account it returns a new token, which replaces the local one.
func (s *GRPCClient) UpdateProfile(ctx context.Context, fields map[string]any) (*pb.UpdateProfileResponse, error) {
	body, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("encode fields: %w", err)
	}

	resp, err := s.client.UpdateProfile(ctx, &pb.UpdateProfileRequest{Fields: body})
	if err != nil {
		return nil, mapError(err)
	}

	if token := resp.GetSessionToken(); token != "" {
		s.SetAccessToken(token)
	}
	return resp, nil
}

// SignOut ends the session on the server and forgets the local token.
func (s *GRPCClient) SignOut(ctx context.Context) (string, error) {
	resp, err := s.client.SignOut(ctx, &pb.SignOutRequest{})
	if err != nil {
		return "", mapError(err)
	}
	s.SetAccessToken("")
	return resp.GetMessage(), nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}
