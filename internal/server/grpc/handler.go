package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/identcore/internal/proto"
	"github.com/dmitrijs2005/identcore/internal/server/services"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	in := services.RegisterInput{
		Username:  req.GetUsername(),
		Email:     req.GetEmail(),
		Phone:     req.GetPhone(),
		Password:  req.GetPassword(),
		Providers: req.GetProviders(),
		IPAddress: req.GetIpAddress(),
		URL:       req.GetUrl(),
		Avatar:    req.GetAvatar(),
		Firstname: req.GetFirstname(),
		Lastname:  req.GetLastname(),
		Metadata:  fromStruct(req.GetMetadata()),
	}
	if in.IPAddress == "" {
		in.IPAddress = peerIP(ctx)
	}

	account, err := s.accounts.Register(ctx, in)
	if err != nil {
		return nil, toStatus(err)
	}

	out, err := toAccount(account)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.RegisterResponse{Account: out}, nil
}

func (s *GRPCServer) SignIn(ctx context.Context, req *pb.SignInRequest) (*pb.SignInResponse, error) {
	sourceIP := req.GetSourceIp()
	if sourceIP == "" {
		sourceIP = peerIP(ctx)
	}

	account, err := s.accounts.Authenticate(ctx, req.GetIdentifier(), req.GetPassword(), sourceIP)
	if err != nil {
		return nil, toStatus(err)
	}

	out, err := toAccount(account)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.SignInResponse{Account: out}, nil
}

func (s *GRPCServer) AccountDetail(ctx context.Context, req *pb.AccountDetailRequest) (*pb.AccountDetailResponse, error) {
	account, err := s.accounts.ResolveSession(ctx, requestToken(ctx, req.GetToken()))
	if err != nil {
		return nil, toStatus(err)
	}

	out, err := toAccount(account)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.AccountDetailResponse{Account: out}, nil
}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.UpdateProfileResponse, error) {
	result, err := s.accounts.UpdateProfile(ctx, requestToken(ctx, req.GetToken()), fromStruct(req.GetFields()))
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.UpdateProfileResponse{
		Name:         result.Name,
		Message:      result.Message,
		SessionToken: result.SessionToken,
	}, nil
}

func (s *GRPCServer) SignOut(ctx context.Context, req *pb.SignOutRequest) (*pb.SignOutResponse, error) {
	message, err := s.accounts.SignOut(ctx, requestToken(ctx, req.GetToken()))
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.SignOutResponse{Message: message}, nil
}

// requestToken prefers the token in the message over the one in metadata.
func requestToken(ctx context.Context, fromMessage string) string {
	if fromMessage != "" {
		return fromMessage
	}
	return accessTokenFromContext(ctx)
}
