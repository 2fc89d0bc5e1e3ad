package client

import (
	"context"

	pb "github.com/dmitrijs2005/identcore/internal/proto"
)

// Client is the account API as seen by the CLI.
type Client interface {
	Close() error
	AccessToken() string
	SetAccessToken(token string)
	Register(ctx context.Context, req *pb.RegisterRequest) (*pb.Account, error)
	SignIn(ctx context.Context, identifier, password string) (*pb.Account, error)
	AccountDetail(ctx context.Context) (*pb.Account, error)
	UpdateProfile(ctx context.Context, fields map[string]any) (*pb.UpdateProfileResponse, error)
	SignOut(ctx context.Context) (string, error)
}
