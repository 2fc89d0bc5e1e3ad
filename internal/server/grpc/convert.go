package grpc

import (
	"context"
	"fmt"
	"net"
	"time"

	pb "github.com/dmitrijs2005/identcore/internal/proto"
	"github.com/dmitrijs2005/identcore/internal/server/document"
	"github.com/dmitrijs2005/identcore/internal/server/models"
	"github.com/dmitrijs2005/identcore/internal/timex"
	"google.golang.org/grpc/peer"
	"google.golang.org/protobuf/types/known/structpb"
)

func toAccount(a *models.Account) (*pb.Account, error) {
	if a == nil {
		return nil, nil
	}
	metadata, err := toStruct(a.Metadata)
	if err != nil {
		return nil, fmt.Errorf("account %s metadata: %w", a.ID, err)
	}
	out := &pb.Account{
		Id:           a.ID,
		Username:     a.Username,
		Email:        a.Email,
		Phone:        a.Phone,
		Providers:    a.Providers,
		IpAddress:    a.IPAddress,
		Url:          a.URL,
		IsVerified:   int32(a.IsVerified),
		Avatar:       a.Avatar,
		Firstname:    a.Firstname,
		Lastname:     a.Lastname,
		Metadata:     metadata,
		SessionToken: a.SessionToken,
		CreatedAt:    timex.ToProto(a.CreatedAt),
		UpdatedAt:    timex.ToProto(a.UpdatedAt),
	}
	if a.LastLogin != nil {
		out.LastLogin = timex.ToProto(*a.LastLogin)
	}
	return out, nil
}

// toStruct encodes a stored mapping for the wire. Dates inside it travel as
// TimeLayout strings since Struct has no timestamp kind.
func toStruct(m map[string]any) (*structpb.Struct, error) {
	if m == nil {
		return nil, nil
	}
	wire, _ := wireValue(m).(map[string]any)
	return structpb.NewStruct(wire)
}

func wireValue(v any) any {
	switch x := v.(type) {
	case time.Time:
		return timex.FormatTime(x)
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, item := range x {
			out[k] = wireValue(item)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = wireValue(item)
		}
		return out
	case []string:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = item
		}
		return out
	}
	return v
}

// fromStruct decodes a wire mapping into plain Go values. A nil struct
// decodes to nil.
func fromStruct(s *structpb.Struct) map[string]any {
	m, _ := document.NormalizeValue(s).(map[string]any)
	return m
}

// peerIP is the caller's address without the port, or "" when unknown.
func peerIP(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return ""
	}
	addr := p.Addr.String()
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
