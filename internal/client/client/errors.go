package client

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/identcore/internal/common"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var ErrUnavailable = errors.New("server unavailable")

// mapError turns a call error into ErrUnavailable, a *common.Error carrying
// the server's kind, or a wrapped rpc error.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}

	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	}

	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != common.ErrorDomain {
			continue
		}
		return common.New(common.Kind(info.GetReason()), st.Message()).WithReason(info.GetMetadata()[common.ErrorFieldKey])
	}

	return fmt.Errorf("rpc error: %w", err)
}
