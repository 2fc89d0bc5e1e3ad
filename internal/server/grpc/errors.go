package grpc

import (
	"github.com/dmitrijs2005/identcore/internal/common"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const internalMessage = "internal error"

var kindCodes = map[common.Kind]codes.Code{
	common.KindInvalidProvider: codes.InvalidArgument,
	common.KindMissingField:    codes.InvalidArgument,
	common.KindInvalidField:    codes.InvalidArgument,
	common.KindAlreadyExists:   codes.AlreadyExists,
	common.KindUnauthorized:    codes.Unauthenticated,
	common.KindNotFound:        codes.NotFound,
	common.KindConflict:        codes.Aborted,
	common.KindInternal:        codes.Internal,
}

// toStatus converts a service error into a gRPC status whose ErrorInfo
// detail carries the error kind and, when known, the offending field.
func toStatus(err error) error {
	typed := common.As(err)
	if typed == nil {
		typed = common.Wrap(common.KindInternal, err, internalMessage)
	}

	kind := typed.Kind()
	code, ok := kindCodes[kind]
	if !ok {
		code, kind = codes.Internal, common.KindInternal
	}

	message := typed.Message()
	if kind == common.KindInternal {
		message = internalMessage
	}

	st := status.New(code, message)
	info := &errdetails.ErrorInfo{
		Reason: string(kind),
		Domain: common.ErrorDomain,
	}
	if reason := typed.Reason(); reason != "" {
		info.Metadata = map[string]string{common.ErrorFieldKey: reason}
	}

	detailed, derr := st.WithDetails(info)
	if derr != nil {
		return st.Err()
	}
	return detailed.Err()
}
