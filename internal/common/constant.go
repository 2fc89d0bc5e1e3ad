package common

const (
	// AccessTokenHeaderName is the gRPC metadata key used to carry the
	// session token on outbound requests.
	AccessTokenHeaderName = "access_token"

	// AuthorizationHeaderName carries "Bearer <token>" as an alternative.
	AuthorizationHeaderName = "authorization"

	RequestIDHeaderName = "x-request-id"

	// ErrorDomain identifies this service in google.rpc.ErrorInfo details.
	ErrorDomain = "identcore"

	// ErrorFieldKey names the offending field in ErrorInfo metadata.
	ErrorFieldKey = "field"
)
