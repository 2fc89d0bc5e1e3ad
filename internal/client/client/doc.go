// Package client is the gRPC client of identcore.v1.AccountService used by the
// CLI.
//
// GRPCClient keeps the current session token and attaches it to outgoing
// calls as access_token metadata. Service errors come back as *common.Error
// rebuilt from the status' ErrorInfo detail, so callers can switch on
// common.KindOf. Transport failures are reported as ErrUnavailable.
package client
