// Package proto holds the generated messages and gRPC bindings of the
// identcore.v1.AccountService API.
package proto

//go:generate protoc -I ../../proto --go_out=. --go_opt=paths=source_relative,Midentcore/v1/account.proto=github.com/dmitrijs2005/identcore/internal/proto --go-grpc_out=. --go-grpc_opt=paths=source_relative,Midentcore/v1/account.proto=github.com/dmitrijs2005/identcore/internal/proto identcore/v1/account.proto
