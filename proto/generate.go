// Package proto holds the generated gRPC bindings for the headless
// renderer sidecar. Run `go generate ./proto` after changing
// renderer.proto.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative renderer.proto
