// Package llmv1 contains the generated gRPC client/server stubs for the
// LLM backend contract defined in llm.proto. Run `go generate ./...` (with
// protoc and the protoc-gen-go / protoc-gen-go-grpc plugins on PATH) to
// produce llm.pb.go and llm_grpc.pb.go from the schema below — mirrors
// ent/generate.go's "schema committed, generated client is not" split.
package llmv1

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative llm.proto
