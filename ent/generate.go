// Package ent contains the generated entity client for the business case
// aggregate and its supporting catalogs. Run `go generate ./...` to produce
// the client from the schemas in ent/schema.
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate ./schema
