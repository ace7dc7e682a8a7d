// Package client is the caller side of the safekey.v1.Vault gRPC service.
//
// GRPCClient owns one connection and wraps the generated pb.VaultClient
// with a typed method per vault operation used by the CLI. Status codes,
// and the ErrorInfo reason on FailedPrecondition, are translated back into
// the sentinel errors of this package so callers can match them with
// errors.Is.
package client
