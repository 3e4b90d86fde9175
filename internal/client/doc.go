// Package client provides an HTTP implementation of domain.RemoteExecutor,
// so the CLI can drive a running wordbot server.
//
// Non-2xx statuses are returned as errors with the HTTP method, path and
// status text. Rendered failures (a Result with Failed set) are not errors.
package client
