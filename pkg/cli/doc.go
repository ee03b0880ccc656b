// Package cli implements the command-line interface for the k3sgated server.
//
// # Commands
//
// serve - Start the REST API server:
//
//	k3sgated serve [--port PORT] [--kubeconfig PATH] [--log-level LEVEL]
//
// Starts the HTTP server exposing pods, services, and ingresses (CRUD) plus
// read-only namespaces. Cluster connectivity is verified before the server
// accepts traffic.
//
// # Configuration
//
// Every flag can also be set through its environment variable (PORT,
// ADDRESS, KUBECONFIG, LOG_LEVEL, RATE_LIMIT, REQUEST_TIMEOUT_SECONDS).
// Flags take precedence over the environment.
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid configuration, cluster unreachable, server failure)
package cli
