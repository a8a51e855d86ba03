// Package playground serves the transform over HTTP.
//
// Routes:
//
//	POST /v1/transform?format=json|msgpack|binary&indent=1
//	POST /v1/lint
//	GET  /v1/formats
//	GET  /healthz
//	GET  /metrics
//
// Request bodies are tree documents (pkg/tree) in JSON or YAML, chosen by
// Content-Type and sniffed when it is missing. Errors are returned as the
// JSON form of internal/errors.Error with a status derived from the code.
package playground
