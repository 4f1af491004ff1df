// Package openapi embeds the OpenAPI description of the trip planner API.
// The server serves it at /openapi.yaml so the document ships with the
// binary that implements it.
package openapi

import _ "embed"

// Document contains the raw bytes of openapi.yaml, embedded at compile time.
//
//go:embed openapi.yaml
var Document []byte
