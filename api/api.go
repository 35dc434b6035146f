// Package api embeds the OpenAPI contract of the HTTP API.
package api

import _ "embed"

// Spec is the OpenAPI 3 document served at /api/openapi.yaml and used to
// validate incoming requests.
//
//go:embed openapi.yaml
var Spec []byte
