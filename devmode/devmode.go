// Package devmode provides the shared development-environment constants used by
// the client and the CLI to decide where the backend lives.
package devmode

// BackendURL is the local FastAPI backend used when no reverse proxy fronts the API.
const BackendURL = "http://localhost:8000"

// ProxyDomain is the hosted preview domain whose dev server forwards /api to the backend.
const ProxyDomain = "clackypaas.com"

// LoopbackHosts are page hostnames served by the local dev server, which proxies /api.
var LoopbackHosts = []string{"localhost", "127.0.0.1"}
