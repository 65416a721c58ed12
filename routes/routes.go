package routes

// Package routes wires the HTTP surface of the validation service.
//
// Layout:
// - api.go: versioned API routes (/v1/*), health probes, middleware
// - web.go: informational routes (/, /docs)
//
// Usage:
// routes.SetupAllRoutes(router, controllers)
