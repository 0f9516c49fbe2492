// Package api will hold the HTTP API layer (handlers, request/response DTOs,
// middleware) once the application services exist.
// See docs/architecture.md for the planned design.
package api
