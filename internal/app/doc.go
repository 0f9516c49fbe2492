// Package app will hold the application services (portfolio management,
// pricing, risk assessment) once their domain aggregates exist.
// See docs/architecture.md for the planned design.
package app
