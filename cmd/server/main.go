package main

import (
	"log"

	"github.com/BatistaGabriel/invest-port/internal/domain"
)

func main() {
	// Only the domain layer is implemented so far. Persistence (PostgreSQL),
	// caching (Redis), messaging (RabbitMQ) and the HTTP API are planned in
	// docs/architecture.md and will be wired here once they exist.
	balance := domain.Zero()
	log.Printf("invest-port scaffold starting (opening balance %s)", balance)
	log.Println("no API surface is implemented yet; nothing to serve")
}
