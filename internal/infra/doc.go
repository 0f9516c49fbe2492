// Package infra will hold the infrastructure adapters: PostgreSQL
// repositories, the Redis cache and the RabbitMQ publisher.
// See docs/architecture.md for the planned design.
package infra
