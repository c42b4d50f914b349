//go:build integration_pg

// Package storetest starts throwaway Postgres and Redis containers for integration tests
package storetest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// start runs req and returns host:port for the first exposed port; the container is
// terminated on test cleanup
func start(t *testing.T, req tc.ContainerRequest) string {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("failed to start %s: %v", req.Image, err)
	}
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	mapped, err := c.MappedPort(ctx, nat.Port(req.ExposedPorts[0]))
	if err != nil {
		t.Fatalf("mapped port: %v", err)
	}
	return fmt.Sprintf("%s:%s", host, mapped.Port())
}

// Postgres starts postgres:16-alpine and returns a DSN
func Postgres(t *testing.T) string {
	t.Helper()
	addr := start(t, tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "filmnames",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		).WithDeadline(2 * time.Minute),
	})
	return fmt.Sprintf("postgres://postgres:postgres@%s/filmnames?sslmode=disable", addr)
}

// Redis starts redis:7-alpine and returns its address
func Redis(t *testing.T) string {
	t.Helper()
	return start(t, tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(time.Minute),
	})
}

// Schema is the minimal DDL the name tools read and write
const Schema = `
CREATE TABLE IF NOT EXISTS known_first_names (
	name text
);
CREATE TABLE IF NOT EXISTS people (
	id         bigint PRIMARY KEY,
	slug       text NOT NULL,
	first_name text,
	last_name  text,
	updated_at timestamptz NOT NULL DEFAULT now()
);`
