// Package testhelper provides a migrated PostgreSQL for integration tests.
package testhelper

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/prodcost-backend/internal/adapter/postgres"
)

// DSNEnv names an already running database to migrate and use instead of
// starting a container.
const DSNEnv = "TEST_DATABASE_DSN"

const (
	image    = "postgres:17-alpine"
	user     = "prodcost"
	password = "prodcost"
	dbName   = "prodcost_test"
)

var (
	once      sync.Once
	sharedDSN string
	initErr   error
)

// SetupTestDSN returns the DSN of the shared, fully migrated test database.
// The container is started once per test binary and lives until it exits.
func SetupTestDSN(t *testing.T) string {
	t.Helper()

	once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		sharedDSN, initErr = provision(ctx)
	})
	if initErr != nil {
		t.Fatalf("testhelper: %v", initErr)
	}
	return sharedDSN
}

// SetupTestDB returns a pool on the shared database, closed on test cleanup.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := SetupTestDSN(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("testhelper: pool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func provision(ctx context.Context) (string, error) {
	dsn := os.Getenv(DSNEnv)
	if dsn == "" {
		var err error
		if dsn, err = startContainer(ctx); err != nil {
			return "", err
		}
	}

	m, err := postgres.NewMigrator(ctx, dsn)
	if err != nil {
		return "", fmt.Errorf("migrator: %w", err)
	}
	defer m.Close() //nolint:errcheck

	if _, err := m.Up(ctx); err != nil {
		return "", err
	}
	return dsn, nil
}

func startContainer(ctx context.Context) (string, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     user,
				"POSTGRES_PASSWORD": password,
				"POSTGRES_DB":       dbName,
			},
			// Postgres logs readiness twice: once for the init run, once for real.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start %s: %w", image, err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("container port: %w", err)
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     net.JoinHostPort(host, port.Port()),
		Path:     dbName,
		RawQuery: "sslmode=disable",
	}
	return u.String(), nil
}
