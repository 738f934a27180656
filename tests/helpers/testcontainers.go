// Package helpers holds shared setup for the integration suite:
// container bring-up and database readiness.
package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	dbImage    = "mariadb:11"
	dbName     = "biblemap"
	dbUser     = "biblemap"
	dbPassword = "biblemap-test"
)

// MariaDB is a running throwaway database container.
type MariaDB struct {
	Container testcontainers.Container
	Host      string
	Port      string
}

// SkipUnlessIntegration skips the test unless RUN_INTEGRATION=true.
// The suite needs a Docker daemon, so it stays out of the default run.
func SkipUnlessIntegration(t *testing.T) {
	t.Helper()
	if os.Getenv("RUN_INTEGRATION") != "true" {
		t.Skip("set RUN_INTEGRATION=true to run container-backed tests")
	}
}

// StartMariaDB launches a MariaDB container and waits until the
// server accepts connections.
func StartMariaDB(t *testing.T) *MariaDB {
	t.Helper()
	ctx := context.Background()

	tcpPort, err := nat.NewPort("tcp", "3306")
	if err != nil {
		t.Fatalf("Failed to create DB port: %v", err)
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        dbImage,
			ExposedPorts: []string{string(tcpPort)},
			Env: map[string]string{
				"MARIADB_ROOT_PASSWORD": dbPassword,
				"MARIADB_DATABASE":      dbName,
				"MARIADB_USER":          dbUser,
				"MARIADB_PASSWORD":      dbPassword,
			},
			WaitingFor: wait.ForListeningPort(tcpPort).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("Failed to resolve container host: %v", err)
	}
	mappedPort, err := container.MappedPort(ctx, tcpPort)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("Failed to resolve mapped port: %v", err)
	}

	db := &MariaDB{Container: container, Host: host, Port: mappedPort.Port()}
	if err := db.waitReady(); err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("Database never became ready: %v", err)
	}

	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Failed to terminate MariaDB: %v", err)
		}
	})

	return db
}

// DSN returns the connection string for the test user.
func (m *MariaDB) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		dbUser, dbPassword, m.Host, m.Port, dbName)
}

// waitReady pings through the driver until the server answers.
// Listening-port readiness precedes auth readiness on MariaDB.
func (m *MariaDB) waitReady() error {
	raw, err := sql.Open("mysql", m.DSN())
	if err != nil {
		return err
	}
	defer raw.Close()

	deadline := time.Now().Add(60 * time.Second)
	for {
		err = raw.Ping()
		if err == nil {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("ping timeout: %w", err)
		}
		time.Sleep(time.Second)
	}
}
