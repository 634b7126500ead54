package pg

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/forumapi/forumapi/internal/config"
	"github.com/forumapi/forumapi/internal/domain"
)

var storage *Storage

func TestMain(m *testing.M) {
	ctx := context.Background()
	var container *postgres.PostgresContainer
	storage, container = mustSetup(ctx)
	defer teardown(ctx, storage, container)

	exitCode := m.Run()
	os.Exit(exitCode)
}

func mustSetup(ctx context.Context) (*Storage, *postgres.PostgresContainer) {
	dbName := "forumapi"
	dbUser := "user"
	dbPassword := "password"
	container, err := postgres.Run(ctx,
		"postgres:15.3-alpine",
		postgres.WithInitScripts(filepath.Join("..", "..", "..", "migrations", "init.sql")),
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			// The container restarts itself after the first startup, so wait
			// for the readiness log twice.
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start container: %s", err)
	}
	containerPort, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		log.Fatalf("failed to obtain container port: %s", err)
	}
	port, err := strconv.Atoi(containerPort.Port())
	if err != nil {
		log.Fatalf("failed to obtain int container port: %s", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		log.Fatalf("failed to obtain container host: %s", err)
	}

	storage, err := New(&config.Config{Public: config.Public{Pg: config.Pg{
		Host: host, Port: port, User: dbUser, Password: dbPassword, Dbname: dbName,
	}}})
	if err != nil {
		log.Fatalf("failed to connect to postgres container: %s", err)
	}
	return storage, container
}

func teardown(ctx context.Context, storage *Storage, container *postgres.PostgresContainer) {
	if err := storage.Cleanup(); err != nil {
		log.Printf("failed to close storage connection: %s", err)
	}
	if err := container.Terminate(ctx); err != nil {
		log.Printf("failed to terminate container: %s", err)
	}
}

// --- Shared fixtures ---

func cleanTables(t *testing.T) {
	t.Helper()
	if _, err := storage.db.Exec("TRUNCATE users, threads, comments CASCADE"); err != nil {
		t.Fatalf("failed to clean tables: %s", err)
	}
}

func seedUser(t *testing.T, username string) domain.RegisteredUser {
	t.Helper()
	user, err := storage.SaveUser(domain.User{Username: username, Fullname: username + " fullname", PassHash: "hash"})
	if err != nil {
		t.Fatalf("failed to seed user: %s", err)
	}
	return user
}

func seedThread(t *testing.T, owner string) domain.CreatedThread {
	t.Helper()
	thread, err := storage.CreateThread(domain.Thread{Title: "Sunset", Body: "Beautiful day for enjoy", Owner: owner})
	if err != nil {
		t.Fatalf("failed to seed thread: %s", err)
	}
	return thread
}

func seedComment(t *testing.T, owner, thread, content string) domain.CreatedComment {
	t.Helper()
	comment, err := storage.CreateComment(domain.Comment{Content: content, Owner: owner, Thread: thread})
	if err != nil {
		t.Fatalf("failed to seed comment: %s", err)
	}
	return comment
}
