package db

import (
	"context"
	"database/sql"

	"github.com/apsihub/apsi-auth/internal/server/users"
)

// RepositoryManager owns the database handle and hands out repositories.
// It is constructed once at startup and closed on shutdown; no package-level
// pool exists.
type RepositoryManager interface {
	RunMigrations(context.Context) error
	Ping(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Close() error
}
