// Package db wires the PostgreSQL connection pool, the repositories built on
// it, and schema migrations.
package db

import (
	"context"
	"database/sql"

	"github.com/ndmitriev/authcore/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Close() error
	Users() users.Repository
}
