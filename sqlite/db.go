// Package sqlite implements studygo's Database and TaskRepo interfaces
package sqlite

import (
	"database/sql"
	"embed"
	"errors"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	_ "modernc.org/sqlite"

	"github.com/benjamonnguyen/studygo"
)

//go:embed migrations/*.sql
var migrations embed.FS

type database struct {
	conn *sql.DB
}

var _ studygo.Database = (*database)(nil)

// Open creates the database file's parent directory if needed; the default
// path lives under ~/.studygo, which does not exist on a fresh machine.
func Open(url string) (*database, error) {
	if err := os.MkdirAll(filepath.Dir(url), 0o744); err != nil {
		return nil, err
	}
	conn, err := sql.Open("sqlite", url)
	if err != nil {
		return nil, err
	}
	return &database{
		conn: conn,
	}, nil
}

func (db *database) DB() *sql.DB {
	return db.conn
}

func (db *database) Migrate() error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}
	d, err := migratesqlite.WithInstance(db.conn, &migratesqlite.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", d)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func (db *database) Close() error {
	return db.conn.Close()
}
