package database

import (
	"database/sql"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/alimgiray/projectboard/migrations"
	"github.com/alimgiray/projectboard/pkg/config"
	"github.com/alimgiray/projectboard/pkg/logger"
	_ "github.com/mattn/go-sqlite3"
)

var DB *sql.DB

const connParams = "_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=ON&_busy_timeout=30000"

// Init opens the database configured in config.AppConfig and applies the schema
func Init() error {
	db, err := Open(config.AppConfig.Database.Path)
	if err != nil {
		return err
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(time.Hour)

	if err := RunSQLScripts(db); err != nil {
		db.Close()
		return err
	}

	DB = db
	logger.WithField("path", config.AppConfig.Database.Path).Info("Database connected successfully with WAL mode")
	return nil
}

// Open opens a SQLite database at path (creating it if needed) and applies
// the connection pragmas.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?"+connParams)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := optimizeDatabase(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// OpenInMemory returns a migrated in-memory database. The pool is pinned to a
// single connection since every SQLite memory connection is its own database.
func OpenInMemory() (*sql.DB, error) {
	db, err := Open(":memory:")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := RunSQLScripts(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// optimizeDatabase configures SQLite for concurrent web traffic
func optimizeDatabase(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA cache_size=10000",
		"PRAGMA temp_store=MEMORY",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=30000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}
	return nil
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// RunSQLScripts executes the embedded schema scripts in name order
func RunSQLScripts(db *sql.DB) error {
	files, err := fs.ReadDir(migrations.FS, ".")
	if err != nil {
		return err
	}

	for _, file := range files {
		if filepath.Ext(file.Name()) != ".sql" {
			continue
		}

		sqlContent, err := fs.ReadFile(migrations.FS, file.Name())
		if err != nil {
			return err
		}

		if _, err := db.Exec(string(sqlContent)); err != nil {
			return fmt.Errorf("run %s: %w", file.Name(), err)
		}

		logger.Debugf("Executed SQL script: %s", file.Name())
	}

	return nil
}
