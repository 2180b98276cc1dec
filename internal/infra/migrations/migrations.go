package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var FS embed.FS

const dir = "sql"

// Up применяет все непримененные миграции
func Up(db *sql.DB) error {
	goose.SetBaseFS(FS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("migrations: set dialect: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migrations: up: %w", err)
	}

	return nil
}

// Count количество встроенных миграций
func Count() (int, error) {
	goose.SetBaseFS(FS)
	defer goose.SetBaseFS(nil)

	migrations, err := goose.CollectMigrations(dir, 0, goose.MaxVersion)
	if err != nil {
		return 0, fmt.Errorf("migrations: collect: %w", err)
	}
	return len(migrations), nil
}
