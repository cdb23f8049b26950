package postgresql

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Migrate applies every embedded schema file in name order. Statements are idempotent.
func Migrate(ctx context.Context, db *sql.DB) ([]string, error) {
	files, err := fs.Glob(schemaFS, "schema/*.sql")
	if err != nil {
		return nil, fmt.Errorf("Migrate (listing schema): %w", err)
	}
	sort.Strings(files)

	for _, name := range files {
		stmt, err := schemaFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("Migrate (reading %s): %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(stmt)); err != nil {
			return nil, fmt.Errorf("Migrate (applying %s): %w", name, err)
		}
	}
	return files, nil
}
