// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/spf13/cast"

	"github.com/pdiddy/quizgen/internal/table"
)

// openMemory opens a throwaway in-memory DuckDB session for one read or
// write. All cell data stays VARCHAR; DuckDB handles the file format.
func openMemory() (*sql.DB, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("opening duckdb: %w", err)
	}
	return db, nil
}

func readCSV(path, delim string) (*table.Table, error) {
	return readQuery(fmt.Sprintf(
		"SELECT * FROM read_csv(%s, all_varchar=true, delim=%s, header=true)",
		sqlString(path), sqlString(delim)))
}

func readJSON(path string) (*table.Table, error) {
	return readQuery(fmt.Sprintf("SELECT * FROM read_json_auto(%s)", sqlString(path)))
}

func readParquet(path string) (*table.Table, error) {
	return readQuery(fmt.Sprintf("SELECT * FROM read_parquet(%s)", sqlString(path)))
}

func readQuery(query string) (*table.Table, error) {
	db, err := openMemory()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading columns: %w", err)
	}

	t := &table.Table{Columns: cols}
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			row[i] = cast.ToString(v)
		}
		t.Rows = append(t.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}
	return t, nil
}

func writeCSV(t *table.Table, path, delim string) error {
	return copyTo(t, path, fmt.Sprintf("FORMAT CSV, HEADER true, DELIMITER %s", sqlString(delim)))
}

func writeJSON(t *table.Table, path string, array bool) error {
	opts := "FORMAT JSON"
	if array {
		opts += ", ARRAY true"
	}
	return copyTo(t, path, opts)
}

func writeParquet(t *table.Table, path string) error {
	return copyTo(t, path, "FORMAT PARQUET")
}

// copyTo stages the table in DuckDB and lets COPY serialize it to path.
func copyTo(t *table.Table, path, options string) error {
	if len(t.Columns) == 0 {
		return fmt.Errorf("writing %s: table has no columns", path)
	}

	db, err := openMemory()
	if err != nil {
		return err
	}
	defer db.Close()

	defs := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		defs[i] = sqlIdent(c) + " VARCHAR"
	}
	if _, err := db.Exec(fmt.Sprintf("CREATE TABLE data (%s)", strings.Join(defs, ", "))); err != nil {
		return fmt.Errorf("staging table: %w", err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(t.Columns)), ", ")
	stmt, err := db.Prepare(fmt.Sprintf("INSERT INTO data VALUES (%s)", placeholders))
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range t.Rows {
		vals := make([]any, len(t.Columns))
		for i := range vals {
			if i < len(row) {
				vals[i] = row[i]
			} else {
				vals[i] = ""
			}
		}
		if _, err := stmt.Exec(vals...); err != nil {
			return fmt.Errorf("staging row: %w", err)
		}
	}

	if _, err := db.Exec(fmt.Sprintf("COPY data TO %s (%s)", sqlString(path), options)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// sqlString quotes a string literal for embedding in DuckDB SQL.
func sqlString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// sqlIdent quotes a column identifier for embedding in DuckDB SQL.
func sqlIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
