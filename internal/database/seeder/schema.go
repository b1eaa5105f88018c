package seeder

import (
	"context"
	"fmt"

	"job-portal/internal/database"
)

// SchemaSeeder creates the portal tables when they do not exist yet. It runs
// first so the sample-data seeders always find their tables.
type SchemaSeeder struct{}

func (SchemaSeeder) Name() string { return "schema" }

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		resume_path TEXT NOT NULL DEFAULT '',
		skills TEXT[] NOT NULL DEFAULT '{}',
		company_name TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		logo TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		website TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		company_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		location TEXT NOT NULL DEFAULT '',
		job_type TEXT NOT NULL,
		experience_level TEXT NOT NULL,
		salary INTEGER,
		requirements TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id UUID PRIMARY KEY,
		job_id UUID NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		candidate_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		resume_path TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (job_id, candidate_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_company_id ON jobs (company_id)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_created_at ON jobs (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_job_id ON applications (job_id)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_candidate_id ON applications (candidate_id)`,
}

func (SchemaSeeder) Run(ctx context.Context, db database.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	return EnsureTableColumns(ctx, db, "users",
		"id", "username", "email", "password_hash", "role",
		"resume_path", "skills", "company_name", "location",
		"logo", "description", "website", "created_at", "updated_at",
	)
}

// EnsureTableColumns verifies a table carries the columns the repositories
// scan, catching drift between an existing database and the code.
func EnsureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if table == "" {
		return fmt.Errorf("empty table")
	}
	for _, col := range columns {
		if col == "" {
			return fmt.Errorf("empty column")
		}
	}

	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			return fmt.Errorf("schema mismatch: missing column %s.%s", table, col)
		}
	}
	return nil
}
