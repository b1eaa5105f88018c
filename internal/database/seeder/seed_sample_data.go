package seeder

import (
	"context"
	"fmt"

	"job-portal/internal/database"

	"golang.org/x/crypto/bcrypt"
)

// SampleDataSeeder loads a demo employer and a starter job catalog so a fresh
// install has something to search against. Inserts are keyed on email and
// title+company, re-running is a no-op.
type SampleDataSeeder struct{}

func (SampleDataSeeder) Name() string { return "sample_data" }

type sampleJob struct {
	Title           string
	Description     string
	Location        string
	JobType         string
	ExperienceLevel string
	Salary          int
	Requirements    []string
}

var sampleJobs = []sampleJob{
	{
		Title:           "Frontend Developer",
		Description:     "Build and maintain customer-facing React applications.",
		Location:        "Jakarta",
		JobType:         "Full Time",
		ExperienceLevel: "Mid Level",
		Salary:          9000,
		Requirements:    []string{"javascript", "react", "sql"},
	},
	{
		Title:           "Backend Engineer",
		Description:     "Design APIs and data pipelines for the hiring platform.",
		Location:        "Bandung",
		JobType:         "Remote",
		ExperienceLevel: "Senior Level",
		Salary:          12000,
		Requirements:    []string{"node", "mongodb", "aws", "docker"},
	},
	{
		Title:           "Data Engineer",
		Description:     "Own the reporting warehouse and ingestion jobs.",
		Location:        "Jakarta",
		JobType:         "Contract",
		ExperienceLevel: "Mid Level",
		Salary:          10000,
		Requirements:    []string{"python", "sql", "aws"},
	},
	{
		Title:           "Junior Java Developer",
		Description:     "Support internal tooling under senior guidance.",
		Location:        "Surabaya",
		JobType:         "Part Time",
		ExperienceLevel: "Entry Level",
		Requirements:    []string{"java", "sql"},
	},
}

func (SampleDataSeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = tx.Exec(
		ctx,
		`INSERT INTO users (id, username, email, password_hash, role, company_name, location, description, website)
		 VALUES (gen_random_uuid(), $1, $2, $3, 'employer', $4, $5, $6, $7)
		 ON CONFLICT (email) DO NOTHING`,
		"acme", "jobs@acme.example", string(hash),
		"Acme Software", "Jakarta",
		"Product studio building hiring tools.", "https://acme.example",
	)
	if err != nil {
		return err
	}

	var companyID string
	if err := tx.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, "jobs@acme.example").Scan(&companyID); err != nil {
		return fmt.Errorf("sample employer lookup: %w", err)
	}

	for _, j := range sampleJobs {
		var salary any
		if j.Salary > 0 {
			salary = j.Salary
		}
		_, err := tx.Exec(
			ctx,
			`INSERT INTO jobs (id, title, description, company_id, location, job_type, experience_level, salary, requirements)
			 SELECT gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8
			 WHERE NOT EXISTS (SELECT 1 FROM jobs WHERE title = $1 AND company_id = $3)`,
			j.Title, j.Description, companyID, j.Location, j.JobType, j.ExperienceLevel, salary, j.Requirements,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
