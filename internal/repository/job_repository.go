package repository

import (
	"context"
	"database/sql"
	"errors"

	"job-portal/internal/database"
	"job-portal/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(ctx context.Context, j job.Job) error
	GetByID(ctx context.Context, id uuid.UUID) (job.Job, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	Update(ctx context.Context, j job.Job) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ListAll returns the catalog newest-first; this order is what the search
	// filter and the matcher treat as stable input order.
	ListAll(ctx context.Context) ([]job.Job, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]job.Job, error)
	CountByCompany(ctx context.Context, companyID uuid.UUID) (int, error)
	Count(ctx context.Context) (int, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `j.id, j.title, j.description, j.company_id,
	COALESCE(NULLIF(u.company_name, ''), u.username),
	j.location, j.job_type, j.experience_level, j.salary,
	COALESCE(j.requirements, '{}'), j.created_at, j.updated_at`

const jobFromClause = ` FROM jobs j JOIN users u ON u.id = j.company_id`

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, title, description, company_id, location, job_type, experience_level, salary, requirements, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())`,
		j.ID, j.Title, j.Description, j.CompanyID, j.Location,
		string(j.JobType), string(j.ExperienceLevel), j.Salary, j.Requirements,
	)
	return err
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+jobFromClause+` WHERE j.id = $1`, id)
	return scanJob(row)
}

func (r *PostgresJobRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}

func (r *PostgresJobRepository) Update(ctx context.Context, j job.Job) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE jobs
		 SET title = $2, description = $3, location = $4, job_type = $5,
		     experience_level = $6, salary = $7, requirements = $8, updated_at = now()
		 WHERE id = $1`,
		j.ID, j.Title, j.Description, j.Location,
		string(j.JobType), string(j.ExperienceLevel), j.Salary, j.Requirements,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *PostgresJobRepository) ListAll(ctx context.Context) ([]job.Job, error) {
	rows, err := r.db.Query(ctx, `SELECT `+jobColumns+jobFromClause+` ORDER BY j.created_at DESC, j.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func (r *PostgresJobRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+jobFromClause+` WHERE j.company_id = $1 ORDER BY j.created_at DESC, j.id`,
		companyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func (r *PostgresJobRepository) CountByCompany(ctx context.Context, companyID uuid.UUID) (int, error) {
	var n int
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE company_id = $1`, companyID)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresJobRepository) Count(ctx context.Context) (int, error) {
	var n int
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	var jobType, expLevel string
	err := row.Scan(
		&j.ID, &j.Title, &j.Description, &j.CompanyID, &j.CompanyName,
		&j.Location, &jobType, &expLevel, &j.Salary,
		&j.Requirements, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	j.JobType = job.Type(jobType)
	j.ExperienceLevel = job.ExperienceLevel(expLevel)
	return j, nil
}

func scanJobs(rows database.Rows) ([]job.Job, error) {
	out := make([]job.Job, 0)
	for rows.Next() {
		var j job.Job
		var jobType, expLevel string
		if err := rows.Scan(
			&j.ID, &j.Title, &j.Description, &j.CompanyID, &j.CompanyName,
			&j.Location, &jobType, &expLevel, &j.Salary,
			&j.Requirements, &j.CreatedAt, &j.UpdatedAt,
		); err != nil {
			return nil, err
		}
		j.JobType = job.Type(jobType)
		j.ExperienceLevel = job.ExperienceLevel(expLevel)
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
