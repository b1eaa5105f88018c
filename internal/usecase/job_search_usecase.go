package usecase

import (
	"context"
	"log"
	"time"

	"job-portal/internal/domain/job"
	"job-portal/internal/domain/search"
	"job-portal/internal/repository"
)

type JobSearchParams struct {
	TextQuery        string
	LocationQuery    string
	JobTypes         []job.Type
	ExperienceLevels []job.ExperienceLevel
	MinSalary        int
	Page             int
	PageSize         int
}

type JobSearchPage struct {
	Jobs  []job.Job
	Total int
	Page  int
	Size  int
}

type JobSearchUsecase interface {
	SearchJobs(ctx context.Context, params JobSearchParams) (JobSearchPage, error)
}

type JobSearch struct {
	jobs            repository.JobRepository
	cache           SearchCache
	logger          *log.Logger
	defaultPageSize int
}

func NewJobSearchUsecase(jobs repository.JobRepository, cache SearchCache, logger *log.Logger, defaultPageSize int) *JobSearch {
	if defaultPageSize <= 0 {
		defaultPageSize = 6
	}
	return &JobSearch{jobs: jobs, cache: cache, logger: logger, defaultPageSize: defaultPageSize}
}

// SearchJobs filters the catalog with AND-combined predicates and returns one
// 1-indexed page plus the total-after-filter count. Filtering preserves
// catalog order; an empty page past the end is a normal result.
func (u *JobSearch) SearchJobs(ctx context.Context, params JobSearchParams) (JobSearchPage, error) {
	if params.Page == 0 {
		params.Page = 1
	}
	if params.Page < 1 {
		return JobSearchPage{}, ErrInvalidInput
	}
	if params.PageSize == 0 {
		params.PageSize = u.defaultPageSize
	}
	if params.PageSize < 1 || params.PageSize > 50 {
		return JobSearchPage{}, ErrInvalidInput
	}
	if params.MinSalary < 0 {
		return JobSearchPage{}, ErrInvalidInput
	}

	cacheKey := JobsSearchCacheKey(params)
	lockKey := JobsSearchLockKey(cacheKey)

	if u.cache != nil {
		var cached JobSearchPage
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Jobs] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
		if u.logger != nil {
			u.logger.Printf("[Jobs] Cache MISS: %s", cacheKey)
		}

		ok, err := u.cache.SetIfNotExists(ctx, lockKey, "1", 30*time.Second)
		if err == nil && !ok {
			// Another request is filling this key; give it a moment.
			jitterMs := time.Duration(time.Now().UnixNano()%201) * time.Millisecond
			time.Sleep(300*time.Millisecond + jitterMs)
			hit, err2 := u.cache.GetJSON(ctx, cacheKey, &cached)
			if err2 == nil && hit {
				if u.logger != nil {
					u.logger.Printf("[Jobs] Cache HIT: %s", cacheKey)
				}
				return cached, nil
			}
		}
	}

	catalog, err := u.jobs.ListAll(ctx)
	if err != nil {
		return JobSearchPage{}, ErrPersistenceFailure
	}

	filtered := search.Apply(catalog, search.Filter{
		TextQuery:        params.TextQuery,
		LocationQuery:    params.LocationQuery,
		JobTypes:         params.JobTypes,
		ExperienceLevels: params.ExperienceLevels,
		MinSalary:        params.MinSalary,
	})

	page := JobSearchPage{
		Jobs:  search.Paginate(filtered, params.Page, params.PageSize),
		Total: len(filtered),
		Page:  params.Page,
		Size:  params.PageSize,
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, page, 0)
		_ = u.cache.Delete(ctx, lockKey)
	}

	return page, nil
}
