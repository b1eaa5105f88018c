package app

import (
	"context"
	"log"
	"time"

	"job-portal/internal/config"
	"job-portal/internal/database"
	dbpostgres "job-portal/internal/database/postgres"
	"job-portal/internal/database/seeder"
	"job-portal/internal/infrastructure/cache"
	"job-portal/internal/pkg/jwt"
	"job-portal/internal/repository"
	"job-portal/internal/resume"
	"job-portal/internal/storage"
	"job-portal/internal/usecase"
	"job-portal/internal/ws"
)

// Container wires the full dependency graph: storage, cache, usecases, and
// the websocket hub. Close tears down what NewContainer opened.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
	JWT   jwt.Service
	Hub   *ws.Hub

	AuthUC      usecase.AuthUsecase
	UserUC      usecase.UserUsecase
	ResumeUC    usecase.ResumeUsecase
	MatchingUC  usecase.MatchingUsecase
	JobUC       usecase.JobUsecase
	JobSearchUC usecase.JobSearchUsecase
	AppUC       usecase.ApplicationUsecase
	AdminUC     usecase.AdminUsecase
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Database.SeedOnBoot {
		if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	resumeStore, err := storage.NewResumeStore(cfg.Uploads.ResumeDir, cfg.Uploads.MaxResumeSize)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	userRepo := repository.NewPostgresUserRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	appRepo := repository.NewPostgresApplicationRepository(db)

	hub := ws.NewHub(logger)

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  redisCache,
		JWT:    jwtSvc,
		Hub:    hub,
	}

	c.AuthUC = usecase.NewAuthUsecase(userRepo, jwtSvc)
	c.UserUC = usecase.NewUserUsecase(userRepo, jobRepo)
	c.ResumeUC = usecase.NewResumeUsecase(
		userRepo,
		resumeStore,
		resume.NewTextExtractor(),
		resume.NewSignalExtractor(cfg.Matching.SkillVocabulary),
	)
	c.MatchingUC = usecase.NewMatchingUsecase(userRepo, jobRepo)
	c.JobUC = usecase.NewJobUsecase(jobRepo, redisCache, ws.NewNotifier(hub))
	c.JobSearchUC = usecase.NewJobSearchUsecase(jobRepo, redisCache, logger, cfg.Matching.SearchPageSize)
	c.AppUC = usecase.NewApplicationUsecase(appRepo, jobRepo, userRepo)
	c.AdminUC = usecase.NewAdminUsecase(userRepo, jobRepo, appRepo)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
