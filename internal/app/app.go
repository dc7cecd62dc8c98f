package app

import (
	"fmt"
	"net/http"

	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/copa-nordeste/copa-api/internal/config"
	"github.com/copa-nordeste/copa-api/internal/domain/adminteam"
	"github.com/copa-nordeste/copa-api/internal/domain/athlete"
	"github.com/copa-nordeste/copa-api/internal/domain/championship"
	"github.com/copa-nordeste/copa-api/internal/domain/competition"
	"github.com/copa-nordeste/copa-api/internal/domain/contact"
	"github.com/copa-nordeste/copa-api/internal/domain/match"
	"github.com/copa-nordeste/copa-api/internal/domain/news"
	"github.com/copa-nordeste/copa-api/internal/domain/referee"
	"github.com/copa-nordeste/copa-api/internal/domain/team"
	"github.com/copa-nordeste/copa-api/internal/infrastructure/repository/memory"
	"github.com/copa-nordeste/copa-api/internal/infrastructure/repository/postgres"
	"github.com/copa-nordeste/copa-api/internal/interfaces/httpapi"
	"github.com/copa-nordeste/copa-api/internal/platform/cache"
	"github.com/copa-nordeste/copa-api/internal/platform/id"
	"github.com/copa-nordeste/copa-api/internal/platform/logging"
	"github.com/copa-nordeste/copa-api/internal/usecase"
)

type repositorySet struct {
	teams         team.Repository
	competitions  competition.Repository
	matches       match.Repository
	news          news.Repository
	contacts      contact.Repository
	championships championship.Repository
	adminTeams    adminteam.Repository
	athletes      athlete.Repository
	referees      referee.Repository
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	repos, closeStorage, err := newRepositories(cfg)
	if err != nil {
		return nil, err
	}

	var cacheStore *cache.Store
	if cfg.CacheEnabled {
		cacheStore = cache.NewStore(cfg.CacheTTL)
	}

	ids := id.NewUUIDGenerator()

	objects, err := newObjectGateway(cfg, logger, ids)
	if err != nil {
		closeStorage()
		return nil, err
	}

	// Sessions are held in memory regardless of the storage driver: they
	// are revocable server state, not durable domain data.
	authService := usecase.NewAuthService(
		memory.NewSessionRepository(),
		cfg.AdminUsername,
		cfg.AdminPassword,
		cfg.SessionTTL,
		nil,
	)

	handler := httpapi.NewHandler(
		usecase.NewTeamService(repos.teams, cacheStore),
		usecase.NewCompetitionService(repos.competitions, repos.matches),
		usecase.NewMatchService(repos.matches),
		usecase.NewNewsService(repos.news, cacheStore, ids, nil),
		usecase.NewContactService(repos.contacts, ids, nil),
		usecase.NewChampionshipService(repos.championships, repos.adminTeams, ids, nil),
		usecase.NewAdminTeamService(repos.adminTeams, ids, nil),
		usecase.NewAthleteService(repos.athletes, repos.adminTeams, ids, nil),
		usecase.NewRefereeService(repos.referees, ids, nil),
		authService,
		usecase.NewMediaService(objects),
		logger,
	)

	router := httpapi.NewRouter(handler, authService, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		closeStorage()
		return nil, fmt.Errorf("http server addr cannot be empty")
	}
	server.RegisterOnShutdown(closeStorage)

	return server, nil
}

func newRepositories(cfg config.Config) (repositorySet, func(), error) {
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		store := memory.NewAdminStore()
		return repositorySet{
			teams:         memory.NewTeamRepository(memory.SeedTeams()),
			competitions:  memory.NewCompetitionRepository(memory.SeedCompetitions()),
			matches:       memory.NewMatchRepository(memory.SeedMatches()),
			news:          memory.NewNewsRepository(memory.SeedNews()),
			contacts:      memory.NewContactRepository(),
			championships: memory.NewChampionshipRepository(store),
			adminTeams:    memory.NewAdminTeamRepository(store, nil),
			athletes:      memory.NewAthleteRepository(store, nil),
			referees:      memory.NewRefereeRepository(),
		}, func() {}, nil

	case config.StorageDriverPostgres:
		dbURL := pgConnString(cfg.DBURL, cfg.DBDisablePreparedBinary)
		db, err := otelsqlx.Connect("postgres", dbURL, otelsql.WithDBName(pgDatabaseName(cfg.DBURL)))
		if err != nil {
			return repositorySet{}, nil, fmt.Errorf("connect database: %w", err)
		}
		return repositorySet{
			teams:         postgres.NewTeamRepository(db),
			competitions:  postgres.NewCompetitionRepository(db),
			matches:       postgres.NewMatchRepository(db),
			news:          postgres.NewNewsRepository(db),
			contacts:      postgres.NewContactRepository(db),
			championships: postgres.NewChampionshipRepository(db),
			adminTeams:    postgres.NewAdminTeamRepository(db),
			athletes:      postgres.NewAthleteRepository(db),
			referees:      postgres.NewRefereeRepository(db),
		}, func() { _ = db.Close() }, nil

	default:
		return repositorySet{}, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}
