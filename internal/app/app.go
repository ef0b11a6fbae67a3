package app

import (
	"net/http"

	"mealpoll-go/internal/config"
	"mealpoll-go/internal/db"
	admindomain "mealpoll-go/internal/domain/admin"
	catalogdomain "mealpoll-go/internal/domain/catalog"
	exportdomain "mealpoll-go/internal/domain/export"
	mealdomain "mealpoll-go/internal/domain/meal"
	responsedomain "mealpoll-go/internal/domain/response"
	adminrepo "mealpoll-go/internal/repository/admin"
	catalogrepo "mealpoll-go/internal/repository/catalog"
	exportrepo "mealpoll-go/internal/repository/export"
	mealrepo "mealpoll-go/internal/repository/meal"
	responserepo "mealpoll-go/internal/repository/response"
	"mealpoll-go/internal/transport/httpserver"
	"mealpoll-go/internal/transport/httpserver/handler"
	"mealpoll-go/internal/transport/httpserver/middleware"
	"mealpoll-go/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB)
	if err != nil {
		return nil, err
	}

	log.Info("app: applying migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	catalogService := catalogdomain.NewService(catalogrepo.NewPostgres(dbConn))
	mealService := mealdomain.NewService(mealrepo.NewPostgres(dbConn))
	responseService := responsedomain.NewService(responserepo.NewPostgres(dbConn))
	adminService := admindomain.NewService(adminrepo.NewPostgres(dbConn), cfg.Auth.SessionTTL)
	exportService := exportdomain.NewService(exportrepo.NewPostgres(dbConn))

	auth := middleware.NewSessionAuth(adminService, cfg.Auth.CookieName, log)
	handlers := handler.New(
		catalogService,
		mealService,
		responseService,
		adminService,
		exportService,
		auth,
		cfg.Auth.CookieName,
		cfg.Auth.CookieSecure,
		log,
	)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers, auth)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
