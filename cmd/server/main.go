package main // Entry point package

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/movie-portal/internal/config"
	"github.com/iliyamo/movie-portal/internal/database"
	"github.com/iliyamo/movie-portal/internal/handler"
	"github.com/iliyamo/movie-portal/internal/middleware"
	"github.com/iliyamo/movie-portal/internal/query"
	"github.com/iliyamo/movie-portal/internal/queue"
	"github.com/iliyamo/movie-portal/internal/repository"
	"github.com/iliyamo/movie-portal/internal/router"
	queue_publisher "github.com/iliyamo/movie-portal/internal/service"
	"github.com/iliyamo/movie-portal/internal/session"
	"github.com/iliyamo/movie-portal/internal/view"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	exec := query.NewExecutor(db)

	// Redis backs sessions and the login rate limiter; both degrade when it
	// is unreachable.
	rdb := config.NewRedisClient()
	var store session.Store
	if rdb != nil {
		store = session.NewRedisStore(rdb, time.Duration(cfg.SessionTTLMin)*time.Minute)
	} else {
		log.Printf("redis unavailable: sessions will not survive a restart")
		store = session.NewMemoryStore()
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.HTTPErrorHandler = handler.HTTPErrorHandler
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(middleware.Session(store))

	users := repository.NewUserRepo(exec)
	reports := repository.NewReportRepo(exec)

	var events handler.EventPublisher
	if os.Getenv("RABBITMQ_URL") != "" || os.Getenv("AMQP_URL") != "" {
		events = queue_publisher.Publisher{}
		go func() {
			if err := queue.StartRegistrationConsumer(); err != nil {
				log.Printf("registration consumer stopped: %v", err)
			}
		}()
	}

	auth := handler.NewAuthHandler(cfg, users, store, events)
	rep := handler.NewReportHandler(reports)
	limit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, auth, limit)
	router.RegisterReports(e, rep)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
