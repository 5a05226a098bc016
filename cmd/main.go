package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/immxrtalbeast/roomgate/internal/api/http"
	"github.com/immxrtalbeast/roomgate/internal/config"
	"github.com/immxrtalbeast/roomgate/internal/media"
	"github.com/immxrtalbeast/roomgate/internal/notify"
	"github.com/immxrtalbeast/roomgate/internal/repository"
	"github.com/immxrtalbeast/roomgate/internal/repository/model"
	"github.com/immxrtalbeast/roomgate/internal/service"
	"github.com/immxrtalbeast/roomgate/lib/logger/sl"
	"github.com/immxrtalbeast/roomgate/lib/logger/slogpretty"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.MustLoad()
	log := setupLogger(cfg.Env)

	stores, err := setupStores(cfg.Database)
	if err != nil {
		log.Error("failed to set up storage", sl.Err(err))
		os.Exit(1)
	}
	log.Info("storage ready", slog.String("driver", cfg.Database.Driver))

	issuer, err := media.NewIssuer(cfg.Media)
	if err != nil {
		log.Error("failed to set up media credentials", sl.Err(err))
		os.Exit(1)
	}
	if cfg.Auth.JWTSecret == "" {
		log.Error("auth jwt secret is empty")
		os.Exit(1)
	}

	hub := notify.NewHub(log)

	roomService := service.NewRoomService(stores.rooms, stores.users, issuer, hub, log)
	joinService := service.NewJoinService(stores.rooms, hub, log)
	memberService := service.NewMemberService(stores.members, log)
	userService := service.NewUserService(stores.users, log)

	router := httpapi.SetupRouter(cfg, httpapi.Controllers{
		Auth:        httpapi.NewAuthenticator(cfg.Auth, userService),
		Credentials: httpapi.NewCredentialController(roomService),
		Rooms:       httpapi.NewRoomController(roomService),
		Joins:       httpapi.NewJoinController(joinService, cfg.Lobby.RoomURL),
		Members:     httpapi.NewMemberController(memberService),
		Events:      httpapi.NewEventsController(roomService, hub, cfg.HTTP.AllowedOrigins, log),
	})

	srv := &http.Server{
		Addr:         cfg.HTTP.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		log.Info("starting application", slog.String("addr", cfg.HTTP.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server stopped", sl.Err(err))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("failed to shut down http server", sl.Err(err))
	}
	log.Info("application stopped")
}

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = setupPrettySlog()
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}

type storage struct {
	rooms   repository.RoomRepository
	users   repository.UserRepository
	members repository.MemberRepository
}

func setupStores(cfg config.DatabaseConfig) (*storage, error) {
	switch cfg.Driver {
	case "memory":
		members := repository.NewInMemoryMemberRepository()
		return &storage{
			rooms:   repository.NewInMemoryRoomRepository(members),
			users:   repository.NewInMemoryUserRepository(),
			members: members,
		}, nil
	case "postgres":
		db, err := connectDatabase(cfg)
		if err != nil {
			return nil, err
		}
		return &storage{
			rooms:   repository.NewPostgresRoomRepository(db),
			users:   repository.NewPostgresUserRepository(db),
			members: repository.NewPostgresMemberRepository(db),
		}, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

func connectDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	if cfg.DSN == "" {
		return nil, errors.New("database dsn is empty")
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(model.All()...); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}
