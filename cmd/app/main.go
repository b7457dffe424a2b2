package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"marketplace/cmd"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/usecases/commands"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var grantStaff string
	flag.StringVar(&grantStaff, "grant-staff", "", "mark an existing username as staff and exit")
	flag.Parse()

	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := mustGormOpen(ctx, configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	if grantStaff != "" {
		if err := runGrantStaff(ctx, &app, grantStaff); err != nil {
			log.Fatalf("grant staff: %v", err)
		}
		logger.Info("staff granted", slog.String("username", grantStaff))
		return
	}

	if err := startWebServer(ctx, &app, configs.HTTPPort, logger); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func getConfigs() cmd.Config {
	// .env is optional, the environment may be injected by the runtime.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error reading config: %v", err)
	}
	return configs
}

func mustGormOpen(ctx context.Context, configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(pgdriver.Open(configs.DSN()), postgres.NewGormConfig())
	if err != nil {
		log.Fatalf("connection to postgres through gorm: %v", err)
	}

	if err := postgres.Migrate(ctx, gormDB); err != nil {
		log.Fatalf("migrate schema: %v", err)
	}
	return gormDB
}

func runGrantStaff(ctx context.Context, app *cmd.CompositionRoot, username string) error {
	command, err := commands.NewGrantStaffCommand(username)
	if err != nil {
		return err
	}
	return app.CreateGrantStaffHandler().Handle(ctx, command)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) error {
	server, err := app.CreateServer()
	if err != nil {
		return err
	}

	e := echo.New()
	e.HideBanner = true
	// API routes end in a slash; /health and /swagger do not.
	e.Pre(middleware.AddTrailingSlashWithConfig(middleware.TrailingSlashConfig{
		Skipper: func(c echo.Context) bool {
			return !strings.HasPrefix(c.Request().URL.Path, "/api/")
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))
	e.Server.ReadHeaderTimeout = 5 * time.Second
	e.Server.ReadTimeout = 15 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.IdleTimeout = 60 * time.Second

	server.RegisterRoutes(e)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server starting", slog.String("port", port))
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("http server shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
