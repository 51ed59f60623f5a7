package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/terraincognita07/clinicmatch/internal/api"
	"github.com/terraincognita07/clinicmatch/internal/cli"
	"github.com/terraincognita07/clinicmatch/internal/config"
	"github.com/terraincognita07/clinicmatch/internal/db"
	"github.com/terraincognita07/clinicmatch/internal/i18n"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if handled, err := runCommand(os.Args[1:], cfg); handled {
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	location, err := cfg.Location()
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", cfg.Timezone)
	}
	time.Local = location

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	i18nManager, err := i18n.NewManager(cfg.DefaultLanguage, cfg.LocalesDir)
	if err != nil {
		log.Fatalf("i18n init failed: %v", err)
	}

	handler, err := api.NewHandler(database, cfg.SecretKey, cfg.TemplatesDir, i18nManager, cfg.CookieSecure)
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}
	if err := handler.ClinicService().EnsureDirectory(); err != nil {
		log.Fatalf("clinic directory init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Clinic Match",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(handler.LanguageMiddleware)
	app.Use(csrf.New(csrfMiddlewareConfig(cfg.CookieSecure)))

	app.Static("/static", cfg.StaticDir)
	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("graceful shutdown failed: %v", err)
		}
	}()

	log.Printf("Clinic Match listening on http://localhost%s", cfg.ListenAddress())
	if err := app.Listen(cfg.ListenAddress()); err != nil {
		log.Fatal(err)
	}
}

// runCommand handles one-shot subcommands. It reports false when args do not
// name one and the server should start.
func runCommand(args []string, cfg config.Config) (bool, error) {
	if len(args) == 0 {
		return false, nil
	}

	switch args[0] {
	case "clinics":
		if len(args) < 2 {
			return true, errors.New("usage: clinicmatch clinics <specialty>")
		}
		specialty := strings.Join(args[1:], " ")
		if err := cli.RunListClinicsCommand(cfg.DBPath, specialty, os.Stdout); err != nil {
			return true, fmt.Errorf("list clinics: %w", err)
		}
		return true, nil
	default:
		return false, nil
	}
}

// csrfMiddlewareConfig protects the form routes. The JSON API is read-mostly
// and its one POST only evaluates a throwaway page, so it is exempt.
func csrfMiddlewareConfig(cookieSecure bool) csrf.Config {
	return csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "clinicmatch_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: true,
		CookieSecure:   cookieSecure,
		ContextKey:     "csrf",
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
	}
}
