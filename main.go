package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"

	database "ojtsystem_backend/internals/databases"
	scheduler "ojtsystem_backend/internals/features/accounts/auth/scheduler"
	helper "ojtsystem_backend/internals/helpers"
	"ojtsystem_backend/internals/helpers/mailer"
	"ojtsystem_backend/internals/helpers/storage"
	middlewares "ojtsystem_backend/internals/middlewares"
	routes "ojtsystem_backend/internals/route"

	"ojtsystem_backend/internals/configs"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		AppName:                 configs.AppName,
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// Request-ID + timing; the timeout bounds slow imports and uploads.
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Context(), 25*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s",
			id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
		return err
	})

	middlewares.SetupMiddlewares(app)
	helper.InitSessionStore()

	database.ConnectDB()
	database.TunePool()
	database.WarmUp()
	if err := database.Migrate(database.DB); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	scheduler.StartGateCleanupScheduler()

	mail := mailer.New()
	store, err := storage.New()
	if err != nil {
		log.Fatalf("object storage: %v", err)
	}

	routes.SetupRoutes(app, database.DB, mail, store)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Printf("[INFO] listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
