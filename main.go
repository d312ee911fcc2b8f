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
	"github.com/gofiber/fiber/v2/utils"

	"bcaroutine_backend/internals/configs"
	database "bcaroutine_backend/internals/databases"
	scheduler "bcaroutine_backend/internals/features/auth/scheduler"
	fileService "bcaroutine_backend/internals/features/files/service"
	routineService "bcaroutine_backend/internals/features/routine/service"
	ossHelper "bcaroutine_backend/internals/helpers/oss"
	"bcaroutine_backend/internals/kvstore"
	middlewares "bcaroutine_backend/internals/middlewares"
	"bcaroutine_backend/internals/realtime"
	routes "bcaroutine_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
		BodyLimit:               12 * 1024 * 1024, // uploads are capped at 10 MB by the controller
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// Request-ID + timing
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app)

	// Persistence: local snapshot files or hosted Postgres.
	var (
		kv     kvstore.Store
		ossSvc *ossHelper.OSSService
	)
	if configs.StorageMode == configs.StorageModeHosted {
		database.ConnectDB()
		database.TunePool()
		database.WarmUpQueries()
		database.Migrate()
		kv = kvstore.NewDBStore(database.DB)

		svc, err := ossHelper.NewOSSServiceFromEnv("uploads")
		if err != nil {
			log.Printf("⚠️ OSS unavailable, file uploads fall back to metadata-only: %v", err)
		} else {
			ossSvc = svc
		}

		scheduler.StartBlacklistCleanupScheduler(database.DB)
	} else {
		fs, err := kvstore.NewFileStore(configs.DataDir)
		if err != nil {
			log.Fatalf("❌ data dir: %v", err)
		}
		kv = fs
		scheduler.StartBlacklistCleanupScheduler(nil)
	}

	scheduleStore, err := routineService.NewScheduleStore(kv)
	if err != nil {
		log.Fatalf("❌ schedule store: %v", err)
	}
	timeSlotStore, err := routineService.NewTimeSlotStore(kv)
	if err != nil {
		log.Fatalf("❌ time-slot store: %v", err)
	}
	subjectStore, err := routineService.NewSubjectStore(kv, scheduleStore)
	if err != nil {
		log.Fatalf("❌ subject store: %v", err)
	}
	localFiles, err := fileService.NewLocalFileStore(kv)
	if err != nil {
		log.Fatalf("❌ file store: %v", err)
	}

	hub := realtime.NewHub()
	go hub.Run()

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	routes.SetupRoutes(app, routes.Deps{
		DB:         database.DB,
		OSS:        ossSvc,
		Hub:        hub,
		Schedule:   scheduleStore,
		TimeSlots:  timeSlotStore,
		Subjects:   subjectStore,
		LocalFiles: localFiles,
	})

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Printf("✅ Listening on :%s", port)
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

	if database.DB != nil {
		if sqlDB, err := database.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
