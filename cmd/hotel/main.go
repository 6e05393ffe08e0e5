package main

import (
	"context" // Context for Redis and service calls
	"os"      // Standard streams

	"hotel_reservation/internal/booking"   // Reservation engine
	"hotel_reservation/internal/config"    // Configuration
	"hotel_reservation/internal/db"        // Database connection and migration
	"hotel_reservation/internal/events"    // Reservation events
	"hotel_reservation/internal/identity"  // Registration and login
	"hotel_reservation/internal/inventory" // Room catalogue
	"hotel_reservation/internal/lock"      // Per-room locking
	"hotel_reservation/internal/shell"     // Interactive menus
	"hotel_reservation/internal/store"     // Repository

	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the interactive shell
func main() {
	ctx := context.Background()
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	closer, err := config.SetupLogger(cfg)
	if err != nil {
		logrus.Fatalf("failed to open log file: %v", err)
	}
	defer closer.Close()

	// Connect to the database and make sure the schema exists
	conn, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	repo := store.New(conn)

	// Redis backs the listing cache and the shared room lock when configured
	var redisClient *redis.Client
	var locker lock.Locker = lock.NewLocal()
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		if _, err := redisClient.Ping(ctx).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		locker = lock.NewRedis(redisClient, cfg.LockTTL)
	}

	// Reservation events go to RabbitMQ when configured
	var publisher events.Publisher = events.Nop{}
	if cfg.AMQPURL != "" {
		amqpPublisher, err := events.DialAMQP(cfg.AMQPURL, cfg.EventQueue)
		if err != nil {
			logrus.WithField("error", err.Error()).Warn("Events disabled, broker unreachable")
		} else {
			publisher = amqpPublisher
			defer amqpPublisher.Close()
		}
	}

	// Services
	ident := identity.NewService(repo, cfg.BcryptCost)
	rooms := inventory.NewService(repo, redisClient, cfg.CacheTTL)
	engine := booking.NewEngine(repo, ident, rooms, locker, publisher)
	sh := shell.New(os.Stdin, os.Stdout, ident, rooms, engine, shell.Options{
		JWTSecret:  cfg.JWTSecret,
		SessionTTL: cfg.SessionTTL,
		ReportDir:  cfg.ReportDir,
	})

	// First run: create the super manager from the environment or the console
	source, retry := identity.RegistrationSource(sh.PromptSuperManager), sh.RetryRegistration
	if sm := cfg.SuperManager; sm.Complete() {
		retry = nil // Bad SUPER_MANAGER_* values are fatal
		source = func(context.Context) (identity.Registration, error) {
			return identity.Registration{
				FirstName: sm.FirstName,
				LastName:  sm.LastName,
				Phone:     sm.Phone,
				Email:     sm.Email,
				Secret:    sm.Secret,
			}, nil
		}
	}
	if _, err := ident.EnsureBootstrapManager(ctx, source, retry); err != nil {
		logrus.Fatalf("failed to create super manager: %v", err)
	}

	if err := sh.Run(ctx); err != nil {
		logrus.Fatalf("shell stopped: %v", err)
	}
}
