package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"shareit/internal/config"
	"shareit/internal/handlers"
	"shareit/internal/models"
	"shareit/internal/repositories"
	"shareit/internal/services"
	"shareit/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Request{},
		&models.Item{},
		&models.Booking{},
		&models.Comment{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	// Booking events are advisory; the server runs fine without a broker.
	var mqClient *rabbitmq.Client
	var events services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Warn().Err(err).Msg("RabbitMQ unavailable, booking events disabled")
		} else {
			defer mqClient.Close()
			events = mqClient
			startEventConsumer(mqClient)
		}
	}

	userRepo := repositories.NewGORMUserRepository(db)
	itemRepo := repositories.NewGORMItemRepository(db)
	requestRepo := repositories.NewGORMRequestRepository(db)
	bookingRepo := repositories.NewGORMBookingRepository(db)
	commentRepo := repositories.NewGORMCommentRepository(db)

	userService := services.NewUserService(userRepo)
	itemService := services.NewItemService(itemRepo, userRepo, bookingRepo, commentRepo, requestRepo)
	requestService := services.NewRequestService(requestRepo, userRepo, itemRepo)
	bookingService := services.NewBookingService(bookingRepo, itemRepo, userRepo, events)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New())

	handlers.NewUserHandler(userService).RegisterRoutes(app)
	handlers.NewItemHandler(itemService).RegisterRoutes(app)
	handlers.NewRequestHandler(requestService).RegisterRoutes(app)
	handlers.NewBookingHandler(bookingService).RegisterRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().Str("port", cfg.ServerPort).Msg("starting shareit server")
		if err := app.Listen(cfg.ServerPort); err != nil {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	<-quit
	log.Info().Msg("shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
	log.Info().Msg("server stopped")
}

func setupLogging(level string) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	if parsed, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(parsed)
	}
}

func openDatabase(cfg config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DatabaseDSN)
	default:
		dialector = sqlite.Open(cfg.DatabaseDSN)
	}
	// TranslateError surfaces unique-key violations as gorm.ErrDuplicatedKey
	// on both drivers; the duplicate-email conflict depends on it.
	return gorm.Open(dialector, &gorm.Config{TranslateError: true})
}

func startEventConsumer(mqClient *rabbitmq.Client) {
	err := mqClient.ConsumeBookingEvents(func(msg amqp.Delivery) error {
		log.Info().Str("body", string(msg.Body)).Msg("booking event")
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to start booking event consumer")
	}
}
