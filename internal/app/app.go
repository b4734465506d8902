package app

import (
	"context"
	"fmt"

	_ "github.com/DIMO-Network/line-bot-api/docs" // Import Swagger docs
	"github.com/DIMO-Network/line-bot-api/internal/clients/messaging"
	"github.com/DIMO-Network/line-bot-api/internal/config"
	"github.com/DIMO-Network/line-bot-api/internal/controllers/callback"
	"github.com/DIMO-Network/line-bot-api/internal/kafka"
	"github.com/DIMO-Network/line-bot-api/internal/linebot/signature"
	"github.com/DIMO-Network/line-bot-api/internal/services/replydispatcher"
	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/IBM/sarama"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"
)

func CreateServers(ctx context.Context, settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	settings.ApplyDefaults()
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	messagingClient, err := messaging.New(settings.APIEndpoint, settings.ChannelToken, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging client: %w", err)
	}
	dispatcher := replydispatcher.New(messagingClient, settings.FollowGreeting, settings.EventDedupTTL)

	var archiver callback.EventArchiver
	var publisher *kafka.EventPublisher
	if brokers := settings.KafkaBrokerList(); len(brokers) > 0 {
		publisher, err = startEventPublisher(brokers, settings.EventArchiveTopic)
		if err != nil {
			return nil, fmt.Errorf("failed to start event publisher: %w", err)
		}
		archiver = publisher
		logger.Info().Msgf("Archiving webhook events to topic: %s", settings.EventArchiveTopic)
	}

	app := CreateFiberApp(logger, signature.NewValidator(settings.ChannelSecret), dispatcher, archiver, settings)
	if publisher != nil {
		app.Hooks().OnShutdown(publisher.Close)
	}
	return app, nil
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger,
	validator callback.SignatureValidator,
	handler callback.EventHandler,
	archiver callback.EventArchiver,
	settings *config.Settings) *fiber.App {
	logger.Info().Msg("Starting LINE Bot API...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the LINE Bot API!")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	callbackController := callback.NewController(handler, archiver)
	logger.Info().Str("path", settings.CallbackPath).Msg("Registering routes...")
	app.Post(settings.CallbackPath, callback.SignatureMiddleware(validator), callbackController.Callback)

	return app
}

// startEventPublisher connects the Kafka publisher used to archive inbound events.
func startEventPublisher(brokers []string, topic string) (*kafka.EventPublisher, error) {
	clusterConfig := sarama.NewConfig()
	clusterConfig.Version = sarama.V2_8_1_0

	publisherConfig := &kafka.Config{
		ClusterConfig:   clusterConfig,
		BrokerAddresses: brokers,
		Topic:           topic,
	}

	publisher, err := kafka.NewEventPublisher(publisherConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create event publisher: %w", err)
	}
	return publisher, nil
}
