// main.go
package main

import (
	"context"
	"log"

	"limo-booking/cmd"
	"limo-booking/internal/data/repository"
	"limo-booking/internal/notify"
	"limo-booking/internal/payment"
	"limo-booking/internal/usecase"
	"limo-booking/internal/wire"
	"limo-booking/pkg/database"
	"limo-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Select the payment gateway from config
	gateway := payment.NewGateway(config.Payment, logger)
	logger.Info("Payment gateway selected", zap.String("gateway", gateway.Name()))

	// The broker is optional: bookings still succeed without notifications,
	// so a dead RabbitMQ downgrades to a warning instead of a crash.
	var events usecase.EventPublisher
	if config.RabbitMQ.URL != "" {
		publisher, err := notify.NewPublisher(config.RabbitMQ.URL, logger)
		if err != nil {
			logger.Warn("RabbitMQ unavailable, notifications disabled", zap.Error(err))
		} else {
			defer publisher.Close()
			events = publisher

			mailer := notify.NewMailer(config.SMTP, logger)
			sms := notify.NewSMSSender(config.Twilio, logger)

			consumer, err := notify.NewConsumer(config.RabbitMQ.URL, mailer, sms, logger)
			if err != nil {
				logger.Warn("Failed to start notification consumer", zap.Error(err))
			} else {
				defer consumer.Close()
				if err := consumer.Start(context.Background()); err != nil {
					logger.Warn("Notification consumer failed to start", zap.Error(err))
				}
			}
		}
	} else {
		logger.Warn("RABBITMQ_URL not set, notifications disabled")
	}

	// Wire all dependencies
	app := wire.Wiring(repos, gateway, events, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
