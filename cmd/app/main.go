package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"campusdrop/cmd"
	"campusdrop/internal/adapters/out/kafka"
	"campusdrop/internal/core/ports"
	"campusdrop/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateAssignPendingOrderCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	subscriber := startOrderChangeFeed(configs, logger)
	defer func() {
		_ = subscriber.Close()
	}()

	startWebServer(app, configs)
}

// startOrderChangeFeed consumes the order-changed topic and mirrors every
// event into the application log.
func startOrderChangeFeed(configs cmd.Config, logger *slog.Logger) *kafka.Subscriber {
	subscriber := kafka.NewSubscriber(
		strings.Split(configs.KafkaHost, ","),
		configs.KafkaOrderChangedTopic,
		configs.KafkaConsumerGroup,
	)

	feedLogger := logger.With("component", "order_change_feed")
	go func() {
		err := subscriber.Subscribe(context.Background(), nil,
			func(ctx context.Context, event ports.OrderChangedEvent) error {
				feedLogger.InfoContext(ctx, "Order changed",
					"order_id", event.OrderID.String(),
					"status", event.Status.String(),
					"updated_at", event.UpdatedAt,
				)
				return nil
			})
		if err != nil {
			feedLogger.Error("Order change feed stopped", "error", err)
		}
	}()

	return subscriber
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaConsumerGroup:     goDotEnvVariable("KAFKA_CONSUMER_GROUP"),
		KafkaOrderChangedTopic: goDotEnvVariable("KAFKA_ORDER_CHANGED_TOPIC"),
		JWTSecret:              goDotEnvVariable("JWT_SECRET"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e, []byte(configs.JWTSecret))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
