package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/etorres/go-api-scaffold/internal/adapter"
	"github.com/etorres/go-api-scaffold/internal/config"
	"github.com/etorres/go-api-scaffold/internal/handler"
	"github.com/etorres/go-api-scaffold/internal/logger"
	"github.com/etorres/go-api-scaffold/internal/server"
	"github.com/etorres/go-api-scaffold/internal/service"
	"github.com/etorres/go-api-scaffold/internal/store"
	"github.com/etorres/go-api-scaffold/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-api-scaffold")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	producer := adapter.NewKafkaProducer(cfg.Kafka, log)
	defer producer.Close()

	taskQueue, err := adapter.NewNATSTaskQueue(cfg.Queue, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to task queue")
	}
	defer taskQueue.Close()

	results, err := adapter.NewRedisResultBackend(ctx, cfg.Queue, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to result backend")
	}
	defer results.Close()

	services := service.NewServices(storages, service.Adapters{
		Producer:      producer,
		TaskPublisher: taskQueue,
		ResultBackend: results,
	}, cfg, log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	taskWorker := workers.NewTaskWorker(taskQueue, results, cfg.Workers, log)
	taskWorker.RegisterHandler("echo", echoTask)
	taskWorker.RegisterHandler("uppercase", uppercaseTask)

	pool := workers.NewWorkers(taskWorker)
	go pool.Run(ctx)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
	cancel()
}

// echoTask returns its payload unchanged.
func echoTask(_ context.Context, payload string) (string, error) {
	return payload, nil
}

// uppercaseTask returns its payload upper-cased.
func uppercaseTask(_ context.Context, payload string) (string, error) {
	return strings.ToUpper(payload), nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
