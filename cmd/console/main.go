package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/dispatch_console/internal/audio"
	"github.com/shenikar/dispatch_console/internal/collaborator"
	"github.com/shenikar/dispatch_console/internal/config"
	"github.com/shenikar/dispatch_console/internal/events"
	v1 "github.com/shenikar/dispatch_console/internal/handler/http/v1"
	"github.com/shenikar/dispatch_console/internal/repository"
	"github.com/shenikar/dispatch_console/internal/sequencer"
	"github.com/shenikar/dispatch_console/internal/service"
	"github.com/shenikar/dispatch_console/internal/store"
	"github.com/shenikar/dispatch_console/internal/stream"
	"github.com/shenikar/dispatch_console/pkg/logger"
	redisclient "github.com/shenikar/dispatch_console/pkg/redis"

	_ "github.com/shenikar/dispatch_console/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Dispatch Console API
// @version 1.0
// @description Live state of the dispatch service: hexes, incidents, vehicles, routes and operator commands.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// streamEvents - события, которые сводятся в хранилище
var streamEvents = []events.Type{
	events.TypeNewIncident,
	events.TypeVehicleDispatch,
	events.TypeRouteUpdate,
	events.TypePatrolAlert,
	events.TypeSimulationUpdate,
	events.TypeVehiclePosition,
	events.TypeVehicleRemoved,
	events.TypeIncidentAttended,
}

// connectRedis возвращает nil, если Redis не настроен или недоступен. В этом
// случае реплики только пишутся в лог, а сводка по ячейкам не кэшируется.
func connectRedis(ctx context.Context, cfg *config.Config, log *logrus.Logger) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Info("REDIS_ADDR is not set, radio cues are only logged")
		return nil
	}
	client, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.WithError(err).Warn("Redis unavailable, radio cues are only logged")
		return nil
	}
	log.Info("Successfully connected to Redis")
	return client
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var player sequencer.Player = audio.NewLogPlayer(log)
	redisClient := connectRedis(ctx, cfg, log)
	if redisClient != nil {
		defer redisClient.Close()
		player = audio.NewRedisPlayer(redisClient, log)
	}

	st := store.New(log)
	api := collaborator.NewClient(cfg.CollaboratorURL, cfg.HTTPTimeout)

	seq := sequencer.New(player, log, sequencer.Config{
		Enabled:        cfg.AudioEnabled,
		PlayTimeout:    cfg.AudioPlayTimeout,
		ControllerGap:  cfg.AudioControllerGap,
		SuppressWindow: cfg.AudioSuppressWindow,
	})

	loader := service.NewLoader(api, st, log, cfg.SnapshotConcurrency)
	if redisClient != nil {
		loader.UseSummaryCache(repository.NewSummaryCache(redisClient, cfg.HexSummaryTTL))
	}
	commands := service.NewCommands(api, st, loader, seq, log)
	poller := service.NewSignalPoller(api, st, log, cfg.SignalPollInterval)

	// Push-канал: обработчики регистрируются до запуска
	streamClient := stream.New(cfg.StreamURL, log)
	for _, t := range streamEvents {
		streamClient.Handle(t, func(ev events.Event) { st.ApplyEvent(ev) })
	}
	streamClient.Handle(events.TypeRadioComm, func(ev events.Event) {
		if rc, ok := ev.(events.RadioComm); ok {
			seq.EnqueueRadio(rc)
		}
	})

	// После обрыва связи состояние перечитывается целиком
	resync := service.NewResyncer(loader, log)
	streamClient.Handle(events.TypeDisconnect, func(events.Event) { resync.Disconnected() })
	streamClient.Handle(events.TypeConnect, func(events.Event) { resync.Connected(ctx) })

	var wg sync.WaitGroup
	run := func(f func(context.Context)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f(ctx)
		}()
	}

	run(seq.Run)
	run(func(ctx context.Context) {
		if _, err := loader.Bootstrap(ctx); err != nil {
			log.WithError(err).Warn("Initial load interrupted")
		}
	})
	run(streamClient.Run)
	run(poller.Run)

	// Инициализация хэндлеров
	handler := v1.NewHandler(v1.Services{
		Commands: commands,
		View:     service.NewView(st),
		Summary:  loader,
		Audio:    seq,
		Stream:   streamClient,
	}, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api1 := router.Group("/api/v1")
	handler.RegisterRoutes(api1)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down console...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	cancel()
	wg.Wait()
	resync.Wait()
	log.Info("Console gracefully stopped")
}
