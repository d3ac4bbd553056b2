package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/KirkDiggler/homebot/internal/common/clock"
	"github.com/KirkDiggler/homebot/internal/common/uuid"
	"github.com/KirkDiggler/homebot/internal/config"
	"github.com/KirkDiggler/homebot/internal/database/sqlite"
	"github.com/KirkDiggler/homebot/internal/dice"
	"github.com/KirkDiggler/homebot/internal/handlers/discord"
	"github.com/KirkDiggler/homebot/internal/logging"
	"github.com/KirkDiggler/homebot/internal/ordering"
	checklistRepo "github.com/KirkDiggler/homebot/internal/repositories/checklist"
	hangmanRepo "github.com/KirkDiggler/homebot/internal/repositories/hangman"
	todoRepo "github.com/KirkDiggler/homebot/internal/repositories/todo"
	worldclockRepo "github.com/KirkDiggler/homebot/internal/repositories/worldclock"
	checklistService "github.com/KirkDiggler/homebot/internal/services/checklist"
	hangmanService "github.com/KirkDiggler/homebot/internal/services/hangman"
	messagingService "github.com/KirkDiggler/homebot/internal/services/messaging"
	todoService "github.com/KirkDiggler/homebot/internal/services/todo"
	worldclockService "github.com/KirkDiggler/homebot/internal/services/worldclock"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stderr, logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	if err := run(cfg, logger); err != nil {
		logger.Error("Bot stopped with error", "error", err)
		os.Exit(1)
	}

	logger.Info("Bot has been shut down")
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	// Open SQLite and apply migrations
	db, err := sqlite.Open(ctx, cfg.SQLite.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	uuidGenerator := uuid.New()
	realClock := clock.New()
	roller := dice.New(&dice.Config{})

	// Initialize repositories
	gameRepo, err := hangmanRepo.NewRedis(&hangmanRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return err
	}

	taskRepo, err := todoRepo.NewRedis(&todoRepo.Config{
		RedisClient:   redisClient,
		UUIDGenerator: uuidGenerator,
	})
	if err != nil {
		return err
	}

	itemRepo, err := checklistRepo.NewSQLite(&checklistRepo.Config{
		DB:            db,
		UUIDGenerator: uuidGenerator,
	})
	if err != nil {
		return err
	}

	clockRepo, err := worldclockRepo.NewSQLite(&worldclockRepo.Config{
		DB:            db,
		UUIDGenerator: uuidGenerator,
	})
	if err != nil {
		return err
	}

	// Initialize services
	hangmanSvc, err := hangmanService.New(&hangmanService.Config{
		GameTTL:       cfg.Hangman.GameTTL,
		GameRepo:      gameRepo,
		Clock:         realClock,
		UUIDGenerator: uuidGenerator,
		Picker:        roller,
		Logger:        logger,
	})
	if err != nil {
		return err
	}

	todoSvc, err := todoService.New(&todoService.Config{
		InsertMode: ordering.InsertMode(cfg.Todo.InsertMode),
		TodoRepo:   taskRepo,
		Clock:      realClock,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	location, err := time.LoadLocation(cfg.Checklist.Timezone)
	if err != nil {
		return err
	}

	checklistSvc, err := checklistService.New(&checklistService.Config{
		Location:      location,
		DayStartHour:  cfg.Checklist.DayStartHour,
		InsertMode:    ordering.InsertModePositional,
		ChecklistRepo: itemRepo,
		Clock:         realClock,
		Logger:        logger,
	})
	if err != nil {
		return err
	}

	resolver := worldclockService.NewResolver()
	worldClockSvc, err := worldclockService.New(&worldclockService.Config{
		ClockRepo: clockRepo,
		Clock:     realClock,
		Resolver:  resolver,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	messagingSvc, err := messagingService.New(&messagingService.Config{
		Roller: roller,
		Tone:   messagingService.MessageTone(cfg.MessageTone),
	})
	if err != nil {
		return err
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:             cfg.Discord.Token,
		ApplicationID:     cfg.Discord.ApplicationID,
		GuildID:           cfg.Discord.GuildID,
		CommandPrefix:     cfg.Discord.CommandPrefix,
		HangmanService:    hangmanSvc,
		TodoService:       todoSvc,
		ChecklistService:  checklistSvc,
		WorldClockService: worldClockSvc,
		MessagingService:  messagingSvc,
		Resolver:          resolver,
		Logger:            logger,
	})
	if err != nil {
		return err
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		return err
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	return bot.Stop()
}
