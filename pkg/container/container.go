package container

import (
	"context"
	"fmt"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/colpuxase-art/poketerps-sub000/internal/bot"
	"github.com/colpuxase-art/poketerps-sub000/internal/bot/session"
	"github.com/colpuxase-art/poketerps-sub000/internal/config"
	infraCache "github.com/colpuxase-art/poketerps-sub000/internal/infrastructure/cache"
	"github.com/colpuxase-art/poketerps-sub000/internal/infrastructure/database"
	"github.com/colpuxase-art/poketerps-sub000/pkg/cache"
	"github.com/colpuxase-art/poketerps-sub000/pkg/logger"

	cardHandler "github.com/colpuxase-art/poketerps-sub000/internal/domains/card/handler"
	cardRepo "github.com/colpuxase-art/poketerps-sub000/internal/domains/card/repository"
	cardService "github.com/colpuxase-art/poketerps-sub000/internal/domains/card/service"
)

const sweepInterval = time.Minute

// Container is the root of the dependency graph. Initialization order:
// config, infrastructure, repositories, services, sessions, handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	CardRepo    cardRepo.CardRepository
	CardService cardService.CardService
	CardHandler *cardHandler.CardHandler

	Bot        *tele.Bot
	BotHandler *bot.Handler

	addSessions    *session.MemoryStore[*session.AddSession]
	editSessions   *session.MemoryStore[*session.EditSession]
	deleteSessions *session.MemoryStore[*session.DeleteSession]

	redis     *infraCache.RedisCache
	stopSweep chan struct{}
}

// NewContainer builds and connects the whole dependency graph. Any
// failure here keeps the process from starting.
func NewContainer() (*Container, error) {
	c := &Container{stopSweep: make(chan struct{})}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// database
	db := database.NewPostgresDB(&database.DBConfig{
		Host:           cfg.Database.Host,
		Port:           cfg.Database.Port,
		Username:       cfg.Database.User,
		Password:       cfg.Database.Password,
		DBName:         cfg.Database.Database,
		SSLMode:        cfg.Database.SSLMode,
		MaxConns:       int32(cfg.Database.MaxConns),
		MinConns:       int32(cfg.Database.MinConns),
		MaxRetries:     5,
		RetryDelay:     time.Second,
		ConnectTimeout: 10 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	// redis cache; failure is non-critical, the bot runs uncached
	redis := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redis.Ping(context.Background()); err != nil {
		logger.Warn("redis unavailable, running without cache", err)
	} else {
		c.Cache = redis
		c.redis = redis
	}

	// repositories and services
	c.CardRepo = cardRepo.NewPostgresRepository(db.Pool)
	c.CardService = cardService.NewCardService(c.CardRepo, c.Cache)
	c.CardHandler = cardHandler.NewCardHandler(c.CardService)

	// wizard session stores with idle eviction
	c.addSessions = session.NewMemoryStore[*session.AddSession](cfg.Bot.SessionTTL)
	c.editSessions = session.NewMemoryStore[*session.EditSession](cfg.Bot.SessionTTL)
	c.deleteSessions = session.NewMemoryStore[*session.DeleteSession](cfg.Bot.SessionTTL)
	c.addSessions.StartSweeper(sweepInterval, c.stopSweep)
	c.editSessions.StartSweeper(sweepInterval, c.stopSweep)
	c.deleteSessions.StartSweeper(sweepInterval, c.stopSweep)

	// telegram bot
	b, err := bot.New(cfg.Bot.Token, cfg.Bot.PollTO)
	if err != nil {
		return nil, err
	}
	c.Bot = b
	c.BotHandler = bot.NewHandler(&cfg.Bot, c.CardService, c.addSessions, c.editSessions, c.deleteSessions)
	c.BotHandler.Register(b)

	return c, nil
}

// Cleanup releases everything the container owns.
func (c *Container) Cleanup() {
	close(c.stopSweep)
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			logger.Warn("redis close failed", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
