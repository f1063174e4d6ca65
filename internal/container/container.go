package container

import (
	"context"
	"fmt"
	"time"

	"chamber/sites/internal/client"
	"chamber/sites/internal/config"
	"chamber/sites/internal/domain"
	"chamber/sites/internal/page"
	"chamber/sites/internal/publish"
	"chamber/sites/internal/selector"
	"chamber/sites/internal/server"
	"chamber/sites/internal/site"
	"chamber/sites/internal/source"
	"chamber/sites/internal/weather"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Data files relative to the site root
const (
	MembersRef = "chamber/data/members.json"
	RolesRef   = "finalproject/data/roles.json"
)

// Container holds all initialized components
type Container struct {
	Config  *config.Config
	Fs      afero.Fs
	Fetcher client.Fetcher
	Site    *site.Site
	Stores  server.Stores

	weather *weather.Client
	redis   *redis.Client
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
		Fs:     afero.NewOsFs(),
	}

	// Initialize data fetcher
	switch cfg.Site.DataMode {
	case "http":
		container.Fetcher = client.NewHTTPFetcher(cfg.Site.BaseURL, cfg.Client)
	default:
		container.Fetcher = client.NewFileFetcher(container.Fs, cfg.Site.Root)
	}

	rng, err := selector.NewRand()
	if err != nil {
		return nil, fmt.Errorf("failed to seed spotlight sampler: %w", err)
	}

	container.weather = weather.NewClient(cfg.Weather)

	routes := page.Routes(page.Deps{
		Members: source.FromFetcher[domain.Member](container.Fetcher, MembersRef, "members"),
		Roles:   source.FromFetcher[domain.Role](container.Fetcher, RolesRef, "roles"),
		Places:  source.Static(domain.Places),
		Rand:    selector.NewLockedRand(rng),
		Weather: weather.NewPanel(container.weather, cfg.Weather.APIKey),
	})
	container.Site = site.New(container.Fs, cfg.Site.Root, routes)

	// Initialize visitor stores
	maxAge := time.Duration(cfg.Store.CookieMaxAgeDays) * 24 * time.Hour
	switch cfg.Store.Driver {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})

		// Test connection
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Info("✅ Connected to Redis successfully")

		container.redis = rdb
		container.Stores = server.RedisStores(rdb, cfg.Redis.KeyPrefix, maxAge)
	case "memory":
		container.Stores = server.MemoryStores(maxAge)
	default:
		container.Stores = server.CookieStores(maxAge)
	}

	log.Infof("Site root %s, data mode %s, store %s", cfg.Site.Root, cfg.Site.DataMode, cfg.Store.Driver)
	return container, nil
}

// Server returns the HTTP server for the configured address
func (c *Container) Server() *server.Server {
	return server.New(c.Config.Server.Host, c.Config.Server.Port, server.NewRouter(c.Site, c.Stores))
}

// Builder returns a builder writing into the configured output directory
func (c *Container) Builder() *publish.Builder {
	return publish.NewBuilder(c.Site, c.Fs, c.Config.Site.Output)
}

// Deployer returns an S3 deployer for bucket, falling back to the configured one
func (c *Container) Deployer(ctx context.Context, bucket string) (*publish.Deployer, error) {
	if bucket == "" {
		bucket = c.Config.Deploy.Bucket
	}
	if bucket == "" {
		return nil, fmt.Errorf("no S3 bucket configured: set deploy.bucket or pass --bucket")
	}
	return publish.NewS3Deployer(ctx, bucket, c.Config.Deploy.Prefix)
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Info("Shutting down container...")

	if err := c.weather.Close(); err != nil {
		log.Warnf("Failed to close weather client: %v", err)
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			return fmt.Errorf("failed to close Redis: %w", err)
		}
	}

	log.Info("Container shut down successfully")
	return nil
}
