package mongodb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/yungbote/vocab-builder/internal/platform/logger"
)

const (
	DefaultURI      = "mongodb://localhost/vocab-builder"
	DefaultDatabase = "vocab-builder"
)

type Config struct {
	URI            string        `yaml:"uri"`
	Database       string        `yaml:"database"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	MaxPoolSize    uint64        `yaml:"max_pool_size"`
}

type Client struct {
	Mongo    *mongo.Client
	Database *mongo.Database
	log      *logger.Logger
	timeout  time.Duration
}

// DatabaseFromURI returns the database path component of uri, or "" when
// the URI names none.
func DatabaseFromURI(uri string) (string, error) {
	cs, err := connstring.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("mongodb: parse uri: %w", err)
	}
	return cs.Database, nil
}

// Connect opens a client and pings the primary before returning, so an
// unreachable server fails startup instead of the first request.
func Connect(ctx context.Context, cfg Config, log *logger.Logger) (*Client, error) {
	if log == nil {
		return nil, fmt.Errorf("mongodb: logger required")
	}
	uri := strings.TrimSpace(cfg.URI)
	if uri == "" {
		uri = DefaultURI
	}
	dbName := strings.TrimSpace(cfg.Database)
	if dbName == "" {
		fromURI, err := DatabaseFromURI(uri)
		if err != nil {
			return nil, err
		}
		dbName = fromURI
	}
	if dbName == "" {
		dbName = DefaultDatabase
	}
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}

	mc, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb: connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := mc.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = mc.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb: ping: %w", err)
	}

	c := &Client{
		Mongo:    mc,
		Database: mc.Database(dbName),
		log:      log.With("client", "MongoDB", "database", dbName),
		timeout:  timeout,
	}
	c.log.Info("MongoDB connected")
	return c, nil
}

// Ping checks the primary is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.Mongo == nil {
		return fmt.Errorf("mongodb: client not initialized")
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.Mongo.Ping(ctx, readpref.Primary())
}

func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.Mongo == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := c.Mongo.Disconnect(ctx); err != nil {
		return fmt.Errorf("mongodb: disconnect: %w", err)
	}
	c.log.Info("MongoDB disconnected")
	return nil
}
