// internal/storage/slot.go
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/heyi-backend/internal/config"
	"github.com/javajoker/heyi-backend/internal/database"
)

// ErrSlotEmpty is returned by Get when nothing has been written yet.
var ErrSlotEmpty = errors.New("storage slot is empty")

// Slot is a single opaque key-value cell. Put replaces the whole value.
type Slot interface {
	Get(ctx context.Context) ([]byte, error)
	Put(ctx context.Context, data []byte) error
	Close() error
}

// Open builds the slot selected by cfg.Storage.Backend.
func Open(ctx context.Context, cfg *config.Config) (Slot, error) {
	key := cfg.Storage.Key

	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return NewMemorySlot(), nil

	case config.BackendFile:
		return NewFileSlot(cfg.Storage.FilePath), nil

	case config.BackendPostgres:
		db, err := database.Initialize(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := database.RunMigrations(db); err != nil {
			database.Close(db)
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return NewGormSlot(db, key, func() error { return database.Close(db) }), nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("redis ping failed: %w", err)
		}
		logrus.WithField("addr", cfg.Redis.Addr()).Info("Connected to redis")
		return NewRedisSlot(client, key), nil

	case config.BackendS3:
		awsConfig := &aws.Config{
			Region: aws.String(cfg.AWS.Region),
		}
		if cfg.AWS.AccessKeyID != "" {
			awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AWS.AccessKeyID, cfg.AWS.SecretAccessKey, "")
		}
		if cfg.AWS.Endpoint != "" {
			awsConfig.Endpoint = aws.String(cfg.AWS.Endpoint)
			awsConfig.S3ForcePathStyle = aws.Bool(true)
		}
		sess, err := session.NewSession(awsConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create AWS session: %w", err)
		}
		return NewS3Slot(s3.New(sess), cfg.AWS.S3Bucket, key+".json"), nil
	}

	return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}
