// internal/storage/storage_test.go
package storage

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/javajoker/heyi-backend/internal/config"
)

func TestMemorySlot(t *testing.T) {
	ctx := context.Background()
	slot := NewMemorySlot()

	_, err := slot.Get(ctx)
	assert.ErrorIs(t, err, ErrSlotEmpty)

	data := []byte(`[1]`)
	require.NoError(t, slot.Put(ctx, data))
	data[0] = 'x'

	got, err := slot.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(got), "slot must keep its own copy")
	assert.Equal(t, 1, slot.Puts())

	slot.FailPuts(assert.AnError)
	assert.ErrorIs(t, slot.Put(ctx, []byte(`[]`)), assert.AnError)
	got, _ = slot.Get(ctx)
	assert.Equal(t, `[1]`, string(got))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = slot.Get(cancelled)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileSlot(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "catalog.json")
	slot := NewFileSlot(path)

	_, err := slot.Get(ctx)
	assert.ErrorIs(t, err, ErrSlotEmpty)

	require.NoError(t, slot.Put(ctx, []byte(`[{"id":1}]`)))
	require.NoError(t, slot.Put(ctx, []byte(`[{"id":2}]`)))

	got, err := slot.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":2}]`, string(got))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestGormSlotGet(t *testing.T) {
	db, mock := newMockGorm(t)
	slot := NewGormSlot(db, "heyi_assets_data_v2", nil)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "kv_entries" WHERE key = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value", "updated_at"}).
			AddRow("heyi_assets_data_v2", `[{"id":1}]`, time.Now()))

	got, err := slot.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(got))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSlotGetMissing(t *testing.T) {
	db, mock := newMockGorm(t)
	slot := NewGormSlot(db, "heyi_assets_data_v2", nil)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "kv_entries"`)).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value", "updated_at"}))

	_, err := slot.Get(context.Background())
	assert.ErrorIs(t, err, ErrSlotEmpty)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSlotPutUpserts(t *testing.T) {
	db, mock := newMockGorm(t)
	slot := NewGormSlot(db, "heyi_assets_data_v2", nil)
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	slot.now = func() time.Time { return fixed }

	mock.ExpectExec(`INSERT INTO "kv_entries" .* ON CONFLICT \("key"\) DO UPDATE SET`).
		WithArgs("heyi_assets_data_v2", `[]`, fixed).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, slot.Put(context.Background(), []byte(`[]`)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSlotPutError(t *testing.T) {
	db, mock := newMockGorm(t)
	slot := NewGormSlot(db, "k", nil)

	mock.ExpectExec(`INSERT INTO "kv_entries"`).WillReturnError(assert.AnError)

	err := slot.Put(context.Background(), []byte(`[]`))
	assert.ErrorIs(t, err, assert.AnError)
}

func TestRedisSlotUnreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	})
	slot := NewRedisSlot(client, "k")
	defer slot.Close()

	_, err := slot.Get(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSlotEmpty)

	assert.Error(t, slot.Put(context.Background(), []byte(`[]`)))
}

type fakeS3 struct {
	s3iface.S3API
	objects map[string][]byte
}

func (f *fakeS3) GetObjectWithContext(_ aws.Context, in *s3.GetObjectInput, _ ...request.Option) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[*in.Bucket+"/"+*in.Key]
	if !ok {
		return nil, awserr.New(s3.ErrCodeNoSuchKey, "The specified key does not exist.", nil)
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) PutObjectWithContext(_ aws.Context, in *s3.PutObjectInput, _ ...request.Option) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*in.Bucket+"/"+*in.Key] = data
	return &s3.PutObjectOutput{}, nil
}

func TestS3Slot(t *testing.T) {
	ctx := context.Background()
	client := &fakeS3{objects: map[string][]byte{}}
	slot := NewS3Slot(client, "bucket", "catalog.json")

	_, err := slot.Get(ctx)
	assert.ErrorIs(t, err, ErrSlotEmpty)

	require.NoError(t, slot.Put(ctx, []byte(`[{"id":3}]`)))
	assert.Contains(t, client.objects, "bucket/catalog.json")

	got, err := slot.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":3}]`, string(got))
}

func TestOpenSelectsBackend(t *testing.T) {
	ctx := context.Background()

	cfg := &config.Config{Storage: config.StorageConfig{Backend: config.BackendMemory, Key: "k"}}
	slot, err := Open(ctx, cfg)
	require.NoError(t, err)
	assert.IsType(t, &MemorySlot{}, slot)

	cfg.Storage = config.StorageConfig{Backend: config.BackendFile, Key: "k", FilePath: filepath.Join(t.TempDir(), "c.json")}
	slot, err = Open(ctx, cfg)
	require.NoError(t, err)
	assert.IsType(t, &FileSlot{}, slot)

	cfg.Storage = config.StorageConfig{Backend: config.BackendS3, Key: "k"}
	cfg.AWS = config.AWSConfig{Region: "us-east-1", S3Bucket: "b", Endpoint: "http://localhost:9000"}
	slot, err = Open(ctx, cfg)
	require.NoError(t, err)
	assert.IsType(t, &S3Slot{}, slot)

	cfg.Storage = config.StorageConfig{Backend: "tape", Key: "k"}
	_, err = Open(ctx, cfg)
	assert.Error(t, err)
}
