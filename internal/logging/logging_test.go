// internal/logging/logging_test.go
package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/heyi-backend/internal/config"
)

func TestSetupJSON(t *testing.T) {
	var buf bytes.Buffer
	SetupWriter(config.LogConfig{Level: "warn", Format: "json"}, &buf)
	t.Cleanup(func() { SetupWriter(config.LogConfig{Level: "info"}, &bytes.Buffer{}) })

	logrus.Info("dropped")
	logrus.WithField("asset_id", 3).Warn("kept")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, float64(3), line["asset_id"])
}

func TestSetupBadLevelFallsBackToInfo(t *testing.T) {
	SetupWriter(config.LogConfig{Level: "chatty"}, &bytes.Buffer{})
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestFromContext(t *testing.T) {
	entry := logrus.WithField("request_id", "abc")
	ctx := NewContext(context.Background(), entry)

	assert.Equal(t, "abc", FromContext(ctx).Data["request_id"])
	assert.NotNil(t, FromContext(context.Background()))
}
