// internal/i18n/i18n_test.go
package i18n

import (
	"encoding/json"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	require.NoError(t, Initialize("en"))

	assert.Equal(t, "Asset not found", T("en", KeyAssetNotFound))
	assert.Equal(t, "未找到该作品", T("zh_CN", KeyAssetNotFound))
	assert.Equal(t, "Invalid price", T("en", KeyValidationInvalid, "price"))

	// unknown language falls back to the default, unknown keys echo back
	assert.Equal(t, "Asset not found", T("fr", KeyAssetNotFound))
	assert.Equal(t, "no.such.key", T("en", "no.such.key"))

	assert.Equal(t, []string{"en", "zh_CN"}, GetSupportedLanguages())
}

func TestLocalesShareKeys(t *testing.T) {
	load := func(name string) map[string]string {
		data, err := fs.ReadFile(localeFS, "locales/"+name)
		require.NoError(t, err)
		var m map[string]string
		require.NoError(t, json.Unmarshal(data, &m))
		return m
	}

	en := load("en.json")
	zh := load("zh_CN.json")

	for key := range en {
		assert.Contains(t, zh, key)
	}
	assert.Len(t, zh, len(en))
}
