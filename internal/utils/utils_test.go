// internal/utils/utils_test.go
package utils

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/heyi-backend/internal/models"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name   string
		params PaginationParams
		want   []int
		pages  int
	}{
		{"first page", PaginationParams{Page: 1, Limit: 2}, []int{1, 2}, 3},
		{"last partial page", PaginationParams{Page: 3, Limit: 2}, []int{5}, 3},
		{"past the end", PaginationParams{Page: 9, Limit: 2}, []int{}, 3},
		{"just past the end", PaginationParams{Page: 4, Limit: 2}, []int{}, 3},
		{"page near overflow", PaginationParams{Page: math.MaxInt64 / 10, Limit: 20}, []int{}, 1},
		{"largest page", PaginationParams{Page: math.MaxInt, Limit: MaxPageLimit}, []int{}, 1},
		{"defaults", PaginationParams{}, []int{1, 2, 3, 4, 5}, 1},
		{"limit too large", PaginationParams{Page: 1, Limit: 1000}, []int{1, 2, 3, 4, 5}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Paginate(items, tt.params)
			assert.Equal(t, tt.want, result.Data)
			assert.Equal(t, int64(5), result.Total)
			assert.Equal(t, tt.pages, result.TotalPages)
		})
	}
}

func TestGetPaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?page=-3&limit=abc&search=ink", nil)

	params := GetPaginationParams(c)

	assert.Equal(t, PaginationParams{Page: 1, Limit: DefaultPageLimit, Sort: "newest", Search: "ink"}, params)
}

func TestValidateCustomTags(t *testing.T) {
	type request struct {
		Category   string `validate:"category"`
		Mode       string `validate:"sale_mode"`
		ScriptType string `validate:"script_type"`
		Chain      string `validate:"chain"`
		Use        string `validate:"license_use"`
		Term       string `validate:"license_term"`
	}

	valid := request{
		Category: string(models.CategoryLiterature),
		Mode:     string(models.SaleModeLease),
		Chain:    string(models.ChainHarmony),
		Use:      string(models.LicenseUseModification),
		Term:     string(models.LicenseTermThreeYears),
	}
	assert.NoError(t, ValidateStruct(&valid))

	invalid := request{
		Category:   "sculpture",
		Mode:       "barter",
		ScriptType: "opera",
		Chain:      "Ethereum",
		Use:        "resale",
		Term:       "forever",
	}
	errs := GetValidationErrors(ValidateStruct(&invalid))
	require.Len(t, errs, 6)

	tags := make([]string, len(errs))
	for i, e := range errs {
		tags[i] = e.Tag
		assert.NotEmpty(t, e.Message)
	}
	assert.Equal(t, []string{"category", "sale_mode", "script_type", "chain", "license_use", "license_term"}, tags)
	assert.Equal(t, "category", errs[0].Field)
}

func TestGetValidationErrorsIgnoresOtherErrors(t *testing.T) {
	assert.Empty(t, GetValidationErrors(nil))
	assert.Empty(t, GetValidationErrors(assert.AnError))
}
