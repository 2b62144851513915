// internal/middleware/i18n.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

func I18nMiddleware(defaultLang string) gin.HandlerFunc {
	if defaultLang == "" {
		defaultLang = "en"
	}

	return func(c *gin.Context) {
		lang := defaultLang

		// Handle cases like "zh-CN,zh;q=0.9,en;q=0.8"
		if header := c.GetHeader("Accept-Language"); header != "" {
			lang = negotiateLang(header, defaultLang)
		}

		c.Set("lang", lang)
		c.Next()
	}
}

// negotiateLang picks the highest-weighted supported language. Every
// Chinese variant is served the zh_CN table.
func negotiateLang(header, fallback string) string {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return fallback
	}

	for _, tag := range tags {
		base, _ := tag.Base()
		switch base.String() {
		case "zh":
			return "zh_CN"
		case "en":
			return "en"
		}
	}
	return fallback
}
