// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Validation
	KeyValidationInvalid  = "validation.invalid"
	KeyValidationRequired = "validation.required"

	// Assets
	KeyAssetNotFound = "asset.not_found"
	KeyAssetUpdated  = "asset.updated"
	KeyAssetListed   = "asset.listed"
	KeyAssetUnlisted = "asset.unlisted"
	KeyAssetInvalid  = "asset.invalid"

	// Rankings
	KeyRankingNotFound = "ranking.not_found"

	// Creators
	KeyCreatorNotFound = "creator.not_found"

	// Licensing
	KeyLicenseNotAvailable     = "license.not_available"
	KeyLicenseCheckoutSuccess  = "license.checkout_success"
	KeyLicenseNotificationBody = "license.notification_body"

	// Notifications
	KeyNotificationNotFound = "notification.not_found"
	KeyNotificationAllRead  = "notification.all_read"
	KeyNotificationCleared  = "notification.cleared"

	// System
	KeyRateLimitExceeded  = "system.rate_limit_exceeded"
	KeyStorageUnavailable = "system.storage_unavailable"
	KeyInternalError      = "system.internal_error"
	KeyRequestCancelled   = "system.request_cancelled"
)
