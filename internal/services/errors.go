// internal/services/errors.go
package services

import "errors"

var (
	ErrUnknownBoard          = errors.New("unknown ranking board")
	ErrLicenseNotAvailable   = errors.New("asset is not available for licensing")
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrCreatorNotFound       = errors.New("creator not found")
	ErrInvalidLicenseRequest = errors.New("invalid license request")
)
