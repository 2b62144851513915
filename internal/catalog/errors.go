// internal/catalog/errors.go
package catalog

import "errors"

var (
	ErrAssetNotFound = errors.New("asset not found")
	ErrInvalidAsset  = errors.New("invalid asset")
)
