// Package repositories defines interfaces for data access layers.
package repositories

import (
	"context"

	"github.com/ochairo/spdxtv/internal/domain/entities"
)

// LicenseRepository defines the interface for loading SPDX license lists
type LicenseRepository interface {
	// LoadLicenseList reads the configured license list
	LoadLicenseList(ctx context.Context) (*entities.LicenseList, error)
}
