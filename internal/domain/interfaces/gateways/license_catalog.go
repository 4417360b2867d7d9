// Package gateways defines interfaces for external service adapters.
package gateways

import "github.com/ochairo/spdxtv/internal/domain/entities"

// LicenseCatalog is a read-only view of the SPDX license list
type LicenseCatalog interface {
	// LicenseName returns the full name for a license identifier
	LicenseName(id string) (string, bool)

	// LicenseID returns the identifier for a full license name
	LicenseID(name string) (string, bool)

	// ListVersion returns the version of the license list
	ListVersion() entities.Version
}
