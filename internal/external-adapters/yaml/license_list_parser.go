// Package yaml loads SPDX license lists from YAML or JSON documents.
package yaml

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ochairo/spdxtv/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

// yamlLicenseList mirrors the published licenses.json layout. JSON is valid YAML
// for this shape, so both encodings go through the same decoder.
type yamlLicenseList struct {
	LicenseListVersion string        `yaml:"licenseListVersion"`
	Licenses           []yamlLicense `yaml:"licenses"`
}

type yamlLicense struct {
	LicenseID    string `yaml:"licenseId"`
	Name         string `yaml:"name"`
	IsDeprecated bool   `yaml:"isDeprecatedLicenseId"`
}

// LicenseListParser parses license list files
type LicenseListParser struct{}

// NewLicenseListParser creates a new license list parser
func NewLicenseListParser() *LicenseListParser {
	return &LicenseListParser{}
}

// ParseFile parses a license list file
func (p *LicenseListParser) ParseFile(filePath string) (*entities.LicenseList, error) {
	//nolint:gosec // G304: filePath is the license list configured by the user
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	return p.Parse(data)
}

// Parse converts license list bytes into a LicenseList. Deprecated identifiers are skipped.
func (p *LicenseListParser) Parse(data []byte) (*entities.LicenseList, error) {
	var raw yamlLicenseList
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse license list: %w", err)
	}

	if raw.LicenseListVersion == "" {
		return nil, errors.New("license list must have a licenseListVersion")
	}
	version, err := entities.ParseVersion(strings.TrimSpace(raw.LicenseListVersion))
	if err != nil {
		return nil, fmt.Errorf("invalid licenseListVersion: %w", err)
	}

	list := entities.NewLicenseList(version)
	for i, lic := range raw.Licenses {
		if lic.LicenseID == "" {
			return nil, fmt.Errorf("license %d has no licenseId", i)
		}
		if lic.IsDeprecated {
			continue
		}
		name := lic.Name
		if name == "" {
			name = lic.LicenseID
		}
		list.Add(lic.LicenseID, name)
	}

	return list, nil
}
