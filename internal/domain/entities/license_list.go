package entities

import "sort"

// LicenseList maps SPDX license identifiers to full names and back
type LicenseList struct {
	Version Version
	names   map[string]string
	ids     map[string]string
}

// NewLicenseList creates an empty list with the given version
func NewLicenseList(version Version) *LicenseList {
	return &LicenseList{
		Version: version,
		names:   make(map[string]string),
		ids:     make(map[string]string),
	}
}

// Add registers a license
func (l *LicenseList) Add(id, name string) {
	l.names[id] = name
	l.ids[name] = id
}

// LicenseName returns the full name for id
func (l *LicenseList) LicenseName(id string) (string, bool) {
	name, ok := l.names[id]
	return name, ok
}

// LicenseID returns the identifier for a full name
func (l *LicenseList) LicenseID(name string) (string, bool) {
	id, ok := l.ids[name]
	return id, ok
}

// ListVersion returns the list version
func (l *LicenseList) ListVersion() Version {
	return l.Version
}

// Len returns the number of licenses
func (l *LicenseList) Len() int {
	return len(l.names)
}

// IDs returns all identifiers, sorted
func (l *LicenseList) IDs() []string {
	ids := make([]string, 0, len(l.names))
	for id := range l.names {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
