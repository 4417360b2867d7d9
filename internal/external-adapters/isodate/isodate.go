// Package isodate converts between time.Time and the UTC timestamps SPDX uses.
package isodate

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the only timestamp form tag:value documents carry
const Layout = "2006-01-02T15:04:05Z"

// Parse reads "YYYY-MM-DDThh:mm:ssZ"
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q: %w", s, err)
	}
	return t.UTC(), nil
}

// Format renders t in UTC, truncated to the second
func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}
