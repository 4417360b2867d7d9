package entities

import (
	"crypto/sha1" //nolint:gosec // G505: SHA1 is mandated by the SPDX 2.x verification code
	"encoding/hex"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// ChecksumAlgorithmSHA1 is the only checksum algorithm SPDX 2.x tag-value accepts
const ChecksumAlgorithmSHA1 = "SHA1"

var (
	checksumPattern = regexp.MustCompile(`^\s*([A-Za-z0-9-]+):\s*(\S+)\s*$`)
	sha1HexPattern  = regexp.MustCompile(`^[a-f0-9]{40}$`)
)

// Checksum is an algorithm name and a hex digest
type Checksum struct {
	Algorithm string
	Value     string
}

// NewSHA1Checksum creates a SHA1 checksum from a hex digest
func NewSHA1Checksum(value string) *Checksum {
	return &Checksum{Algorithm: ChecksumAlgorithmSHA1, Value: value}
}

// ParseChecksum parses "ALGO: hex"
func ParseChecksum(s string) (*Checksum, error) {
	m := checksumPattern.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("invalid checksum %q: expected 'ALGORITHM: value'", s)
	}
	return &Checksum{Algorithm: m[1], Value: m[2]}, nil
}

// ParseSHA1Checksum parses and validates "SHA1: <40 hex>"
func ParseSHA1Checksum(s string) (*Checksum, error) {
	c, err := ParseChecksum(s)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that the checksum is a well-formed SHA1 digest
func (c *Checksum) Validate() error {
	if c.Algorithm != ChecksumAlgorithmSHA1 {
		return fmt.Errorf("checksum algorithm must be SHA1, got %q", c.Algorithm)
	}
	if !sha1HexPattern.MatchString(c.Value) {
		return fmt.Errorf("SHA1 value must be 40 lowercase hex characters, got %q", c.Value)
	}
	return nil
}

func (c *Checksum) String() string {
	return c.Algorithm + ": " + c.Value
}

// VerificationCode is the package verification code and the files it excludes
type VerificationCode struct {
	Value         string
	ExcludedFiles []string
}

func (v *VerificationCode) String() string {
	if len(v.ExcludedFiles) == 0 {
		return v.Value
	}
	return v.Value + " (" + strings.Join(v.ExcludedFiles, ",") + ")"
}

// ComputeVerificationCode derives the package verification code: the SHA1 of the
// sorted, concatenated SHA1 values of every file not listed in excluded.
func ComputeVerificationCode(files []*File, excluded []string) (*VerificationCode, error) {
	digests := make([]string, 0, len(files))
	for _, f := range files {
		if slices.Contains(excluded, f.Name) {
			continue
		}
		if f.Checksum == nil {
			return nil, fmt.Errorf("file %s has no checksum", f.Name)
		}
		if f.Checksum.Algorithm != ChecksumAlgorithmSHA1 {
			return nil, fmt.Errorf("file %s checksum is %s, want SHA1", f.Name, f.Checksum.Algorithm)
		}
		digests = append(digests, strings.ToLower(f.Checksum.Value))
	}
	slices.Sort(digests)

	h := sha1.New() //nolint:gosec // G401: SHA1 is mandated by the SPDX 2.x verification code
	for _, d := range digests {
		h.Write([]byte(d))
	}
	return &VerificationCode{
		Value:         hex.EncodeToString(h.Sum(nil)),
		ExcludedFiles: slices.Clone(excluded),
	}, nil
}
