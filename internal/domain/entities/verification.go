package entities

import "errors"

var (
	// ErrChecksumMismatch reports a file whose bytes no longer match its recorded checksum
	ErrChecksumMismatch = errors.New("checksum mismatch")
	// ErrSignature reports a detached signature that does not verify
	ErrSignature = errors.New("signature check failed")
)

// FileVerification is the outcome of checking one file against its recorded checksum
type FileVerification struct {
	Name     string
	Expected *Checksum
	Actual   *Checksum
	Err      error
}

// OK reports whether the file matched
func (v FileVerification) OK() bool {
	return v.Err == nil
}

// VerificationReport summarizes a document's integrity check
type VerificationReport struct {
	Files            []FileVerification
	ExpectedCode     *VerificationCode
	ActualCode       *VerificationCode
	SignatureChecked bool
}

// Failed returns the files that did not match
func (r *VerificationReport) Failed() []FileVerification {
	var failed []FileVerification
	for _, f := range r.Files {
		if !f.OK() {
			failed = append(failed, f)
		}
	}
	return failed
}

// CodeMatches reports whether the recomputed verification code equals the recorded one
func (r *VerificationReport) CodeMatches() bool {
	if r.ExpectedCode == nil || r.ActualCode == nil {
		return false
	}
	return r.ExpectedCode.Value == r.ActualCode.Value
}

// Passed reports whether every check succeeded
func (r *VerificationReport) Passed() bool {
	return len(r.Failed()) == 0 && r.CodeMatches()
}

// GenerateOptions controls building a document from a directory
type GenerateOptions struct {
	DocumentName string
	Namespace    string
	PackageName  string
	Creators     []Creator
	Excluded     []string
}
