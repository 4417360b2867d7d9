package entities

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	toolPattern         = regexp.MustCompile(`^Tool:\s*(.+)$`)
	personPattern       = regexp.MustCompile(`^Person:\s*([^(]+)(\((.*)\))?\s*$`)
	organizationPattern = regexp.MustCompile(`^Organization:\s*([^(]+)(\((.*)\))?\s*$`)
)

// CreatorKind distinguishes the creator variants
type CreatorKind int

const (
	// CreatorTool is a program that produced the document
	CreatorTool CreatorKind = iota
	// CreatorPerson is an individual
	CreatorPerson
	// CreatorOrganization is a company or project
	CreatorOrganization
	// CreatorNoAssertion stands for NOASSERTION in supplier/originator fields
	CreatorNoAssertion
)

// Creator is a tool, person or organization. Email is only meaningful for people and organizations.
type Creator struct {
	Kind  CreatorKind
	Name  string
	Email string
}

// NewTool creates a tool creator
func NewTool(name string) Creator {
	return Creator{Kind: CreatorTool, Name: name}
}

// NewPerson creates a person creator
func NewPerson(name, email string) Creator {
	return Creator{Kind: CreatorPerson, Name: name, Email: email}
}

// NewOrganization creates an organization creator
func NewOrganization(name, email string) Creator {
	return Creator{Kind: CreatorOrganization, Name: name, Email: email}
}

// ParseCreator reads "Tool: x", "Person: x (email)" or "Organization: x (email)"
func ParseCreator(s string) (Creator, error) {
	s = strings.TrimSpace(s)
	if m := toolPattern.FindStringSubmatch(s); m != nil {
		name := strings.TrimSpace(m[1])
		if name != "" {
			return NewTool(name), nil
		}
	}
	if m := personPattern.FindStringSubmatch(s); m != nil {
		if name := strings.TrimSpace(m[1]); name != "" {
			return NewPerson(name, strings.TrimSpace(m[3])), nil
		}
	}
	if m := organizationPattern.FindStringSubmatch(s); m != nil {
		if name := strings.TrimSpace(m[1]); name != "" {
			return NewOrganization(name, strings.TrimSpace(m[3])), nil
		}
	}
	return Creator{}, fmt.Errorf("invalid creator %q: expected Tool:, Person: or Organization:", s)
}

// String renders the creator the way it appears in tag-value text
func (c Creator) String() string {
	var prefix string
	switch c.Kind {
	case CreatorTool:
		return "Tool: " + c.Name
	case CreatorPerson:
		prefix = "Person: "
	case CreatorOrganization:
		prefix = "Organization: "
	default:
		return NoAssertionValue
	}
	if c.Email != "" {
		return prefix + c.Name + " (" + c.Email + ")"
	}
	return prefix + c.Name
}

// CreationInfo records who created the document and when
type CreationInfo struct {
	Creators           []Creator
	Created            time.Time
	Comment            string
	LicenseListVersion *Version
}

// AddCreator appends a creator
func (ci *CreationInfo) AddCreator(c Creator) {
	ci.Creators = append(ci.Creators, c)
}

// SetCreatedNow stamps the creation time with the current UTC second
func (ci *CreationInfo) SetCreatedNow() {
	ci.Created = time.Now().UTC().Truncate(time.Second)
}
