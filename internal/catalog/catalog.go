// Package catalog holds the static certification curriculum registry.
//
// Each supported certification maps to the domains of its official exam
// outline, with exam weights, focus descriptions, key terms, and scenario
// hints used to scope quiz generation prompts. The registry is immutable
// reference data resolved at startup; nothing in the service mutates it.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCertification is returned when a certification id is not in the
// registry.
var ErrUnknownCertification = errors.New("unknown certification")

// ErrUnknownDomain is returned when a certification exists but the requested
// domain is not part of its exam outline.
var ErrUnknownDomain = errors.New("unknown domain")

// Certification describes one supported certification exam.
type Certification struct {
	// ID is the official exam code, e.g. "AZ-900".
	ID string `json:"id"`

	// Name is the full certification title.
	Name string `json:"name"`

	// Provider is the certifying body, e.g. "Microsoft".
	Provider string `json:"provider"`

	// Description is a one-line summary shown in listings.
	Description string `json:"description"`

	// Domains are the exam outline domains in official order.
	Domains []Domain `json:"domains"`
}

// Domain describes one curriculum domain within a certification.
type Domain struct {
	// Name is the domain title as it appears in the exam outline.
	Name string `json:"name"`

	// ExamWeight is the official weight range, e.g. "25-30%".
	ExamWeight string `json:"examWeight"`

	// Focus summarizes what the domain covers, used to scope prompts.
	Focus string `json:"focus"`

	// KeyTerms are concepts the domain examines. Also consumed by the
	// conversation gate and the keyword-frequency context fallback.
	KeyTerms []string `json:"keyTerms"`

	// ScenarioHints seed scenario-style question framing, in priority order.
	ScenarioHints []string `json:"scenarioHints"`
}

// registry holds the certification catalog with a lookup index.
type registry struct {
	certs []Certification
	byID  map[string]*Certification
}

// reg is the package-level registry singleton, set by init() in seed.go.
var reg *registry

func buildRegistry(certs []Certification) *registry {
	r := &registry{
		certs: certs,
		byID:  make(map[string]*Certification, len(certs)),
	}
	for i := range r.certs {
		r.byID[normalizeID(r.certs[i].ID)] = &r.certs[i]
	}
	return r
}

// normalizeID canonicalizes a certification id for lookup ("az-900" → "AZ-900").
func normalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// All returns every certification in registry order.
func All() []Certification {
	out := make([]Certification, len(reg.certs))
	copy(out, reg.certs)
	return out
}

// IDs returns the certification codes in registry order.
func IDs() []string {
	out := make([]string, len(reg.certs))
	for i, c := range reg.certs {
		out[i] = c.ID
	}
	return out
}

// Get returns the certification for the given id.
func Get(id string) (*Certification, error) {
	c, ok := reg.byID[normalizeID(id)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCertification, id)
	}
	return c, nil
}

// IsKnown reports whether the id resolves to a supported certification.
func IsKnown(id string) bool {
	_, ok := reg.byID[normalizeID(id)]
	return ok
}

// GetDomain returns the topic spec for (certification id, domain name).
// Domain names match case-insensitively so callers can pass UI labels as-is.
func GetDomain(certID, domainName string) (*Certification, *Domain, error) {
	c, err := Get(certID)
	if err != nil {
		return nil, nil, err
	}
	want := strings.ToLower(strings.TrimSpace(domainName))
	for i := range c.Domains {
		if strings.ToLower(c.Domains[i].Name) == want {
			return c, &c.Domains[i], nil
		}
	}
	return nil, nil, fmt.Errorf("%w: %q for certification %s", ErrUnknownDomain, domainName, c.ID)
}

// KeyTermsByCertification returns each certification's combined key-term set,
// lower-cased, keyed by certification id. Used by the deterministic context
// classifier fallback.
func KeyTermsByCertification() map[string][]string {
	out := make(map[string][]string, len(reg.certs))
	for _, c := range reg.certs {
		var terms []string
		for _, d := range c.Domains {
			for _, t := range d.KeyTerms {
				terms = append(terms, strings.ToLower(t))
			}
		}
		out[c.ID] = terms
	}
	return out
}
