package catalog

import (
	"errors"
	"strings"
	"testing"
)

func TestGet_KnownCertification(t *testing.T) {
	c, err := Get("AZ-900")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != "Microsoft Azure Fundamentals" {
		t.Errorf("unexpected name: %q", c.Name)
	}
	if len(c.Domains) != 3 {
		t.Errorf("expected 3 domains, got %d", len(c.Domains))
	}
}

func TestGet_NormalizesID(t *testing.T) {
	c, err := Get("  az-900 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID != "AZ-900" {
		t.Errorf("expected AZ-900, got %q", c.ID)
	}
}

func TestGet_UnknownCertification(t *testing.T) {
	_, err := Get("XX-000")
	if !errors.Is(err, ErrUnknownCertification) {
		t.Fatalf("expected ErrUnknownCertification, got %v", err)
	}
}

func TestGetDomain_Known(t *testing.T) {
	c, d, err := GetDomain("AZ-900", "Cloud Concepts")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID != "AZ-900" {
		t.Errorf("unexpected certification: %q", c.ID)
	}
	if d.ExamWeight != "25-30%" {
		t.Errorf("unexpected weight: %q", d.ExamWeight)
	}
	if len(d.KeyTerms) == 0 {
		t.Error("expected key terms")
	}
}

func TestGetDomain_CaseInsensitive(t *testing.T) {
	_, d, err := GetDomain("az-900", "cloud concepts")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Name != "Cloud Concepts" {
		t.Errorf("unexpected domain: %q", d.Name)
	}
}

func TestGetDomain_UnknownDomain(t *testing.T) {
	_, _, err := GetDomain("AZ-900", "Quantum Networking")
	if !errors.Is(err, ErrUnknownDomain) {
		t.Fatalf("expected ErrUnknownDomain, got %v", err)
	}
}

func TestGetDomain_UnknownCertWinsOverDomain(t *testing.T) {
	_, _, err := GetDomain("XX-000", "Cloud Concepts")
	if !errors.Is(err, ErrUnknownCertification) {
		t.Fatalf("expected ErrUnknownCertification, got %v", err)
	}
}

func TestAll_EveryDomainHasCurriculumData(t *testing.T) {
	certs := All()
	if len(certs) != 4 {
		t.Fatalf("expected 4 certifications, got %d", len(certs))
	}
	for _, c := range certs {
		if len(c.Domains) == 0 {
			t.Errorf("%s: no domains", c.ID)
		}
		for _, d := range c.Domains {
			if d.Focus == "" {
				t.Errorf("%s/%s: empty focus", c.ID, d.Name)
			}
			if len(d.KeyTerms) == 0 {
				t.Errorf("%s/%s: no key terms", c.ID, d.Name)
			}
			if len(d.ScenarioHints) == 0 {
				t.Errorf("%s/%s: no scenario hints", c.ID, d.Name)
			}
			if !strings.HasSuffix(d.ExamWeight, "%") {
				t.Errorf("%s/%s: malformed weight %q", c.ID, d.Name, d.ExamWeight)
			}
		}
	}
}

func TestKeyTermsByCertification_LowerCased(t *testing.T) {
	sets := KeyTermsByCertification()
	if len(sets) != 4 {
		t.Fatalf("expected 4 key term sets, got %d", len(sets))
	}
	for id, terms := range sets {
		for _, term := range terms {
			if term != strings.ToLower(term) {
				t.Errorf("%s: term %q not lower-cased", id, term)
			}
		}
	}
}

func TestIDs_RegistryOrder(t *testing.T) {
	ids := IDs()
	want := []string{"AZ-900", "AI-900", "SC-900", "DP-900"}
	if len(ids) != len(want) {
		t.Fatalf("expected %d ids, got %d", len(want), len(ids))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}
