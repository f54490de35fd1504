// Package model defines the records produced by the enrichment pipeline.
package model

// Unknown is the sentinel value for profile fields that could not be
// resolved from any enabled source.
const Unknown = "Unknown"

// MaxKeyPeople caps how many people are collected per profile.
const MaxKeyPeople = 3

// KeyPerson is a person attached to a company, tagged with the role
// under which they were discovered.
type KeyPerson struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// CompanyProfile is the structured record emitted per enriched candidate.
// Competitors is reserved and always empty in the current pipeline.
type CompanyProfile struct {
	Name        string            `json:"name"`
	Aliases     []string          `json:"aliases"`
	Website     string            `json:"website"`
	Sector      string            `json:"sector"`
	HQLocation  string            `json:"hq_location"`
	Description string            `json:"description"`
	KeyPeople   []KeyPerson       `json:"key_people"`
	Competitors []string          `json:"competitors"`
	Sources     map[string]string `json:"sources"`
}

// NewProfile returns a profile with all collection fields initialized so
// the JSON output emits empty arrays and objects instead of nulls.
func NewProfile(name string) *CompanyProfile {
	return &CompanyProfile{
		Name:        name,
		Aliases:     []string{},
		Website:     Unknown,
		Sector:      Unknown,
		HQLocation:  Unknown,
		KeyPeople:   []KeyPerson{},
		Competitors: []string{},
		Sources:     map[string]string{},
	}
}

// EnrichmentOutcome is the per-candidate result of a batch run. Exactly one
// of Profile and Err is set.
type EnrichmentOutcome struct {
	Name    string          `json:"name"`
	Profile *CompanyProfile `json:"profile,omitempty"`
	Err     error           `json:"-"`
}

// Failed reports whether the candidate produced no profile.
func (o EnrichmentOutcome) Failed() bool {
	return o.Err != nil
}
