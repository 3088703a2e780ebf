package models

import (
	"fmt"
	"strings"
)

// SearchForm is the search input: name fields and/or a voter ID, each either
// empty or a non-empty token string in Latin or Devanagari script.
type SearchForm struct {
	FirstName  string `json:"first_name,omitempty"`
	MiddleName string `json:"middle_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	VoterID    string `json:"voter_id,omitempty"`
}

// Validate trims all fields and ensures at least one is populated.
func (f *SearchForm) Validate() error {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.MiddleName = strings.TrimSpace(f.MiddleName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.VoterID = strings.TrimSpace(f.VoterID)
	if f.FirstName == "" && f.MiddleName == "" && f.LastName == "" && f.VoterID == "" {
		return fmt.Errorf("at least one search field is required")
	}
	return nil
}

// SearchResult pairs a voter ID with its assembled display record.
type SearchResult struct {
	VoterID   string    `json:"voter_id"`
	FullName  string    `json:"full_name"`
	NameParts NameParts `json:"name_parts"`
	Gender    string    `json:"gender,omitempty"`
	Age       int       `json:"age,omitempty"`
	Reference string    `json:"reference,omitempty"`
}

// NewSearchResult reshapes a raw record into its display form.
func NewSearchResult(rec *VoterRecord) *SearchResult {
	return &SearchResult{
		VoterID:   rec.VoterID,
		FullName:  rec.FullName,
		NameParts: ParseName(rec.FullName),
		Gender:    rec.Gender,
		Age:       rec.Age,
		Reference: rec.Reference(),
	}
}

// SearchResponse is the outcome of one search invocation. Degraded is true
// when at least one remote probe or fetch failed, so callers can tell
// "no voters" from "an index tier was unreachable". Seq is the invocation's
// sequence token; Stale is true when a newer invocation started before this
// one finished, in which case the caller should discard the response.
type SearchResponse struct {
	Results   []*SearchResult `json:"results"`
	Total     int             `json:"total"`
	Degraded  bool            `json:"degraded,omitempty"`
	QueryTime int64           `json:"query_time_ms"`
	Seq       uint64          `json:"seq,omitempty"`
	Stale     bool            `json:"stale,omitempty"`
}
