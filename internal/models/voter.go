// Package models defines core data structures for voters, search forms, and results.
package models

import "strings"

// VoterRecord is a single electoral-roll entry as stored in the remote store.
// Records are read-only from this application's perspective; the roll is
// provisioned by external data-loading tooling.
type VoterRecord struct {
	VoterID  string `json:"voter_id"`
	FullName string `json:"full_name"`
	Gender   string `json:"gender,omitempty"`
	Age      int    `json:"age,omitempty"`
	Booth    string `json:"booth,omitempty"`
	Village  string `json:"village,omitempty"`
	Gan      string `json:"gan,omitempty"`
	Gat      string `json:"gat,omitempty"`
	SerialNo string `json:"serial_no,omitempty"`
}

// NameParts is a full name split by positional heuristic.
type NameParts struct {
	First  string `json:"first"`
	Middle string `json:"middle"`
	Last   string `json:"last"`
}

// ParseName splits a full name into parts: first token is the first name,
// last token is the surname, any middle tokens join into the middle name.
// A single-token name is both first name and surname.
func ParseName(fullName string) NameParts {
	tokens := strings.Fields(fullName)
	switch len(tokens) {
	case 0:
		return NameParts{}
	case 1:
		return NameParts{First: tokens[0], Last: tokens[0]}
	case 2:
		return NameParts{First: tokens[0], Last: tokens[1]}
	default:
		return NameParts{
			First:  tokens[0],
			Middle: strings.Join(tokens[1:len(tokens)-1], " "),
			Last:   tokens[len(tokens)-1],
		}
	}
}

// Reference builds the human-readable locality reference string for a record.
// Fields appear in a fixed order; empty fields are skipped.
func (v *VoterRecord) Reference() string {
	var parts []string
	for _, p := range []struct{ label, value string }{
		{"Booth", v.Booth},
		{"Village", v.Village},
		{"Gan", v.Gan},
		{"Gat", v.Gat},
		{"Sr.No", v.SerialNo},
	} {
		if p.value != "" {
			parts = append(parts, p.label+": "+p.value)
		}
	}
	return strings.Join(parts, ", ")
}
