package models

import (
	"testing"
)

func TestParseName(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		expected NameParts
	}{
		{"three tokens", "मंगेश रामदास बधाले", NameParts{First: "मंगेश", Middle: "रामदास", Last: "बधाले"}},
		{"two tokens", "मंगेश बधाले", NameParts{First: "मंगेश", Middle: "", Last: "बधाले"}},
		{"one token", "मंगेश", NameParts{First: "मंगेश", Middle: "", Last: "मंगेश"}},
		{"four tokens join middle", "अ ब क ड", NameParts{First: "अ", Middle: "ब क", Last: "ड"}},
		{"empty", "", NameParts{}},
		{"extra whitespace", "  मंगेश   बधाले  ", NameParts{First: "मंगेश", Last: "बधाले"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseName(tt.fullName)
			if got != tt.expected {
				t.Errorf("ParseName(%q) = %+v, want %+v", tt.fullName, got, tt.expected)
			}
		})
	}
}

func TestVoterRecordReference(t *testing.T) {
	rec := &VoterRecord{
		Booth:    "शाळा क्र. ५",
		Village:  "वडगाव",
		Gan:      "गण ३",
		Gat:      "गट १२",
		SerialNo: "482",
	}
	want := "Booth: शाळा क्र. ५, Village: वडगाव, Gan: गण ३, Gat: गट १२, Sr.No: 482"
	if got := rec.Reference(); got != want {
		t.Errorf("Reference() = %q, want %q", got, want)
	}
}

func TestVoterRecordReferenceSkipsEmpty(t *testing.T) {
	rec := &VoterRecord{Village: "वडगाव", SerialNo: "7"}
	want := "Village: वडगाव, Sr.No: 7"
	if got := rec.Reference(); got != want {
		t.Errorf("Reference() = %q, want %q", got, want)
	}
	empty := &VoterRecord{}
	if got := empty.Reference(); got != "" {
		t.Errorf("empty record Reference() = %q, want empty", got)
	}
}

func TestSearchFormValidate(t *testing.T) {
	tests := []struct {
		name    string
		form    *SearchForm
		wantErr bool
	}{
		{"all empty", &SearchForm{}, true},
		{"whitespace only", &SearchForm{FirstName: "   "}, true},
		{"first name only", &SearchForm{FirstName: "mangesh"}, false},
		{"voter id only", &SearchForm{VoterID: "UXM8227381"}, false},
		{"trims fields", &SearchForm{LastName: " badale "}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	f := &SearchForm{LastName: " badale "}
	if err := f.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if f.LastName != "badale" {
		t.Errorf("LastName not trimmed: %q", f.LastName)
	}
}

func TestNewSearchResult(t *testing.T) {
	rec := &VoterRecord{
		VoterID:  "UXM8227381",
		FullName: "मंगेश रामदास बधाले",
		Gender:   "M",
		Age:      34,
		Village:  "वडगाव",
	}
	res := NewSearchResult(rec)
	if res.VoterID != rec.VoterID || res.FullName != rec.FullName {
		t.Errorf("identity fields not carried: %+v", res)
	}
	if res.NameParts.First != "मंगेश" || res.NameParts.Middle != "रामदास" || res.NameParts.Last != "बधाले" {
		t.Errorf("unexpected name parts %+v", res.NameParts)
	}
	if res.Reference != "Village: वडगाव" {
		t.Errorf("unexpected reference %q", res.Reference)
	}
}
