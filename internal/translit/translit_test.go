package translit

import (
	"strings"
	"testing"
)

func TestContainsDevanagari(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty", "", false},
		{"ascii", "mangesh", false},
		{"devanagari word", "मंगेश", true},
		{"mixed script", "mangesh बधाले", true},
		{"digits", "8227381", false},
		{"latin with diacritics", "café", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsDevanagari(tt.input); got != tt.expected {
				t.Errorf("ContainsDevanagari(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTransliterateNativeScriptPassthrough(t *testing.T) {
	tr := NewDefault()
	inputs := []string{"मंगेश", "मंगेश रामदास बधाले", "बधाले ", "mangesh बधाले"}
	for _, in := range inputs {
		if got := tr.Transliterate(in); got != in {
			t.Errorf("Transliterate(%q) = %q, want unchanged", in, got)
		}
	}
}

func TestTransliterateDictionaryHit(t *testing.T) {
	tr := NewDefault()
	tests := []struct {
		input    string
		expected string
	}{
		{"badale", "बधाले"},
		{"Badale", "बधाले"},
		{"  badale  ", "बधाले"},
		{"mangesh", "मंगेश"},
		{"mangesh ramdas badale", "मंगेश रामदास बधाले"},
	}
	for _, tt := range tests {
		if got := tr.Transliterate(tt.input); got != tt.expected {
			t.Errorf("Transliterate(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestTransliterateGreedyFallback(t *testing.T) {
	tr := NewDefault()
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single chars", "raju", "रअजउ"},
		{"two-char sequence wins", "khadu", "खअदउ"},
		{"three-char sequence wins", "chhaya", "छअयअ"},
		{"long vowel", "baaji", "बआजइ"},
		{"unknown runes verbatim", "r2d2", "र2द2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.Transliterate(tt.input); got != tt.expected {
				t.Errorf("Transliterate(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTransliteratePreservesTokenCount(t *testing.T) {
	tr := NewDefault()
	inputs := []string{"a b c", "mangesh xyz badale", "one two three four"}
	for _, in := range inputs {
		got := tr.Transliterate(in)
		if len(strings.Fields(got)) != len(strings.Fields(in)) {
			t.Errorf("token count changed: %q -> %q", in, got)
		}
		if got == "" {
			t.Errorf("non-empty input %q produced empty output", in)
		}
	}
}

func TestTransliterateEmpty(t *testing.T) {
	tr := NewDefault()
	if got := tr.Transliterate(""); got != "" {
		t.Errorf("empty input should stay empty, got %q", got)
	}
	if got := tr.Transliterate("   "); got != "" {
		t.Errorf("whitespace input should become empty, got %q", got)
	}
}

func TestCustomTablesInjected(t *testing.T) {
	tr := New(map[string]string{"foo": "फू"}, map[string]string{"b": "ब"})
	if got := tr.Transliterate("foo"); got != "फू" {
		t.Errorf("custom dictionary not used: %q", got)
	}
	if got := tr.Transliterate("bb"); got != "बब" {
		t.Errorf("custom table not used: %q", got)
	}
	// unknown chars pass through with the tiny table
	if got := tr.Transliterate("bx"); got != "बx" {
		t.Errorf("unknown rune not verbatim: %q", got)
	}
}

func TestNewCopiesTables(t *testing.T) {
	dict := map[string]string{"foo": "फू"}
	tr := New(dict, nil)
	dict["foo"] = "changed"
	if got := tr.Transliterate("foo"); got != "फू" {
		t.Errorf("transliterator shares caller's map: %q", got)
	}
}
