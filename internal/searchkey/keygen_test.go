package searchkey

import (
	"reflect"
	"testing"

	"github.com/gramseva/matadar/internal/translit"
)

func TestKeysFullName(t *testing.T) {
	g := NewGenerator(translit.NewDefault())
	got := g.Keys("मंगेश", "रामदास", "बधाले")
	want := []string{"बधाले_मंगेश_रामदास", "मंगेश_बधाले", "बधाले"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestKeysNoEmptySegments(t *testing.T) {
	g := NewGenerator(translit.NewDefault())
	tests := []struct {
		name                string
		first, middle, last string
		want                []string
	}{
		{"no middle", "मंगेश", "", "बधाले", []string{"मंगेश_बधाले", "बधाले"}},
		{"last only", "", "", "बधाले", []string{"बधाले"}},
		{"first only", "मंगेश", "", "", []string{}},
		{"middle without first", "", "रामदास", "बधाले", []string{"बधाले"}},
		{"all empty", "", "", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Keys(tt.first, tt.middle, tt.last)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Keys(%q,%q,%q) = %v, want %v", tt.first, tt.middle, tt.last, got, tt.want)
			}
		})
	}
}

func TestKeysTransliteratesLatinInput(t *testing.T) {
	g := NewGenerator(translit.NewDefault())
	got := g.Keys("mangesh", "ramdas", "badale")
	want := []string{"बधाले_मंगेश_रामदास", "मंगेश_बधाले", "बधाले"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestKeysMixedScripts(t *testing.T) {
	g := NewGenerator(translit.NewDefault())
	got := g.Keys("mangesh", "", "बधाले")
	want := []string{"मंगेश_बधाले", "बधाले"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}
