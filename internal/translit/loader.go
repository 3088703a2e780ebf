package translit

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadDictionary reads a YAML dictionary overlay file: a flat map of
// lowercase romanized word to Devanagari. Returns an error if the file
// cannot be read or parsed.
func LoadDictionary(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}
	var dict map[string]string
	if err := yaml.Unmarshal(data, &dict); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary: %w", err)
	}
	return dict, nil
}

// mergedDictionary returns the built-in dictionary with overlay entries
// applied on top. Overlay entries win on conflict.
func mergedDictionary(overlay map[string]string) map[string]string {
	dict := DefaultDictionary()
	for k, v := range overlay {
		dict[k] = v
	}
	return dict
}
