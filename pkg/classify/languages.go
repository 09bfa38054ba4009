package classify

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed languages.yaml
var languagesYAML []byte

// Language maps a language name to the filenames and extensions it claims.
type Language struct {
	Name       string   `yaml:"name"`
	Filenames  []string `yaml:"filenames"`
	Extensions []string `yaml:"extensions"`
}

// LanguageTable resolves filenames and extensions to language names.
// Declaration order breaks ties: when two languages claim the same extension,
// the first declared one wins.
type LanguageTable struct {
	byFilename  map[string]string
	byExtension map[string]string
}

// NewLanguageTable builds a lookup table from an ordered language list.
func NewLanguageTable(languages []Language) *LanguageTable {
	table := &LanguageTable{
		byFilename:  make(map[string]string),
		byExtension: make(map[string]string),
	}

	for _, lang := range languages {
		for _, name := range lang.Filenames {
			if _, taken := table.byFilename[name]; !taken {
				table.byFilename[name] = lang.Name
			}
		}

		for _, ext := range lang.Extensions {
			if _, taken := table.byExtension[ext]; !taken {
				table.byExtension[ext] = lang.Name
			}
		}
	}

	return table
}

// Lookup returns the language claiming the given filename, checking the
// explicit filename list before the extension list. The second return value
// is false when no language matches.
func (t *LanguageTable) Lookup(filename string) (string, bool) {
	if lang, ok := t.byFilename[filename]; ok {
		return lang, true
	}

	ext := extensionOf(filename)
	if ext == "" {
		return "", false
	}

	lang, ok := t.byExtension[ext]

	return lang, ok
}

var defaultTable = sync.OnceValues(func() (*LanguageTable, error) {
	var languages []Language

	err := yaml.Unmarshal(languagesYAML, &languages)
	if err != nil {
		return nil, fmt.Errorf("parse bundled language table: %w", err)
	}

	return NewLanguageTable(languages), nil
})

// DefaultLanguageTable returns the bundled language table, parsed once.
func DefaultLanguageTable() (*LanguageTable, error) {
	return defaultTable()
}
