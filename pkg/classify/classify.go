// Package classify maps file paths to group keys: the extension, MIME type,
// or language a path belongs to when aggregating counts.
package classify

import (
	"errors"
	"fmt"
	"mime"
	"path"
	"strings"

	"github.com/src-d/enry/v2"
)

// Mode selects how paths are grouped.
type Mode string

// Grouping modes.
const (
	ModeExtension        Mode = "extension"
	ModeMIMEType         Mode = "mime-type"
	ModeLanguage         Mode = "language"
	ModeDetectedLanguage Mode = "detected-language"
)

// OtherKey is the group for paths no rule matches.
const OtherKey = "other"

// defaultMIMEType is the fallback when no MIME type can be guessed.
const defaultMIMEType = "application/octet-stream"

// ErrUnknownMode is returned for an unrecognized grouping mode name.
var ErrUnknownMode = errors.New("unknown grouping mode")

// ParseMode validates a grouping mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeExtension, ModeMIMEType, ModeLanguage, ModeDetectedLanguage:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("%w: %q (want extension, mime-type, language or detected-language)", ErrUnknownMode, s)
	}
}

// Classifier maps paths to group keys under one grouping mode. Results are
// memoized per filename for the lifetime of the classifier; classification
// depends only on the base name, never on the directory.
type Classifier struct {
	mode  Mode
	table *LanguageTable
	memo  map[string]string
}

// NewClassifier creates a classifier for the given mode, backed by the
// bundled language table.
func NewClassifier(mode Mode) (*Classifier, error) {
	table, err := DefaultLanguageTable()
	if err != nil {
		return nil, err
	}

	return &Classifier{
		mode:  mode,
		table: table,
		memo:  make(map[string]string),
	}, nil
}

// Mode returns the active grouping mode.
func (c *Classifier) Mode() Mode {
	return c.mode
}

// Key returns the group key for a path. Every path maps to some key; paths
// no rule matches map to OtherKey.
func (c *Classifier) Key(filePath string) string {
	name := path.Base(filePath)

	if key, ok := c.memo[name]; ok {
		return key
	}

	key := c.classify(name)
	c.memo[name] = key

	return key
}

func (c *Classifier) classify(name string) string {
	switch c.mode {
	case ModeExtension:
		if ext := extensionOf(name); ext != "" {
			return ext
		}

		return OtherKey
	case ModeMIMEType:
		return mimeKey(name)
	case ModeLanguage:
		if lang, ok := c.table.Lookup(name); ok {
			return lang
		}

		return OtherKey
	case ModeDetectedLanguage:
		return detectedKey(name)
	default:
		return OtherKey
	}
}

// extensionOf returns the substring after the last dot of the filename, or
// "" when the name has no extension. A leading dot alone (dotfiles) and a
// trailing dot do not count as extensions.
func extensionOf(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx <= 0 || idx == len(name)-1 {
		return ""
	}

	return name[idx+1:]
}

// mimeKey guesses a MIME type from the filename's extension, with a fixed
// fallback for unguessable types. Parameters (charset) are stripped.
func mimeKey(name string) string {
	ext := extensionOf(name)
	if ext == "" {
		return defaultMIMEType
	}

	mimeType := mime.TypeByExtension("." + ext)
	if mimeType == "" {
		return defaultMIMEType
	}

	if idx := strings.Index(mimeType, ";"); idx >= 0 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}

	return mimeType
}

// detectedKey classifies via enry's linguist data.
func detectedKey(name string) string {
	lang := enry.GetLanguage(name, nil)
	if lang == "" {
		return OtherKey
	}

	return lang
}
