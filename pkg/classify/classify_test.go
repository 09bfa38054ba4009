package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/git-line-totals/pkg/classify"
)

func newClassifier(t *testing.T, mode classify.Mode) *classify.Classifier {
	t.Helper()

	classifier, err := classify.NewClassifier(mode)
	require.NoError(t, err)

	return classifier
}

func TestParseMode(t *testing.T) {
	for _, name := range []string{"extension", "mime-type", "language", "detected-language"} {
		mode, err := classify.ParseMode(name)
		require.NoError(t, err)
		assert.Equal(t, classify.Mode(name), mode)
	}

	_, err := classify.ParseMode("languages")
	require.ErrorIs(t, err, classify.ErrUnknownMode)
}

func TestExtensionMode(t *testing.T) {
	classifier := newClassifier(t, classify.ModeExtension)

	assert.Equal(t, "py", classifier.Key("src/a.py"))
	assert.Equal(t, "go", classifier.Key("cmd/main.go"))
	assert.Equal(t, "gz", classifier.Key("archive.tar.gz"))
	assert.Equal(t, classify.OtherKey, classifier.Key("README"))
	assert.Equal(t, classify.OtherKey, classifier.Key("docs/Makefile"))
}

func TestExtensionModeDotfiles(t *testing.T) {
	classifier := newClassifier(t, classify.ModeExtension)

	// A leading dot alone is not an extension, nor is a trailing dot.
	assert.Equal(t, classify.OtherKey, classifier.Key(".gitignore"))
	assert.Equal(t, classify.OtherKey, classifier.Key("trailing."))
	assert.Equal(t, "local", classifier.Key(".bashrc.local"))
}

func TestMIMETypeMode(t *testing.T) {
	classifier := newClassifier(t, classify.ModeMIMEType)

	assert.Equal(t, "text/html", classifier.Key("index.html"))
	assert.Equal(t, "application/json", classifier.Key("package.json"))

	// No extension and unguessable extensions fall back to the default.
	assert.Equal(t, "application/octet-stream", classifier.Key("README"))
	assert.Equal(t, "application/octet-stream", classifier.Key("data.qqq"))
}

func TestLanguageMode(t *testing.T) {
	classifier := newClassifier(t, classify.ModeLanguage)

	assert.Equal(t, "Go", classifier.Key("pkg/tally/tally.go"))
	assert.Equal(t, "Python", classifier.Key("scripts/build.py"))
	assert.Equal(t, "Makefile", classifier.Key("Makefile"))
	assert.Equal(t, "Dockerfile", classifier.Key("deploy/Dockerfile"))
	assert.Equal(t, classify.OtherKey, classifier.Key("no-such-thing.zzz"))
	assert.Equal(t, classify.OtherKey, classifier.Key("LICENSE-APACHE"))
}

func TestLanguageModeFilenameBeatsExtension(t *testing.T) {
	classifier := newClassifier(t, classify.ModeLanguage)

	// CMakeLists.txt is claimed by CMake's filename list even though the
	// txt extension belongs to Plain Text.
	assert.Equal(t, "CMake", classifier.Key("CMakeLists.txt"))
	assert.Equal(t, "Plain Text", classifier.Key("notes.txt"))
}

func TestLanguageTableFirstDeclaredWins(t *testing.T) {
	table := classify.NewLanguageTable([]classify.Language{
		{Name: "First", Extensions: []string{"x"}},
		{Name: "Second", Extensions: []string{"x", "y"}},
	})

	lang, ok := table.Lookup("a.x")
	require.True(t, ok)
	assert.Equal(t, "First", lang)

	lang, ok = table.Lookup("a.y")
	require.True(t, ok)
	assert.Equal(t, "Second", lang)
}

func TestDetectedLanguageMode(t *testing.T) {
	classifier := newClassifier(t, classify.ModeDetectedLanguage)

	assert.Equal(t, "Go", classifier.Key("main.go"))
	assert.Equal(t, classify.OtherKey, classifier.Key("blob.zzzz"))
}

func TestKeyIsMemoized(t *testing.T) {
	classifier := newClassifier(t, classify.ModeLanguage)

	first := classifier.Key("a/b/c.py")
	second := classifier.Key("other/dir/c.py")

	// Classification depends only on the base name, so both paths hit the
	// same memo entry and yield the identical key.
	assert.Equal(t, first, second)
	assert.Equal(t, "Python", first)
}

func TestDefaultLanguageTableLoads(t *testing.T) {
	table, err := classify.DefaultLanguageTable()
	require.NoError(t, err)

	lang, ok := table.Lookup("go.mod")
	require.True(t, ok)
	assert.Equal(t, "Go", lang)
}
