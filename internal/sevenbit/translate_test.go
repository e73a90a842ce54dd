package sevenbit

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranslatorLine(t *testing.T) {
	tests := []struct {
		name      string
		inComment bool
		input     string
		expected  string
		after     bool
	}{
		{
			name:     "code",
			input:    "const char *s = \"caf\u00e9\";\n",
			expected: "const char *s = \"caf\\351\";\n",
		},
		{
			name:     "line comment kept",
			input:    "x = '\u00e9'; // \u00e9t\u00e9\n",
			expected: "x = '\\351'; // \u00e9t\u00e9\n",
		},
		{
			name:     "only first line comment marker counts",
			input:    "// \u00e9 see http://example\n",
			expected: "// \u00e9 see http://example\n",
		},
		{
			name:     "block comment on one line",
			input:    "s = \"\u00e9\"; /* \u00e9 */ t = \"\u00e8\";\n",
			expected: "s = \"\\351\"; /* \u00e9 */ t = \"\u00e8\";\n",
		},
		{
			name:     "block comment opens",
			input:    "s = \"\u00e9\"; /* \u00e9\n",
			expected: "s = \"\\351\"; /* \u00e9\n",
			after:    true,
		},
		{
			name:      "inside block comment",
			inComment: true,
			input:     " * Copyright \u00a9 2018\n",
			expected:  " * Copyright \u00a9 2018\n",
			after:     true,
		},
		{
			name:      "block comment closes",
			inComment: true,
			input:     " \u00e9 */ s = \"\u00e9\";\n",
			expected:  " \u00e9 */ s = \"\\351\";\n",
		},
		{
			name:      "close marker only",
			inComment: true,
			input:     "*/\n",
			expected:  "*/\n",
		},
		{
			name:     "opener reused as closer",
			input:    "/*/ \u00e9\n",
			expected: "/*/ \u00e9\n",
			after:    true,
		},
		{
			name:     "no newline",
			input:    "\u00e9",
			expected: "\\351",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTranslator(Octal)
			tr.inComment = tt.inComment
			require.Equal(t, tt.expected, tr.Line(tt.input))
			require.Equal(t, tt.after, tr.InComment())
		})
	}
}

func TestTranslate(t *testing.T) {
	src := []byte("/* D\xe9mo\n * \xa9 2018\n */\n" +
		"static const char *msg = \"Fran\xe7ais\"; // \xe7a\n" +
		"char c = '\xe9';\n")
	expected := "/* D\xe9mo\n * \xa9 2018\n */\n" +
		"static const char *msg = \"Fran\\347ais\"; // \xe7a\n" +
		"char c = '\\351';\n"

	out, changed, err := Translate(bytes.NewReader(src), Octal)
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, expected, string(out))
}

func TestTranslateUnchanged(t *testing.T) {
	src := []byte("/* \xe9t\xe9 */\nint x; // \xe9\n/*\n \xe9\n*/\nint y;\n")

	out, changed, err := Translate(bytes.NewReader(src), Octal)
	require.NoError(t, err)
	require.False(t, changed)
	require.Equal(t, src, out)
}

func TestTranslateResetsCommentStatePerCall(t *testing.T) {
	_, _, err := Translate(strings.NewReader("/* open\n"), Octal)
	require.NoError(t, err)

	out, changed, err := Translate(strings.NewReader("char c = '\xe9';\n"), Octal)
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, "char c = '\\351';\n", string(out))
}

func quietOptions() Options {
	return Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func TestConvertFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "text.c")
	src := []byte("char *s = \"\xe9\";\n")
	require.NoError(t, os.WriteFile(path, src, 0644))

	translated, err := ConvertFile(path, quietOptions())
	require.NoError(t, err)
	require.True(t, translated)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "char *s = \"\\351\";\n", string(content))

	backup, err := os.ReadFile(path + ".orig")
	require.NoError(t, err)
	require.Equal(t, src, backup)

	_, err = os.Stat(path + ".out")
	require.True(t, os.IsNotExist(err))
}

func TestConvertFileNoop(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "io.c")
	src := []byte("/* \xe9 */\nint main(void) { return 0; }\n")
	require.NoError(t, os.WriteFile(path, src, 0644))

	translated, err := ConvertFile(path, quietOptions())
	require.NoError(t, err)
	require.False(t, translated)

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, src, content)
}

func TestConvertFileCustomSuffixes(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "setup.c")
	require.NoError(t, os.WriteFile(path, []byte("\xff\n"), 0644))

	opts := quietOptions()
	opts.BackupSuffix = ".bak"
	opts.Format = Hex
	translated, err := ConvertFile(path, opts)
	require.NoError(t, err)
	require.True(t, translated)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "\\xff\n", string(content))
	_, err = os.Stat(path + ".bak")
	require.NoError(t, err)
}

func TestConvertFileMissing(t *testing.T) {
	_, err := ConvertFile(filepath.Join(t.TempDir(), "missing.c"), quietOptions())
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing.c")
}

func TestConvertFileTempWriteFails(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "gfx.c")
	src := []byte("char c = '\xe9';\n")
	require.NoError(t, os.WriteFile(path, src, 0644))
	// A directory in the way of the temp file makes the write fail.
	require.NoError(t, os.Mkdir(path+".out", 0755))

	_, err := ConvertFile(path, quietOptions())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to write")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, src, content)
}
