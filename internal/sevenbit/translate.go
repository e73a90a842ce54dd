package sevenbit

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/elijahmorgan/srctools/internal/logutil"
	"github.com/elijahmorgan/srctools/internal/paths"
)

const (
	blockOpen  = "/*"
	blockClose = "*/"
	lineOpen   = "//"
)

// Translator escapes the code portion of successive lines of one file.
//
// Comments are found by searching for their markers, not by tokenizing, so
// a marker inside a string literal is taken for a real comment.
type Translator struct {
	format    Format
	inComment bool
}

// NewTranslator returns a Translator positioned outside any comment.
func NewTranslator(f Format) *Translator {
	if f == "" {
		f = DefaultFormat
	}
	return &Translator{format: f}
}

// InComment reports whether the last line left a block comment open.
func (t *Translator) InComment() bool {
	return t.inComment
}

// Line translates one line, including its terminator if any.
func (t *Translator) Line(line string) string {
	if t.inComment {
		end := strings.Index(line, blockClose)
		if end < 0 {
			return line
		}
		t.inComment = false
		end += len(blockClose)
		return line[:end] + Escape(line[end:], t.format)
	}

	if start := strings.Index(line, blockOpen); start >= 0 {
		if !strings.Contains(line[start+len(blockOpen):], blockClose) {
			t.inComment = true
		}
		return Escape(line[:start], t.format) + line[start:]
	}

	if start := strings.Index(line, lineOpen); start >= 0 {
		return Escape(line[:start], t.format) + line[start:]
	}

	return Escape(line, t.format)
}

// Translate reads a whole source file from r and returns it with 8-bit
// characters escaped. changed is true when the output length differs from
// the number of bytes read.
func Translate(r io.Reader, f Format) (out []byte, changed bool, err error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to read source")
	}

	text, err := decodeLatin1(src)
	if err != nil {
		return nil, false, err
	}

	t := NewTranslator(f)
	var b strings.Builder
	b.Grow(len(text))
	for _, line := range strings.SplitAfter(text, "\n") {
		b.WriteString(t.Line(line))
	}

	out, err = encodeLatin1(b.String())
	if err != nil {
		return nil, false, err
	}
	return out, len(out) != len(src), nil
}

// Options controls ConvertFile.
type Options struct {
	Format       Format
	BackupSuffix string // Added to the original file's name (default ".orig")
	TempSuffix   string // Names the translated file before the swap (default ".out")
	Logger       *slog.Logger
}

// ConvertFile translates the source file at path. When anything was escaped
// the translated content replaces path and the original is kept as
// path+BackupSuffix. It reports whether the file was translated.
func ConvertFile(path string, opts Options) (bool, error) {
	logger := logutil.OrDefault(opts.Logger)

	f, err := os.Open(path)
	if err != nil {
		return false, errors.Wrapf(err, "failed to open %s", path)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return false, errors.Wrapf(err, "failed to stat %s", path)
	}
	out, changed, err := Translate(f, opts.Format)
	f.Close()
	if err != nil {
		return false, errors.Wrapf(err, "failed to translate %s", path)
	}
	if !changed {
		logger.Debug("nothing to translate", "file", path)
		return false, nil
	}

	tmpPath := paths.TempPath(path, opts.TempSuffix)
	backupPath := paths.BackupPath(path, opts.BackupSuffix)

	if err := os.WriteFile(tmpPath, out, info.Mode().Perm()); err != nil {
		return false, errors.Wrapf(err, "failed to write %s", tmpPath)
	}
	if err := os.Rename(path, backupPath); err != nil {
		return false, errors.Wrapf(err, "failed to rename %s to %s", path, backupPath)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return false, errors.Wrapf(err, "failed to rename %s to %s", tmpPath, path)
	}
	logger.Debug("translated", "file", path, "backup", backupPath, "grown", len(out)-int(info.Size()))
	return true, nil
}
