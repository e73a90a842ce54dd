package keycodes

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Result describes one pass over a header.
type Result struct {
	// Sections lists section names in the order they were found.
	Sections []string
	// Unterminated names a section with no end marker. Every line after its
	// start marker was dropped.
	Unterminated string
}

// Rewrite copies r into buf, regenerating the body of every section.
func Rewrite(r io.Reader, buf *LineBuffer, opts Options) (Result, error) {
	opts = opts.withDefaults()

	var res Result
	br := bufio.NewReader(r)
	skipping := false
	current := ""

	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if skipping {
				if strings.HasPrefix(line, EndMarker) {
					buf.Append(line)
					skipping = false
				}
			} else if strings.HasPrefix(line, StartMarker) {
				current = strings.TrimSpace(line[len(StartMarker):])
				opts.Logger.Info("section", "name", current)
				res.Sections = append(res.Sections, current)
				if !strings.HasSuffix(line, "\n") {
					line += "\n"
				}
				buf.Append(line)
				AppendSection(buf, NewSection(current, opts), opts)
				skipping = true
			} else {
				buf.Append(line)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return res, errors.Wrap(err, "failed to read header")
		}
	}

	if skipping {
		res.Unterminated = current
		opts.Logger.Warn("section has no end marker, remaining lines dropped", "name", current)
	}
	return res, nil
}

// Generate returns src with every section regenerated.
func Generate(src []byte, opts Options) ([]byte, Result, error) {
	var buf LineBuffer
	res, err := Rewrite(bytes.NewReader(src), &buf, opts)
	if err != nil {
		return nil, res, err
	}
	var out bytes.Buffer
	if _, err := buf.WriteTo(&out); err != nil {
		return nil, res, err
	}
	return out.Bytes(), res, nil
}

// UpdateFile regenerates the sections of the header at path and overwrites
// it in place. Nothing is written unless the whole file was read.
func UpdateFile(path string, opts Options) (Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Result{}, errors.Wrapf(err, "failed to read %s", path)
	}

	out, res, err := Generate(src, opts)
	if err != nil {
		return res, errors.Wrapf(err, "failed to generate %s", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return res, errors.Wrapf(err, "failed to stat %s", path)
	}
	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return res, errors.Wrapf(err, "failed to write %s", path)
	}
	return res, nil
}

// CheckFile reports whether regenerating the header at path would change it.
// The file is never written.
func CheckFile(path string, opts Options) (bool, Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return false, Result{}, errors.Wrapf(err, "failed to read %s", path)
	}
	out, res, err := Generate(src, opts)
	if err != nil {
		return false, res, errors.Wrapf(err, "failed to generate %s", path)
	}
	return !bytes.Equal(src, out), res, nil
}
