package keycodes

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/elijahmorgan/srctools/internal/logutil"
)

// Options controls table generation.
type Options struct {
	SDLSection string   // Section emitting K2K(SDLK_*) values (default "SDL and SDL2")
	SDLFlag    string   // Flag tested before the SDL keypad symbols (default USE_SDL)
	Keys       []string // Named keys heading each table (default CanonicalKeys())
	Logger     *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.SDLSection == "" {
		o.SDLSection = DefaultSDLSection
	}
	if o.SDLFlag == "" {
		o.SDLFlag = DefaultSDLFlag
	}
	if o.Keys == nil {
		o.Keys = CanonicalKeys()
	}
	o.Logger = logutil.OrDefault(o.Logger)
	return o
}

// Section is one marker-delimited table.
type Section struct {
	Name string
	sdl  bool
}

// NewSection names a section. It uses backend symbols when name matches
// the configured SDL section exactly.
func NewSection(name string, opts Options) Section {
	opts = opts.withDefaults()
	return Section{Name: name, sdl: name == opts.SDLSection}
}

// IsSDL reports whether the section's values are SDL key symbols.
func (s Section) IsSDL() bool {
	return s.sdl
}

// LineBuffer collects output lines in order. Each line keeps its terminator.
type LineBuffer struct {
	lines []string
}

// Append adds lines to the end of the buffer.
func (b *LineBuffer) Append(lines ...string) {
	b.lines = append(b.lines, lines...)
}

// Lines returns the buffered lines.
func (b *LineBuffer) Lines() []string {
	return b.lines
}

// Len returns the number of buffered lines.
func (b *LineBuffer) Len() int {
	return len(b.lines)
}

// WriteTo writes every line to w.
func (b *LineBuffer) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, line := range b.lines {
		n, err := io.WriteString(w, line)
		total += int64(n)
		if err != nil {
			return total, errors.Wrap(err, "failed to write line")
		}
	}
	return total, nil
}

func ordinalDefinition(key string, ordinal int) string {
	return fmt.Sprintf("#define KEY_%-12s %d\n", key, ordinal)
}

func symbolDefinition(key, symbol string) string {
	return fmt.Sprintf("#define KEY_%-12s K2K(SDLK_%s)\n", key, symbol)
}

// Definition renders one #define line. SDL sections refer to SDLK_<symbol>,
// where an empty symbol means the key name itself; other sections use the
// ordinal.
func Definition(section Section, key string, ordinal int, symbol string) string {
	if section.IsSDL() {
		if symbol == "" {
			symbol = key
		}
		return symbolDefinition(key, symbol)
	}
	return ordinalDefinition(key, ordinal)
}

// AppendSection appends the generated body of section to buf.
func AppendSection(buf *LineBuffer, section Section, opts Options) {
	opts = opts.withDefaults()

	i := 0
	emit := func(key string) {
		buf.Append(Definition(section, key, i, ""))
		i++
	}

	for _, key := range opts.Keys {
		emit(key)
	}
	for _, key := range DigitKeys() {
		emit(key)
	}
	for _, key := range LetterKeys() {
		emit(key)
	}

	keypad := KeypadKeys()
	if section.IsSDL() {
		buf.Append(fmt.Sprintf("#if defined(%s)\n", opts.SDLFlag))
		for d, key := range keypad {
			buf.Append(symbolDefinition(key, fmt.Sprintf("KP_%d", d)))
		}
		buf.Append(symbolDefinition("SCROLLOCK", "SCROLLLOCK"))
		buf.Append("#else\n")
		for _, key := range keypad {
			buf.Append(ordinalDefinition(key, 0))
		}
		buf.Append(ordinalDefinition("SCROLLOCK", i+len(keypad)))
		buf.Append("#endif\n")
		i += len(keypad) + 1
	} else {
		for _, key := range keypad {
			emit(key)
		}
		emit("SCROLLOCK")
	}

	for _, key := range FunctionKeys() {
		emit(key)
	}
}
