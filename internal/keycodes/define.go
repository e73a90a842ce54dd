package keycodes

import (
	"bufio"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

var defineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Directive", Pattern: `#[a-z]+`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[(),|&!<>=]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

type directiveLine struct {
	Define *defineLine    `  @@`
	Cond   *conditionLine `| @@`
}

type defineLine struct {
	Name  string       `"#define" @Ident`
	Value *defineValue `@@`
}

type defineValue struct {
	Ordinal *int    `  @Int`
	Symbol  *string `| "K2K" "(" @Ident ")"`
}

type conditionLine struct {
	Directive string   `@Directive`
	Args      []string `@(Ident | Int | Punct)*`
}

var directiveParser = participle.MustBuild[directiveLine](
	participle.Lexer(defineLexer),
	participle.Elide("Whitespace"),
)

// Define is one generated definition read back from a header.
type Define struct {
	Key     string // Key name without the KEY_ prefix
	Ordinal int    // Value of an ordinal definition
	Symbol  string // Backend symbol of a K2K(...) definition, empty otherwise
	Branch  string // "if" or "else" inside a preprocessor conditional, empty otherwise
}

// Symbolic reports whether the definition refers to a backend symbol.
func (d Define) Symbolic() bool {
	return d.Symbol != ""
}

// SectionTable is the content of one section as found in a header.
type SectionTable struct {
	Name       string
	Defines    []Define
	Conditions []string // Preprocessor lines in order, e.g. "#if defined(USE_SDL)"
	Terminated bool
}

// Ordinals maps each unconditional ordinal key to its value.
func (t SectionTable) Ordinals() map[string]int {
	m := make(map[string]int)
	for _, d := range t.Defines {
		if d.Branch == "" && !d.Symbolic() {
			m[d.Key] = d.Ordinal
		}
	}
	return m
}

// MaxOrdinal returns the largest ordinal in the table, or -1 if it has none.
func (t SectionTable) MaxOrdinal() int {
	hi := -1
	for _, d := range t.Defines {
		if !d.Symbolic() && d.Ordinal > hi {
			hi = d.Ordinal
		}
	}
	return hi
}

// ParseDefinition parses a single "#define KEY_<NAME> <value>" line.
func ParseDefinition(line string) (*Define, error) {
	dl, err := directiveParser.ParseString("", line)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid definition %q", strings.TrimSpace(line))
	}
	if dl.Define == nil {
		return nil, errors.Errorf("not a definition: %q", strings.TrimSpace(line))
	}
	return toDefine(dl.Define)
}

func toDefine(dl *defineLine) (*Define, error) {
	key, ok := strings.CutPrefix(dl.Name, "KEY_")
	if !ok {
		return nil, errors.Errorf("definition %s does not start with KEY_", dl.Name)
	}
	d := &Define{Key: key}
	if dl.Value.Ordinal != nil {
		d.Ordinal = *dl.Value.Ordinal
	}
	if dl.Value.Symbol != nil {
		d.Symbol = *dl.Value.Symbol
	}
	return d, nil
}

// Inspect reads the sections of a header without modifying anything.
func Inspect(r io.Reader) ([]SectionTable, error) {
	var tables []SectionTable
	var cur *SectionTable
	branch := ""

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if cur == nil {
			if strings.HasPrefix(line, StartMarker) {
				tables = append(tables, SectionTable{Name: strings.TrimSpace(line[len(StartMarker):])})
				cur = &tables[len(tables)-1]
				branch = ""
			}
			continue
		}
		if strings.HasPrefix(line, EndMarker) {
			cur.Terminated = true
			cur = nil
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		dl, err := directiveParser.ParseString("", line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		if dl.Cond != nil {
			switch dl.Cond.Directive {
			case "#if", "#ifdef", "#ifndef":
				branch = "if"
			case "#else", "#elif":
				branch = "else"
			case "#endif":
				branch = ""
			}
			cur.Conditions = append(cur.Conditions, strings.TrimSpace(line))
			continue
		}
		d, err := toDefine(dl.Define)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		d.Branch = branch
		cur.Defines = append(cur.Defines, *d)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan header")
	}
	return tables, nil
}
