package loader

import (
	"strings"

	"github.com/coregx/coregex"

	"github.com/svenplb/aegis-core/internal/pattern"
)

// foldFlags decodes the schema's flag tokens into RE2 inline groups
// (`(?i)`, `(?m)`, `(?s)`), matching the teacher's own use of `(?i)`
// prefixes in patterns.go. VERBOSE has no RE2 inline-group equivalent
// (RE2 syntax has no `x` flag), so it's handled by stripping unescaped
// whitespace and `#`-comments from the source before compilation, the
// same preprocessing Python's re.VERBOSE performs.
func foldFlags(source string, flags []string) (string, error) {
	var prefix strings.Builder
	verbose := false

	for _, f := range flags {
		switch strings.ToUpper(f) {
		case "IGNORECASE":
			prefix.WriteString("i")
		case "MULTILINE":
			prefix.WriteString("m")
		case "DOTALL":
			prefix.WriteString("s")
		case "VERBOSE":
			verbose = true
		default:
			return "", unknownFlagError(f)
		}
	}

	if verbose {
		source = stripVerbose(source)
	}

	if prefix.Len() == 0 {
		return source, nil
	}
	return "(?" + prefix.String() + ")" + source, nil
}

type unknownFlagError string

func (e unknownFlagError) Error() string { return "unknown flag: " + string(e) }

// stripVerbose removes unescaped whitespace and `#`-to-end-of-line
// comments from a regex source, mirroring re.VERBOSE's preprocessing
// since RE2 has no native verbose/extended mode.
func stripVerbose(source string) string {
	var out strings.Builder
	inClass := false
	escaped := false

	for i := 0; i < len(source); i++ {
		c := source[i]
		if escaped {
			out.WriteByte('\\')
			out.WriteByte(c)
			escaped = false
			continue
		}
		switch c {
		case '\\':
			escaped = true
		case '[':
			inClass = true
			out.WriteByte(c)
		case ']':
			inClass = false
			out.WriteByte(c)
		case '#':
			if inClass {
				out.WriteByte(c)
				continue
			}
			for i < len(source) && source[i] != '\n' {
				i++
			}
		case ' ', '\t', '\n', '\r':
			if inClass {
				out.WriteByte(c)
			}
		default:
			out.WriteByte(c)
		}
	}
	if escaped {
		out.WriteByte('\\')
	}
	return out.String()
}

// compileOne folds flags and compiles the resulting source through the
// shared pattern regex engine, returning the folded source (kept on the
// Pattern for diagnostics) alongside the compiled handle.
func compileOne(source string, flags []string) (folded string, re *coregex.Regex, err error) {
	folded, err = foldFlags(source, flags)
	if err != nil {
		return "", nil, err
	}
	re, err = pattern.CompileRegex(folded)
	if err != nil {
		return "", nil, err
	}
	return folded, re, nil
}
