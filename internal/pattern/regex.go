package pattern

import "github.com/coregx/coregex"

// CompileRegex compiles source through coregex, the RE2-class engine
// patterns are required to use (ReDoS-free by construction, no
// backreferences or arbitrary lookaround).
func CompileRegex(source string) (*coregex.Regex, error) {
	return coregex.Compile(source)
}

// FindAllSubmatchIndex returns the index quadruple (match span, plus any
// capture group spans) for every non-overlapping match of re in input,
// left to right. coregex.Regex has no built-in FindAll combinator that
// also reports submatch indices, so this reimplements it the way
// coregex's own internal meta.Engine.FindAllSubmatch does: repeated
// single-match calls against an advancing search offset, nudging forward
// by one byte past a zero-length match to guarantee progress.
func FindAllSubmatchIndex(re *coregex.Regex, input string) [][]int {
	var all [][]int
	offset := 0

	for offset <= len(input) {
		idx := re.FindStringSubmatchIndex(input[offset:])
		if idx == nil {
			break
		}

		shifted := make([]int, len(idx))
		for i, v := range idx {
			if v < 0 {
				shifted[i] = -1
			} else {
				shifted[i] = v + offset
			}
		}
		all = append(all, shifted)

		if shifted[1] > shifted[0] {
			offset = shifted[1]
		} else {
			offset = shifted[1] + 1
		}
	}

	return all
}
