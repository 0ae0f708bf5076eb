package redactor

import (
	"fmt"
	"strings"
)

// Counter assigns incrementing placeholder tokens per mask template.
// If the same original text is seen again, the previously assigned token is
// reused.
type Counter struct {
	counts map[string]int
	seen   map[string]string // original text → token
}

// NewCounter returns a ready-to-use Counter.
func NewCounter() *Counter {
	return &Counter{
		counts: make(map[string]int),
		seen:   make(map[string]string),
	}
}

// Next returns a placeholder token for the given mask template and original
// text. Repeated calls with the same originalText return the same token. A
// mask of "[IBAN]" numbers as "[IBAN_1]", "[IBAN_2]", ...; a mask with no
// trailing "]" gets "_N" appended instead.
func (c *Counter) Next(mask, originalText string) string {
	if tok, ok := c.seen[originalText]; ok {
		return tok
	}
	c.counts[mask]++
	n := c.counts[mask]

	var tok string
	if strings.HasSuffix(mask, "]") {
		tok = fmt.Sprintf("%s_%d]", strings.TrimSuffix(mask, "]"), n)
	} else {
		tok = fmt.Sprintf("%s_%d", mask, n)
	}
	c.seen[originalText] = tok
	return tok
}
