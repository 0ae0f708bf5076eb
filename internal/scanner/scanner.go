// Package scanner dispatches a compiled pattern set against input text,
// running each pattern's verifier over every regex candidate and
// emitting the survivors as Match records.
package scanner

import (
	"fmt"
	"sort"

	"golang.org/x/text/unicode/norm"

	"github.com/svenplb/aegis-core/internal/applog"
	"github.com/svenplb/aegis-core/internal/pattern"
	"github.com/svenplb/aegis-core/internal/verify"
)

// Options configures a Scan call beyond its required set and input.
type Options struct {
	// Location restricts dispatch to patterns tagged with this location;
	// empty means every pattern in the set runs.
	Location string
	// Registry resolves each pattern's VerifierName. Defaults to
	// verify.Default(). A scan snapshots the registry pointer once up
	// front, so a concurrent Unregister cannot invalidate an in-flight
	// verifier call.
	Registry *verify.Registry
}

// Scan runs every pattern whose location tag matches opts.Location (all
// of them, if unset) against input, NFC-normalizing first. For each
// pattern: find-all in left-to-right, non-overlapping order, then drop
// any candidate whose named verifier returns false. Matches from
// different patterns are not deduplicated against each other — overlap
// resolution across patterns is the caller's policy — but within a
// single call matches are emitted in non-decreasing Start order.
//
// A panic inside a pattern's regex or verifier is recovered, logged
// with the pattern id and a bounded excerpt of the offending substring,
// and that single candidate is dropped; the scan continues.
func Scan(set *pattern.Set, input string, opts Options) []Match {
	input = norm.NFC.String(input)

	registry := opts.Registry
	if registry == nil {
		registry = verify.Default()
	}

	patterns := set.ForLocation(opts.Location)
	var all []Match
	for _, p := range patterns {
		all = append(all, scanOne(p, input, registry)...)
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].Start < all[j].Start })
	return all
}

func scanOne(p *pattern.Pattern, input string, registry *verify.Registry) (matches []Match) {
	defer func() {
		if r := recover(); r != nil {
			applog.Default().Errorf("scanner: pattern %q panicked: %v", p.ID, r)
			matches = nil
		}
	}()

	var verifier verify.Func
	if p.VerifierName != "" {
		fn, ok := registry.Lookup(p.VerifierName)
		if !ok {
			applog.Default().Errorf("scanner: pattern %q: verifier %q not registered, skipping", p.ID, p.VerifierName)
			return nil
		}
		verifier = fn
	}

	for _, idx := range pattern.FindAllSubmatchIndex(p.Regex, input) {
		start, end := idx[0], idx[1]
		text := input[start:end]

		if verifier != nil {
			ok, panicked := runVerifier(verifier, text)
			if panicked {
				applog.Default().Errorf("scanner: pattern %q: verifier %q panicked on %q, dropping candidate", p.ID, p.VerifierName, excerpt(text))
				continue
			}
			if !ok {
				continue
			}
		}

		matches = append(matches, Match{
			PatternID: p.ID,
			Start:     start,
			End:       end,
			Text:      text,
			Policy:    p.Policy,
			Mask:      p.Mask,
		})
	}
	return matches
}

// runVerifier calls fn, recovering a panic into (false, true) so a
// single misbehaving verifier drops one candidate instead of the whole
// scan.
func runVerifier(fn verify.Func, text string) (ok, panicked bool) {
	defer func() {
		if recover() != nil {
			ok, panicked = false, true
		}
	}()
	return fn(text), false
}

const excerptLimit = 64

func excerpt(s string) string {
	if len(s) <= excerptLimit {
		return s
	}
	return fmt.Sprintf("%s...(%d bytes)", s[:excerptLimit], len(s))
}
