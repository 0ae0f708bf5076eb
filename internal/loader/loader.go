// Package loader decodes declarative YAML pattern files into an
// executable internal/pattern.Set, validating and compiling each entry
// against the verifier registry and the linear-time regex engine.
package loader

import (
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/svenplb/aegis-core/internal/pattern"
	"github.com/svenplb/aegis-core/internal/verify"
)

// fileSpec is the top-level shape of one pattern file.
type fileSpec struct {
	Namespace   string        `yaml:"namespace"`
	Description string        `yaml:"description"`
	Patterns    []patternSpec `yaml:"patterns"`
}

type patternSpec struct {
	ID           string       `yaml:"id"`
	Location     string       `yaml:"location"`
	Category     string       `yaml:"category"`
	Description  string       `yaml:"description"`
	Pattern      string       `yaml:"pattern"`
	Flags        []string     `yaml:"flags"`
	Verification string       `yaml:"verification"`
	Mask         string       `yaml:"mask"`
	Policy       policySpec   `yaml:"policy"`
	Examples     examplesSpec `yaml:"examples"`
}

type policySpec struct {
	Severity string `yaml:"severity"`
	Action   string `yaml:"action_on_match"`
}

type examplesSpec struct {
	Match   []string `yaml:"match"`
	NoMatch []string `yaml:"nomatch"`
}

var idPattern = regexp.MustCompile(`^[a-z0-9_\-]+$`)

// Options configures LoadPatterns beyond its required path list.
type Options struct {
	// Registry is the verifier registry consulted to resolve each
	// pattern's `verification` name. Defaults to verify.Default().
	Registry *verify.Registry
}

// LoadPatterns reads and validates every pattern file in paths, in
// order, and returns the combined pattern.Set. The first invalid
// pattern — bad schema, duplicate ID, unresolved verifier name, or
// regex compile failure — aborts the whole call with a *LoadError; there
// is no partial result.
func LoadPatterns(paths []string, opts Options) (*pattern.Set, error) {
	registry := opts.Registry
	if registry == nil {
		registry = verify.Default()
	}

	seenIDs := make(map[string]string) // id -> path that defined it
	var all []*pattern.Pattern

	for _, path := range paths {
		spec, err := readFileSpec(path)
		if err != nil {
			return nil, err
		}

		for _, ps := range spec.Patterns {
			p, err := compilePatternSpec(path, spec.Namespace, ps, registry)
			if err != nil {
				return nil, err
			}

			if owner, dup := seenIDs[p.ID]; dup {
				return nil, loadErrorf(path, p.ID, "duplicate pattern id, first defined in %s", owner)
			}
			seenIDs[p.ID] = path

			all = append(all, p)
		}
	}

	return pattern.NewSet(all), nil
}

func readFileSpec(path string) (*fileSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, loadErrorf(path, "", "read file: %v", err)
	}

	var spec fileSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, loadErrorf(path, "", "parse yaml: %v", err)
	}
	return &spec, nil
}

func compilePatternSpec(path, namespace string, ps patternSpec, registry *verify.Registry) (*pattern.Pattern, error) {
	if ps.ID == "" || ps.Location == "" || ps.Category == "" || ps.Description == "" || ps.Pattern == "" || ps.Mask == "" {
		return nil, loadErrorf(path, ps.ID, "missing required field (id, location, category, description, pattern, mask)")
	}
	if !idPattern.MatchString(ps.ID) {
		return nil, loadErrorf(path, ps.ID, "id %q does not match ^[a-z0-9_-]+$", ps.ID)
	}

	severity := pattern.Severity(ps.Policy.Severity)
	if !severity.Valid() {
		return nil, loadErrorf(path, ps.ID, "invalid policy.severity %q", ps.Policy.Severity)
	}
	action := pattern.Action(ps.Policy.Action)
	if !action.Valid() {
		return nil, loadErrorf(path, ps.ID, "invalid policy.action_on_match %q", ps.Policy.Action)
	}

	if ps.Verification != "" {
		if _, ok := registry.Lookup(ps.Verification); !ok {
			return nil, loadErrorf(path, ps.ID, "verification %q does not resolve in the registry", ps.Verification)
		}
	}

	folded, re, err := compileOne(ps.Pattern, ps.Flags)
	if err != nil {
		return nil, loadErrorf(path, ps.ID, "compile pattern: %v", err)
	}

	return &pattern.Pattern{
		ID:           ps.ID,
		Namespace:    namespace,
		Location:     ps.Location,
		Category:     ps.Category,
		Description:  ps.Description,
		Source:       folded,
		Regex:        re,
		VerifierName: ps.Verification,
		Policy: pattern.Policy{
			Severity: severity,
			Action:   action,
		},
		Mask: ps.Mask,
		Examples: pattern.Examples{
			Match:   ps.Examples.Match,
			NoMatch: ps.Examples.NoMatch,
		},
	}, nil
}
