package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/svenplb/aegis-core/internal/config"
	"github.com/svenplb/aegis-core/internal/loader"
	"github.com/svenplb/aegis-core/internal/redactor"
	"github.com/svenplb/aegis-core/internal/scanner"
)

func main() {
	os.Exit(run())
}

func run() int {
	textFlag := flag.String("text", "", "inline text to scan")
	fileFlag := flag.String("file", "", "path to file to scan")
	configFlag := flag.String("config", "", "path to config YAML file")
	jsonFlag := flag.Bool("json", false, "output structured JSON")
	flag.Parse()

	text, err := readInput(*textFlag, *fileFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	var cfg *config.Config
	if *configFlag != "" {
		cfg, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
			return 2
		}
	} else {
		cfg = config.DefaultConfig()
	}

	allowlist, err := cfg.CompileAllowlist()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error compiling allowlist: %v\n", err)
		return 2
	}

	packs, err := config.BuiltinPatternPacks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error locating built-in pattern packs: %v\n", err)
		return 2
	}
	packs = append(packs, cfg.Scanner.PatternPacks...)

	set, err := loader.LoadPatterns(packs, loader.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading patterns: %v\n", err)
		return 2
	}

	matches := scanner.Scan(set, text, scanner.Options{Location: cfg.Scanner.Location})
	matches = dropAllowlisted(matches, allowlist)

	result := redactor.Redact(text, matches)

	if *jsonFlag {
		return outputJSON(result)
	}
	return outputPretty(result, isTerminal())
}

func dropAllowlisted(matches []scanner.Match, allowlist []*regexp.Regexp) []scanner.Match {
	if len(allowlist) == 0 {
		return matches
	}
	var kept []scanner.Match
	for _, m := range matches {
		allowed := false
		for _, re := range allowlist {
			if re.MatchString(m.Text) {
				allowed = true
				break
			}
		}
		if !allowed {
			kept = append(kept, m)
		}
	}
	return kept
}

func readInput(textFlag, fileFlag string) (string, error) {
	switch {
	case textFlag != "":
		return textFlag, nil
	case fileFlag != "":
		data, err := os.ReadFile(fileFlag)
		if err != nil {
			return "", fmt.Errorf("reading file: %w", err)
		}
		return string(data), nil
	default:
		stat, err := os.Stdin.Stat()
		if err != nil {
			return "", fmt.Errorf("checking stdin: %w", err)
		}
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return "", fmt.Errorf("no input provided (use --text, --file, or pipe to stdin)")
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
}

func isTerminal() bool {
	stat, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

func outputJSON(result redactor.RedactResult) int {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "error encoding JSON: %v\n", err)
		return 2
	}
	if len(result.Matches) > 0 {
		return 1
	}
	return 0
}

// ANSI color codes.
const (
	colorReset   = "\033[0m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
	colorBold    = "\033[1m"
	colorDim     = "\033[2m"
)

func severityColor(s string) string {
	switch s {
	case "critical":
		return colorRed
	case "high":
		return colorMagenta
	case "medium":
		return colorYellow
	case "low":
		return colorCyan
	default:
		return colorDim
	}
}

func outputPretty(result redactor.RedactResult, useColor bool) int {
	matchCount := len(result.Matches)

	header := fmt.Sprintf("─── ORIGINAL (%d matches found) ", matchCount)
	header += strings.Repeat("─", max(0, 56-len(header)))

	if useColor {
		fmt.Printf("%s%s%s\n", colorBold, header, colorReset)
	} else {
		fmt.Println(header)
	}

	if useColor && matchCount > 0 {
		fmt.Println(highlightMatches(result.OriginalText, result.Matches))
	} else {
		fmt.Println(result.OriginalText)
	}

	fmt.Println()
	sanitizedHeader := "─── SANITIZED " + strings.Repeat("─", 42)
	if useColor {
		fmt.Printf("%s%s%s\n", colorBold, sanitizedHeader, colorReset)
	} else {
		fmt.Println(sanitizedHeader)
	}
	fmt.Println(result.SanitizedText)

	if matchCount > 0 {
		fmt.Println()
		statsHeader := "─── STATISTICS " + strings.Repeat("─", 41)
		if useColor {
			fmt.Printf("%s%s%s\n", colorBold, statsHeader, colorReset)
		} else {
			fmt.Println(statsHeader)
		}
		fmt.Printf("Replaced: %d\n\n", matchCount)

		idCounts := make(map[string]int)
		for _, m := range result.Matches {
			idCounts[m.PatternID]++
		}

		ids := make([]string, 0, len(idCounts))
		for id := range idCounts {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		severityByID := make(map[string]string, len(result.Matches))
		for _, m := range result.Matches {
			severityByID[m.PatternID] = string(m.Policy.Severity)
		}

		fmt.Printf("  %-22s %s\n", "Pattern", "Count")
		for _, id := range ids {
			if useColor {
				fmt.Printf("  %s%-22s%s %d\n", severityColor(severityByID[id]), id, colorReset, idCounts[id])
			} else {
				fmt.Printf("  %-22s %d\n", id, idCounts[id])
			}
		}
	}

	fmt.Println()

	if matchCount > 0 {
		return 1
	}
	return 0
}

func highlightMatches(text string, matches []scanner.Match) string {
	if len(matches) == 0 {
		return text
	}

	sorted := make([]scanner.Match, len(matches))
	copy(sorted, matches)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	var buf strings.Builder
	lastEnd := 0
	for _, m := range sorted {
		if m.Start < lastEnd {
			continue // skip overlapping
		}
		buf.WriteString(text[lastEnd:m.Start])
		buf.WriteString(severityColor(string(m.Policy.Severity)))
		buf.WriteString(colorBold)
		buf.WriteString(text[m.Start:m.End])
		buf.WriteString(colorReset)
		lastEnd = m.End
	}
	buf.WriteString(text[lastEnd:])
	return buf.String()
}
