package main

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/svenplb/aegis-core/internal/config"
	"github.com/svenplb/aegis-core/internal/loader"
	"github.com/svenplb/aegis-core/internal/pattern"
	"github.com/svenplb/aegis-core/internal/redactor"
	"github.com/svenplb/aegis-core/internal/scanner"
	"github.com/svenplb/aegis-core/internal/verify"
)

// View states.
const (
	stateInput = iota
	stateResults
	stateSettings
	statePatterns
)

var severityOrder = []pattern.Severity{
	pattern.SeverityLow, pattern.SeverityMedium, pattern.SeverityHigh, pattern.SeverityCritical,
}

func severityRank(s pattern.Severity) int {
	for i, sv := range severityOrder {
		if sv == s {
			return i
		}
	}
	return -1
}

// Lipgloss color mapping per match severity.
func severityColor(s pattern.Severity) lipgloss.Color {
	switch s {
	case pattern.SeverityCritical:
		return lipgloss.Color("1") // red
	case pattern.SeverityHigh:
		return lipgloss.Color("5") // magenta
	case pattern.SeverityMedium:
		return lipgloss.Color("3") // yellow
	case pattern.SeverityLow:
		return lipgloss.Color("6") // cyan
	default:
		return lipgloss.Color("8") // dim
	}
}

// Styles.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("7")).
			Background(lipgloss.Color("5")).
			Padding(0, 1)

	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("5")).
			Padding(0, 1).
			Width(45)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("8"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6"))
)

type model struct {
	state    int
	textarea textarea.Model
	viewport viewport.Model
	result   *redactor.RedactResult
	width    int
	height   int
	ready    bool // viewport dimensions set
	scanTime time.Duration

	set      *pattern.Set
	registry *verify.Registry

	patternsViewport viewport.Model
	patternsReady    bool

	// Settings.
	minSeverityIdx int // index into severityOrder; 0 means "no floor"
	allowlist      []string
	settingsFocus  int // 0=severity floor, 1..n=allowlist items
	allowlistInput textinput.Model
	addingPattern  bool
}

func initialModel(set *pattern.Set, registry *verify.Registry) model {
	ta := textarea.New()
	ta.Placeholder = "Paste or type text here..."
	ta.ShowLineNumbers = false
	ta.SetHeight(12)
	ta.SetWidth(70)
	ta.Focus()
	ta.CharLimit = 0 // unlimited

	ti := textinput.New()
	ti.Placeholder = "regex pattern..."
	ti.CharLimit = 200
	ti.Width = 40

	return model{
		state:          stateInput,
		textarea:       ta,
		allowlistInput: ti,
		set:            set,
		registry:       registry,
	}
}

func (m model) Init() tea.Cmd {
	return textarea.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		taWidth := min(msg.Width-4, 80)
		m.textarea.SetWidth(taWidth)

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		if !m.patternsReady {
			m.patternsViewport = viewport.New(msg.Width, msg.Height-6)
			m.patternsReady = true
			m.patternsViewport.SetContent(m.renderPatternsTable())
		} else {
			m.patternsViewport.Width = msg.Width
			m.patternsViewport.Height = msg.Height - 6
		}
		if m.state == stateResults && m.result != nil {
			m.viewport.SetContent(m.renderResults())
		}

	case tea.KeyMsg:
		switch m.state {
		case stateInput:
			switch msg.Type {
			case tea.KeyCtrlC:
				return m, tea.Quit
			case tea.KeyCtrlD:
				return m.doScan()
			case tea.KeyTab:
				m.textarea.Blur()
				m.state = stateSettings
				m.settingsFocus = 0
				return m, nil
			}
		case stateResults:
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "n":
				m.textarea.Reset()
				m.textarea.Focus()
				m.state = stateInput
				m.result = nil
				return m, textarea.Blink
			}
		case stateSettings:
			if msg.Type == tea.KeyTab {
				m.state = statePatterns
				return m, nil
			}
			return m.updateSettings(msg)
		case statePatterns:
			switch msg.Type {
			case tea.KeyCtrlC:
				return m, tea.Quit
			case tea.KeyTab:
				m.textarea.Focus()
				m.state = stateInput
				return m, textarea.Blink
			}
		}
	}

	switch m.state {
	case stateInput:
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
	case stateResults:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	case statePatterns:
		var cmd tea.Cmd
		m.patternsViewport, cmd = m.patternsViewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Adding pattern mode — textinput captures all keys.
	if m.addingPattern {
		switch msg.Type {
		case tea.KeyEnter:
			pat := strings.TrimSpace(m.allowlistInput.Value())
			if pat != "" {
				if _, err := regexp.Compile(pat); err == nil {
					m.allowlist = append(m.allowlist, pat)
				}
			}
			m.allowlistInput.SetValue("")
			m.allowlistInput.Blur()
			m.addingPattern = false
			return m, nil
		case tea.KeyEscape:
			m.allowlistInput.SetValue("")
			m.allowlistInput.Blur()
			m.addingPattern = false
			return m, nil
		case tea.KeyCtrlC:
			return m, tea.Quit
		default:
			var cmd tea.Cmd
			m.allowlistInput, cmd = m.allowlistInput.Update(msg)
			return m, cmd
		}
	}

	// Navigation mode.
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyUp:
		if m.settingsFocus > 0 {
			m.settingsFocus--
		}
	case tea.KeyDown:
		if m.settingsFocus < len(m.allowlist) {
			m.settingsFocus++
		}
	case tea.KeyLeft:
		if m.settingsFocus == 0 && m.minSeverityIdx > 0 {
			m.minSeverityIdx--
		}
	case tea.KeyRight:
		if m.settingsFocus == 0 && m.minSeverityIdx < len(severityOrder)-1 {
			m.minSeverityIdx++
		}
	}

	switch msg.String() {
	case "a":
		m.addingPattern = true
		m.allowlistInput.Focus()
		return m, textinput.Blink
	case "d", "x":
		if m.settingsFocus >= 1 && m.settingsFocus-1 < len(m.allowlist) {
			idx := m.settingsFocus - 1
			m.allowlist = append(m.allowlist[:idx], m.allowlist[idx+1:]...)
			if m.settingsFocus > len(m.allowlist) {
				m.settingsFocus = max(0, len(m.allowlist))
			}
		}
	}

	return m, nil
}

func (m model) doScan() (tea.Model, tea.Cmd) {
	text := m.textarea.Value()
	if strings.TrimSpace(text) == "" {
		return m, nil
	}

	var allowlist []*regexp.Regexp
	for _, pat := range m.allowlist {
		if re, err := regexp.Compile(pat); err == nil {
			allowlist = append(allowlist, re)
		}
	}

	start := time.Now()
	matches := scanner.Scan(m.set, text, scanner.Options{Registry: m.registry})

	var filtered []scanner.Match
	for _, match := range matches {
		if severityRank(match.Policy.Severity) < m.minSeverityIdx {
			continue
		}
		allowed := false
		for _, re := range allowlist {
			if re.MatchString(match.Text) {
				allowed = true
				break
			}
		}
		if !allowed {
			filtered = append(filtered, match)
		}
	}

	result := redactor.Redact(text, filtered)
	m.scanTime = time.Since(start)

	m.result = &result
	m.state = stateResults
	m.textarea.Blur()

	if m.ready {
		m.viewport.SetContent(m.renderResults())
		m.viewport.GotoTop()
	}

	return m, nil
}

func (m model) severityDesc() string {
	if m.minSeverityIdx == 0 {
		return "all severities"
	}
	return "≥ " + string(severityOrder[m.minSeverityIdx])
}

func (m model) renderAnnotated() string {
	text := m.result.OriginalText
	matches := m.result.Matches

	sorted := make([]scanner.Match, len(matches))
	copy(sorted, matches)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	var b strings.Builder
	pos := 0
	for _, match := range sorted {
		if match.Start < pos {
			continue // skip overlapping
		}
		if match.Start > pos {
			b.WriteString(text[pos:match.Start])
		}
		clr := severityColor(match.Policy.Severity)
		highlighted := lipgloss.NewStyle().
			Foreground(clr).
			Bold(true).
			Underline(true).
			Render(match.Text)
		tag := lipgloss.NewStyle().
			Foreground(clr).
			Render("⟨" + match.PatternID + "⟩")
		b.WriteString(highlighted + tag)
		pos = match.End
	}
	if pos < len(text) {
		b.WriteString(text[pos:])
	}

	return b.String()
}

func (m model) renderResults() string {
	if m.result == nil {
		return ""
	}

	var b strings.Builder
	r := m.result

	b.WriteString(sectionStyle.Render("─── ANNOTATED ") + sectionStyle.Render(strings.Repeat("─", max(m.width-16, 20))))
	b.WriteString("\n")
	b.WriteString(m.renderAnnotated())
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("─── SANITIZED ") + sectionStyle.Render(strings.Repeat("─", max(m.width-16, 20))))
	b.WriteString("\n")
	b.WriteString(r.SanitizedText)
	b.WriteString("\n\n")

	if len(r.Mappings) > 0 {
		b.WriteString(sectionStyle.Render("─── MAPPINGS ") + sectionStyle.Render(strings.Repeat("─", max(m.width-15, 20))))
		b.WriteString("\n")

		maxToken, maxOrig := 0, 0
		for _, mp := range r.Mappings {
			if len(mp.Token) > maxToken {
				maxToken = len(mp.Token)
			}
			if len(mp.Original) > maxOrig {
				maxOrig = len(mp.Original)
			}
		}

		severityByID := make(map[string]pattern.Severity, len(r.Matches))
		for _, match := range r.Matches {
			severityByID[match.PatternID] = match.Policy.Severity
		}

		for _, mp := range r.Mappings {
			clr := severityColor(severityByID[mp.PatternID])
			tokenStyled := lipgloss.NewStyle().Foreground(clr).Bold(true).Render(mp.Token)
			idStyled := lipgloss.NewStyle().Foreground(clr).Render(mp.PatternID)

			tokenPad := strings.Repeat(" ", maxToken-len(mp.Token))
			origPad := strings.Repeat(" ", maxOrig-len(mp.Original))

			b.WriteString(fmt.Sprintf("  %s%s    %s%s    %s\n",
				tokenStyled, tokenPad,
				mp.Original, origPad,
				idStyled))
		}
		b.WriteString("\n")
	}

	idCounts := make(map[string]int)
	for _, match := range r.Matches {
		idCounts[match.PatternID]++
	}

	if len(idCounts) > 0 {
		b.WriteString(sectionStyle.Render("─── STATISTICS ") + sectionStyle.Render(strings.Repeat("─", max(m.width-17, 20))))
		b.WriteString("\n")

		type idStat struct {
			name  string
			count int
		}
		var stats []idStat
		maxCount := 0
		for name, count := range idCounts {
			stats = append(stats, idStat{name, count})
			if count > maxCount {
				maxCount = count
			}
		}
		sort.Slice(stats, func(i, j int) bool {
			return stats[i].count > stats[j].count
		})

		severityByID := make(map[string]pattern.Severity, len(r.Matches))
		for _, match := range r.Matches {
			severityByID[match.PatternID] = match.Policy.Severity
		}

		maxBarWidth := 20
		maxName := 0
		for _, s := range stats {
			if len(s.name) > maxName {
				maxName = len(s.name)
			}
		}

		for _, s := range stats {
			clr := severityColor(severityByID[s.name])
			barLen := s.count * maxBarWidth / maxCount
			if barLen < 1 {
				barLen = 1
			}
			bar := lipgloss.NewStyle().Foreground(clr).Render(strings.Repeat("█", barLen))
			namePad := strings.Repeat(" ", maxName-len(s.name))
			nameStyled := lipgloss.NewStyle().Foreground(clr).Bold(true).Render(s.name)
			b.WriteString(fmt.Sprintf("  %s%s  %d  %s\n", nameStyled, namePad, s.count, bar))
		}
	}

	return b.String()
}

// renderPatternsTable lists every loaded pattern, grouped by namespace,
// for manually probing which patterns/verifiers are active.
func (m model) renderPatternsTable() string {
	if m.set == nil {
		return dimStyle.Render("  (no patterns loaded)")
	}

	patterns := m.set.All()
	sorted := make([]*pattern.Pattern, len(patterns))
	copy(sorted, patterns)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Namespace != sorted[j].Namespace {
			return sorted[i].Namespace < sorted[j].Namespace
		}
		return sorted[i].ID < sorted[j].ID
	})

	var b strings.Builder
	lastNamespace := ""
	for _, p := range sorted {
		if p.Namespace != lastNamespace {
			b.WriteString("\n" + activeStyle.Render(p.Namespace) + "\n")
			lastNamespace = p.Namespace
		}
		clr := severityColor(p.Policy.Severity)
		verifier := p.VerifierName
		if verifier == "" {
			verifier = dimStyle.Render("(none)")
		}
		b.WriteString(fmt.Sprintf("  %s  %-24s  %-10s  %-8s  verifier=%s\n",
			lipgloss.NewStyle().Foreground(clr).Bold(true).Render(string(p.Policy.Severity)),
			p.ID, p.Category, p.Location, verifier))
	}
	return b.String()
}

func (m model) View() string {
	switch m.state {
	case stateInput:
		return m.viewInput()
	case stateResults:
		return m.viewResults()
	case stateSettings:
		return m.viewSettings()
	case statePatterns:
		return m.viewPatterns()
	}
	return ""
}

func (m model) viewInput() string {
	header := headerBoxStyle.Render(titleStyle.Render("aegis") + " — PII Scanner")

	var settingsInfo string
	if m.minSeverityIdx > 0 || len(m.allowlist) > 0 {
		var parts []string
		if m.minSeverityIdx > 0 {
			parts = append(parts, "min-severity:"+string(severityOrder[m.minSeverityIdx]))
		}
		if len(m.allowlist) > 0 {
			parts = append(parts, fmt.Sprintf("allowlist:%d", len(m.allowlist)))
		}
		settingsInfo = "\n" + dimStyle.Render("  "+strings.Join(parts, "  "))
	}

	help := helpStyle.Render("  Ctrl+D scan  •  Tab settings  •  Ctrl+C quit")

	return fmt.Sprintf("\n%s%s\n\n%s\n\n%s\n", header, settingsInfo, m.textarea.View(), help)
}

func (m model) viewResults() string {
	if m.result == nil {
		return ""
	}

	matchCount := len(m.result.Matches)
	ms := m.scanTime.Milliseconds()

	headerText := fmt.Sprintf("%s — %d matches found (%dms)",
		titleStyle.Render("aegis"), matchCount, ms)
	header := headerBoxStyle.Render(headerText)

	help := helpStyle.Render("  n new scan  •  q quit")

	return fmt.Sprintf("\n%s\n\n%s\n\n%s\n", header, m.viewport.View(), help)
}

func (m model) viewSettings() string {
	var b strings.Builder

	header := headerBoxStyle.Render(titleStyle.Render("aegis") + " — Settings")
	b.WriteString("\n" + header + "\n\n")

	desc := m.severityDesc()

	if m.settingsFocus == 0 {
		b.WriteString(fmt.Sprintf("  %s  %s   ◂ %s ▸\n",
			activeStyle.Render("▸"),
			lipgloss.NewStyle().Bold(true).Render("Minimum Severity"),
			valueStyle.Render(desc)))
	} else {
		b.WriteString(fmt.Sprintf("     %s     %s\n",
			"Minimum Severity",
			dimStyle.Render(desc)))
	}

	b.WriteString("\n")

	b.WriteString("  " + lipgloss.NewStyle().Bold(true).Render("Allowlist Patterns") + "\n")

	if m.addingPattern {
		b.WriteString("    " + m.allowlistInput.View() + "\n")
	}

	if len(m.allowlist) == 0 && !m.addingPattern {
		b.WriteString("    " + dimStyle.Render("(no patterns — press a to add)") + "\n")
	}

	for i, pat := range m.allowlist {
		if m.settingsFocus == i+1 {
			b.WriteString(fmt.Sprintf("    %s %s\n",
				activeStyle.Render("▸"),
				valueStyle.Render(pat)))
		} else {
			b.WriteString(fmt.Sprintf("      %s\n", dimStyle.Render(pat)))
		}
	}

	b.WriteString("\n")

	var helpParts []string
	helpParts = append(helpParts, "Tab patterns")
	helpParts = append(helpParts, "↑↓ navigate")
	if m.settingsFocus == 0 {
		helpParts = append(helpParts, "←→ severity")
	}
	if !m.addingPattern {
		helpParts = append(helpParts, "a add pattern")
	}
	if m.settingsFocus >= 1 && len(m.allowlist) > 0 {
		helpParts = append(helpParts, "d delete")
	}
	b.WriteString(helpStyle.Render("  " + strings.Join(helpParts, "  •  ")) + "\n")

	return b.String()
}

func (m model) viewPatterns() string {
	count := 0
	if m.set != nil {
		count = len(m.set.All())
	}
	headerText := fmt.Sprintf("%s — %d patterns loaded", titleStyle.Render("aegis"), count)
	header := headerBoxStyle.Render(headerText)

	help := helpStyle.Render("  ↑↓ scroll  •  Tab back to input  •  Ctrl+C quit")

	return fmt.Sprintf("\n%s\n\n%s\n\n%s\n", header, m.patternsViewport.View(), help)
}

func main() {
	packs, err := config.BuiltinPatternPacks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error locating built-in pattern packs: %v\n", err)
		os.Exit(1)
	}

	registry := verify.Default()
	set, err := loader.LoadPatterns(packs, loader.Options{Registry: registry})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading patterns: %v\n", err)
		os.Exit(1)
	}

	m := initialModel(set, registry)
	m.patternsViewport = viewport.New(0, 0)
	m.patternsViewport.SetContent(m.renderPatternsTable())

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
