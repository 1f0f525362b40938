package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/aiswe-dev/aiswe/pkg/models"
)

// Dashboard panel indices.
const (
	panelChallenges = iota
	panelRoadmap
	panelReadiness
	panelCount
)

type dashboardModel struct {
	activePanel int
	width       int
	height      int

	// Data.
	challenges []challengeRow
	roadmap    *roadmapSnapshot
	readiness  *readinessSnapshot

	// State.
	loading bool
	err     error
}

type challengeRow struct {
	name     string
	severity models.SeverityLevel
	impact   float64
}

type roadmapSnapshot struct {
	buckets   []bucketCount
	quickWins []string
}

type bucketCount struct {
	label string
	count int
}

type readinessSnapshot struct {
	rows    []readinessRow
	overall float64
	grade   string
}

type readinessRow struct {
	category string
	score    float64
}

// dataLoadedMsg carries loaded data back to the model.
type dataLoadedMsg struct {
	challenges []challengeRow
	roadmap    *roadmapSnapshot
	readiness  *readinessSnapshot
	err        error
}

// Style definitions.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62")).
				Padding(1, 2)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			MarginBottom(1)

	severityCritical = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	severityHigh     = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	severityMedium   = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	severityLow      = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))

	gradeGood = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	gradePoor = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func newDashboardModel() dashboardModel {
	return dashboardModel{
		activePanel: panelChallenges,
		loading:     true,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return loadDashboardData
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.activePanel = (m.activePanel + 1) % panelCount
			return m, nil
		case "shift+tab":
			m.activePanel = (m.activePanel - 1 + panelCount) % panelCount
			return m, nil
		case "r":
			m.loading = true
			return m, loadDashboardData
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dataLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.challenges = msg.challenges
		m.roadmap = msg.roadmap
		m.readiness = msg.readiness
		m.err = nil
		return m, nil
	}

	return m, nil
}

func (m dashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	title := titleStyle.Render(" AI-SWE Dashboard ")
	help := helpStyle.Render("tab: switch panel | r: refresh | q: quit")

	if m.loading {
		return fmt.Sprintf("%s\n\n  Loading catalog...\n\n%s", title, help)
	}

	if m.err != nil {
		return fmt.Sprintf("%s\n\n  Error: %s\n\n%s", title, m.err, help)
	}

	challengesPanel := m.renderChallengesPanel()
	roadmapPanel := m.renderRoadmapPanel()
	readinessPanel := m.renderReadinessPanel()

	// Available width for panels after accounting for margins.
	availableWidth := m.width - 2

	var body string
	if availableWidth > 150 {
		// Horizontal layout: three columns.
		colWidth := availableWidth / 3
		challengesPanel = m.applyPanelStyle(panelChallenges, challengesPanel, colWidth-4)
		roadmapPanel = m.applyPanelStyle(panelRoadmap, roadmapPanel, colWidth-4)
		readinessPanel = m.applyPanelStyle(panelReadiness, readinessPanel, colWidth-4)
		body = lipgloss.JoinHorizontal(lipgloss.Top, challengesPanel, roadmapPanel, readinessPanel)
	} else {
		// Vertical layout: stacked.
		panelWidth := availableWidth - 4
		if panelWidth < 30 {
			panelWidth = 30
		}
		challengesPanel = m.applyPanelStyle(panelChallenges, challengesPanel, panelWidth)
		roadmapPanel = m.applyPanelStyle(panelRoadmap, roadmapPanel, panelWidth)
		readinessPanel = m.applyPanelStyle(panelReadiness, readinessPanel, panelWidth)
		body = lipgloss.JoinVertical(lipgloss.Left, challengesPanel, roadmapPanel, readinessPanel)
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s", title, body, help)
}

func (m dashboardModel) applyPanelStyle(panel int, content string, width int) string {
	style := panelStyle
	if m.activePanel == panel {
		style = activePanelStyle
	}
	return style.Width(width).Render(content)
}

func (m dashboardModel) renderChallengesPanel() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Challenges by Impact"))
	b.WriteString("\n")

	if len(m.challenges) == 0 {
		b.WriteString("  No challenges cataloged.")
		return b.String()
	}

	for i, row := range m.challenges {
		label := fmt.Sprintf("  %d. %-36s %.2f", i+1, truncate(row.name, 36), row.impact)
		b.WriteString(styleForSeverity(row.severity).Render(label))
		b.WriteString("\n")
	}

	return b.String()
}

func (m dashboardModel) renderRoadmapPanel() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Roadmap"))
	b.WriteString("\n")

	if m.roadmap == nil {
		b.WriteString("  No roadmap available.")
		return b.String()
	}

	for _, bucket := range m.roadmap.buckets {
		fmt.Fprintf(&b, "  %-26s %d\n", bucket.label, bucket.count)
	}

	b.WriteString("\n  Quick wins:\n")
	if len(m.roadmap.quickWins) == 0 {
		b.WriteString("    none\n")
	}
	for _, name := range m.roadmap.quickWins {
		fmt.Fprintf(&b, "    - %s\n", truncate(name, 34))
	}

	return b.String()
}

func (m dashboardModel) renderReadinessPanel() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Solution Readiness"))
	b.WriteString("\n")

	if m.readiness == nil {
		b.WriteString("  No readiness data.")
		return b.String()
	}

	for _, row := range m.readiness.rows {
		fmt.Fprintf(&b, "  %-26s %.2f\n", truncate(row.category, 26), row.score)
	}

	grade := fmt.Sprintf("%.2f - %s", m.readiness.overall, m.readiness.grade)
	style := gradePoor
	if m.readiness.overall >= 0.7 {
		style = gradeGood
	}
	b.WriteString("\n  Overall: ")
	b.WriteString(style.Render(grade))

	return b.String()
}

func styleForSeverity(severity models.SeverityLevel) lipgloss.Style {
	switch severity {
	case models.SeverityCritical:
		return severityCritical
	case models.SeverityHigh:
		return severityHigh
	case models.SeverityMedium:
		return severityMedium
	case models.SeverityLow:
		return severityLow
	default:
		return lipgloss.NewStyle()
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

func loadDashboardData() tea.Msg {
	var result dataLoadedMsg

	if Challenges != nil {
		for _, challenge := range Challenges.ImpactRanking() {
			result.challenges = append(result.challenges, challengeRow{
				name:     string(challenge.Name),
				severity: challenge.Metrics.Severity,
				impact:   challenge.Metrics.ImpactScore(),
			})
		}
	}

	if Eval != nil {
		roadmap := Eval.ImplementationRoadmap()
		snapshot := &roadmapSnapshot{
			buckets: []bucketCount{
				{"Short-term goals", len(roadmap.ShortTermGoals)},
				{"Medium-term objectives", len(roadmap.MediumTermObjectives)},
				{"Long-term research", len(roadmap.LongTermResearch)},
			},
		}
		for _, solution := range roadmap.QuickWins {
			snapshot.quickWins = append(snapshot.quickWins, string(solution.Name))
		}
		result.roadmap = snapshot

		benchmark := Eval.BenchmarkState()
		readiness := &readinessSnapshot{
			overall: benchmark.OverallReadiness,
			grade:   benchmark.ReadinessGrade,
		}
		for _, category := range models.ChallengeCategories() {
			score, ok := benchmark.SolutionReadiness[category]
			if !ok {
				continue
			}
			readiness.rows = append(readiness.rows, readinessRow{
				category: string(category),
				score:    score,
			})
		}
		result.readiness = readiness
	}

	return result
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive TUI dashboard for the catalog state",
	Long: `Launch an interactive terminal dashboard showing the challenge impact
ranking, the implementation roadmap, and solution readiness per category.

Navigate between panels with Tab, refresh with r, quit with q.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Challenges == nil || Eval == nil {
			return fmt.Errorf("catalog not initialized")
		}
		p := tea.NewProgram(newDashboardModel(), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
