package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List item: one reported file with its outcome.
type fileItem struct {
	path    string
	outcome string
}

func (f fileItem) FilterValue() string {
	return f.path
}

var outcomeColors = map[string]lipgloss.Color{
	"changed":          lipgloss.Color("2"),
	"would change":     lipgloss.Color("6"),
	"skipped":          lipgloss.Color("3"),
	"error":            lipgloss.Color("1"),
	"transformable":    lipgloss.Color("2"),
	"already-migrated": lipgloss.Color("3"),
	"too-complex":      lipgloss.Color("3"),
	"no-pattern":       lipgloss.Color("8"),
}

// Simple delegate for result list items.
type resultDelegate struct{}

func (d resultDelegate) Height() int  { return 1 }
func (d resultDelegate) Spacing() int { return 0 }
func (d resultDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d resultDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	file, ok := item.(fileItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()
	width := m.Width() - 20 // Outcome column (18) + spacing (2)

	color, ok := outcomeColors[file.outcome]
	if !ok {
		color = lipgloss.Color("1")
	}

	outcomeStyle := lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Width(18)

	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	if isSelected {
		pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
	}

	line := fmt.Sprintf("%s  %s",
		outcomeStyle.Render(file.outcome),
		pathStyle.Render(truncateToWidth(file.path, width)),
	)
	_, _ = fmt.Fprint(w, line)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// resultModel browses per-file outcomes after a run or scan.
type resultModel struct {
	width    int
	height   int
	title    string
	summary  string
	fileList list.Model
}

func newResultModel(title, summary string, items []list.Item) resultModel {
	fileList := list.New(items, resultDelegate{}, 80, 20)
	fileList.SetShowPagination(false)
	fileList.SetShowFilter(true)
	fileList.SetShowHelp(false)
	fileList.SetShowTitle(false)
	fileList.SetShowStatusBar(false)
	fileList.FilterInput.Placeholder = "Filter by path…"

	return resultModel{
		title:    title,
		summary:  summary,
		fileList: fileList,
	}
}

func (m resultModel) Init() tea.Cmd {
	return nil
}

func (m resultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.fileList.SetWidth(m.width)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		default:
			var newList list.Model

			newList, cmd = m.fileList.Update(msg)
			m.fileList = newList

			return m, cmd
		}
	}

	return m, cmd
}

func (m resultModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.title),
		summaryStyle.Render(m.summary),
		m.renderTable(),
		footerStyle.Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit"),
	)
}

func (m resultModel) renderTable() string {
	listHeight := m.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := m.width - 6

	m.fileList.SetHeight(listHeight)
	m.fileList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-18s  %s", "Outcome", "File Path"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.fileList.View(),
		),
	)
}
