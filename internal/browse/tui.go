// Package browse is an interactive terminal browser over a loaded dataset.
package browse

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/jobinsights/internal/insights"
	"github.com/amishk599/jobinsights/internal/model"
)

// Lines per job item in the list view (title + subtitle + blank separator).
const jobItemHeight = 3

type viewState int

const (
	viewList viewState = iota
	viewSalaryInput
	viewDetail
)

var (
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))

	jobTitleStyle = lipgloss.NewStyle().
			Bold(true)

	jobSubtitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))

	selectedJobTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("24"))

	selectedJobSubtitleStyle = lipgloss.NewStyle().
					Foreground(lipgloss.Color("252")).
					Background(lipgloss.Color("24"))

	detailLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				Width(16)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

type browseModel struct {
	label  string
	all    []model.Job
	shown  []model.Job
	salary *int
	cursor int

	list     viewport.Model
	detail   viewport.Model
	input    textinput.Model
	inputErr string
	view     viewState

	width  int
	height int
	ready  bool

	wantQuit bool
}

func newBrowseModel(label string, jobs []model.Job) browseModel {
	in := textinput.New()
	in.Placeholder = "salary, e.g. 85000"
	in.CharLimit = 12
	in.Prompt = "salary> "

	return browseModel{
		label: label,
		all:   jobs,
		shown: jobs,
		input: in,
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcLayout()
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case viewSalaryInput:
			return m.updateSalaryInput(msg)
		case viewDetail:
			return m.updateDetailView(msg)
		}
		return m.updateListView(msg)
	}
	return m, nil
}

func (m browseModel) updateListView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.wantQuit = true
		return m, tea.Quit
	case "esc", "b":
		m.wantQuit = false
		return m, tea.Quit
	case "up", "k":
		m.moveCursor(-1)
		return m, nil
	case "down", "j":
		m.moveCursor(1)
		return m, nil
	case "/", "s":
		m.view = viewSalaryInput
		m.inputErr = ""
		m.input.SetValue("")
		cmd := m.input.Focus()
		return m, cmd
	case "c":
		m.salary = nil
		m.applyFilter()
		return m, nil
	case "enter":
		if len(m.shown) == 0 {
			return m, nil
		}
		m.view = viewDetail
		m.detail = viewport.New(max(m.width-4, 20), max(m.height-4, 5))
		m.detail.SetContent(renderDetail(m.shown[m.cursor]))
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m browseModel) updateSalaryInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.wantQuit = true
		return m, tea.Quit
	case "esc":
		m.input.Blur()
		m.view = viewList
		return m, nil
	case "enter":
		salary, err := strconv.Atoi(strings.TrimSpace(m.input.Value()))
		if err != nil {
			m.inputErr = fmt.Sprintf("%q is not a whole number", m.input.Value())
			return m, nil
		}
		m.input.Blur()
		m.salary = &salary
		m.view = viewList
		m.applyFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m browseModel) updateDetailView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.wantQuit = true
		return m, tea.Quit
	case "esc", "backspace":
		m.view = viewList
		return m, nil
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

// applyFilter recomputes the visible rows from the current salary and resets
// the cursor.
func (m *browseModel) applyFilter() {
	if m.salary == nil {
		m.shown = m.all
	} else {
		m.shown = insights.FilterBySalaryRange(m.all, *m.salary)
	}
	m.cursor = 0
	if m.ready {
		m.list.SetYOffset(0)
		m.recalcContent()
	}
}

func (m *browseModel) moveCursor(delta int) {
	m.cursor = clamp(m.cursor+delta, 0, max(len(m.shown)-1, 0))
	if !m.ready {
		return
	}
	m.recalcContent()

	cursorTop := m.cursor * jobItemHeight
	cursorBottom := cursorTop + jobItemHeight - 1
	if cursorTop < m.list.YOffset {
		m.list.SetYOffset(cursorTop)
	} else if cursorBottom >= m.list.YOffset+m.list.Height {
		m.list.SetYOffset(cursorBottom - m.list.Height + 1)
	}
}

func (m *browseModel) recalcLayout() {
	// Header (1 line) + border top/bottom (2) + status bar (1) = 4 lines overhead.
	width := max(m.width-2, 20)
	height := max(m.height-4, 5)

	if !m.ready {
		m.list = viewport.New(width, height)
		m.ready = true
	} else {
		m.list.Width = width
		m.list.Height = height
	}
	if m.view == viewDetail {
		m.detail.Width = max(m.width-4, 20)
		m.detail.Height = max(m.height-4, 5)
	}
	m.recalcContent()
}

func (m *browseModel) recalcContent() {
	m.list.SetContent(renderJobs(m.shown, m.cursor))
}

func (m browseModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.view == viewDetail {
		title := headerStyle.Render("Job Details")
		status := statusBarStyle.Width(m.width).Render(" esc/backspace back  ↑/↓ scroll  q quit")
		return title + "\n" + borderStyle.Width(m.width-2).Render(m.detail.View()) + "\n" + status
	}

	header := fmt.Sprintf(" %s: %d of %d jobs", m.label, len(m.shown), len(m.all))
	if m.salary != nil {
		header += fmt.Sprintf(" paying %d", *m.salary)
	}

	var bottom string
	if m.view == viewSalaryInput {
		bottom = m.input.View()
		if m.inputErr != "" {
			bottom += "  " + errorStyle.Render(m.inputErr)
		}
	} else {
		bottom = statusBarStyle.Width(m.width).Render(" ↑/↓ cursor  Enter detail  / salary  c clear  Esc back  q quit")
	}

	return headerStyle.Render(header) + "\n" + borderStyle.Width(m.list.Width).Render(m.list.View()) + "\n" + bottom
}

func jobTitle(j model.Job) string {
	if t, _ := j.Get("job_title"); t != "" {
		return t
	}
	return "(untitled)"
}

func salaryLabel(j model.Job) string {
	if j.MinSalary == "" && j.MaxSalary == "" {
		return "salary n/a"
	}
	return j.MinSalary + " - " + j.MaxSalary
}

func renderJobs(jobs []model.Job, cursor int) string {
	if len(jobs) == 0 {
		return "  (no jobs)"
	}

	var b strings.Builder
	for i, j := range jobs {
		titleSt := jobTitleStyle
		subtitleSt := jobSubtitleStyle
		prefix := "  "
		if i == cursor {
			titleSt = selectedJobTitleStyle
			subtitleSt = selectedJobSubtitleStyle
			prefix = "> "
		}

		industry := j.Industry
		if industry == "" {
			industry = "no industry"
		}

		b.WriteString(prefix)
		b.WriteString(titleSt.Render(jobTitle(j)))
		b.WriteByte('\n')
		b.WriteString(prefix)
		b.WriteString(subtitleSt.Render(fmt.Sprintf("%s · %s", industry, salaryLabel(j))))
		b.WriteByte('\n')

		if i < len(jobs)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func renderDetail(j model.Job) string {
	var b strings.Builder
	addField := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(detailLabelStyle.Render(label))
		b.WriteString(value)
		b.WriteByte('\n')
	}

	addField(model.ColJobType, j.JobType)
	addField(model.ColIndustry, j.Industry)
	addField(model.ColMinSalary, j.MinSalary)
	addField(model.ColMaxSalary, j.MaxSalary)
	b.WriteByte('\n')

	names := make([]string, 0, len(j.Fields))
	for name := range j.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		addField(name, j.Fields[name])
	}
	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RunBrowser launches the full-screen job list for one job type.
// Returns wantQuit=true if the user pressed q/ctrl+c, false if they pressed esc to return to the picker.
func RunBrowser(label string, jobs []model.Job) (bool, error) {
	p := tea.NewProgram(newBrowseModel(label, jobs), tea.WithAltScreen())
	result, err := p.Run()
	if err != nil {
		return false, err
	}
	final := result.(browseModel)
	return final.wantQuit, nil
}
