package browse

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/jobinsights/internal/insights"
	"github.com/amishk599/jobinsights/internal/model"
)

var (
	loadedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	loadFailedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type datasetLoadedMsg struct {
	jobs []model.Job
	err  error
}

// loaderModel reads one dataset under a cancellable context. Its final view
// stays on screen as a one-line summary of what was read.
type loaderModel struct {
	source  string
	read    func(ctx context.Context) ([]model.Job, error)
	ctx     context.Context
	cancel  context.CancelFunc
	spinner spinner.Model

	jobs []model.Job
	err  error
	done bool
}

func newLoaderModel(ctx context.Context, source string, read func(ctx context.Context) ([]model.Job, error)) loaderModel {
	ctx, cancel := context.WithCancel(ctx)
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("33"))),
	)
	return loaderModel{source: source, read: read, ctx: ctx, cancel: cancel, spinner: sp}
}

func (m loaderModel) Init() tea.Cmd {
	ctx, read := m.ctx, m.read
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		jobs, err := read(ctx)
		return datasetLoadedMsg{jobs: jobs, err: err}
	})
}

func (m loaderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case datasetLoadedMsg:
		if m.done {
			return m, nil
		}
		m.jobs, m.err, m.done = msg.jobs, msg.err, true
		m.cancel()
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.cancel()
			m.err = context.Canceled
			m.done = true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m loaderModel) View() string {
	if !m.done {
		return fmt.Sprintf("%s Reading %s...\n", m.spinner.View(), m.source)
	}
	return loadSummary(m.source, m.jobs, m.err) + "\n"
}

// loadSummary describes the outcome of a read: row and job type counts on
// success, the reader's error otherwise.
func loadSummary(source string, jobs []model.Job, err error) string {
	if err != nil {
		return loadFailedStyle.Render(fmt.Sprintf("✗ %s: %v", source, err))
	}
	return loadedStyle.Render(fmt.Sprintf("✓ %s: %d jobs, %d job types, %d industries",
		source, len(jobs), len(insights.JobTypes(jobs)), len(insights.Industries(jobs))))
}

// RunLoader reads the dataset behind a spinner, rendered inline. Quitting
// cancels the read through ctx.
func RunLoader(ctx context.Context, source string, read func(ctx context.Context) ([]model.Job, error)) ([]model.Job, error) {
	p := tea.NewProgram(newLoaderModel(ctx, source, read))
	result, err := p.Run()
	if err != nil {
		return nil, err
	}
	final := result.(loaderModel)
	return final.jobs, final.err
}
