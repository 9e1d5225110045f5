package browse

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/jobinsights/internal/insights"
	"github.com/amishk599/jobinsights/internal/model"
)

var (
	pickerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				Padding(1, 0, 1, 2)

	pickerItemStyle = lipgloss.NewStyle().
			Padding(0, 0, 0, 4)

	pickerSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")).
				Bold(true).
				Padding(0, 0, 0, 2)

	pickerHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(1, 0, 0, 2)
)

// Option is one pickable value with the number of rows it covers.
type Option struct {
	Label string
	Count int
}

type pickerModel struct {
	title   string
	options []Option
	cursor  int
	chosen  int // -1 = no choice yet / quit
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.chosen = -1
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		case "enter":
			if len(m.options) > 0 {
				m.chosen = m.cursor
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m pickerModel) View() string {
	s := pickerTitleStyle.Render(m.title)
	s += "\n"

	if len(m.options) == 0 {
		s += pickerItemStyle.Render("(nothing to pick)") + "\n"
	}
	for i, o := range m.options {
		label := fmt.Sprintf("%s (%d)", o.Label, o.Count)
		if i == m.cursor {
			s += pickerSelectedStyle.Render("> "+label) + "\n"
		} else {
			s += pickerItemStyle.Render(label) + "\n"
		}
	}

	s += pickerHintStyle.Render("↑/↓/j/k navigate  enter select  q quit")
	return s
}

// RunPicker shows an interactive selector over options.
// Returns the index of the chosen option, or -1 if the user quit.
func RunPicker(title string, options []Option) (int, error) {
	m := pickerModel{
		title:   title,
		options: options,
		chosen:  -1,
	}

	p := tea.NewProgram(m)
	result, err := p.Run()
	if err != nil {
		return -1, err
	}

	final := result.(pickerModel)
	return final.chosen, nil
}

// JobTypeOptions lists the dataset's job types in first-occurrence order with
// their row counts.
func JobTypeOptions(jobs []model.Job) []Option {
	counts := make(map[string]int)
	for _, j := range jobs {
		counts[j.JobType]++
	}
	types := insights.JobTypes(jobs)
	options := make([]Option, len(types))
	for i, t := range types {
		label := t
		if label == "" {
			label = "(blank)"
		}
		options[i] = Option{Label: label, Count: counts[t]}
	}
	return options
}
