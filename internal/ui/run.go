package ui

import (
	"fmt"
	"io"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/paceseed/internal/seeder"
)

// ProgressMsg carries one seeder progress update into the run view.
type ProgressMsg seeder.Progress

// DoneMsg ends the run view.
type DoneMsg struct {
	Err error
}

// RunModel is the live seeding view: completed phase lines above a
// spinner with the current message.
type RunModel struct {
	spinner spinner.Model
	lines   []string
	current string
	done    bool
	err     error
}

// NewRun creates the run view model.
func NewRun() RunModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return RunModel{spinner: sp, current: "starting..."}
}

func (m RunModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m RunModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = fmt.Errorf("interrupted")
			return m, tea.Quit
		}
		return m, nil

	case ProgressMsg:
		if m.current != "" {
			m.lines = append(m.lines, m.current)
		}
		m.current = fmt.Sprintf("[%s] %s", msg.Phase, msg.Message)
		return m, nil

	case DoneMsg:
		if m.current != "" {
			m.lines = append(m.lines, m.current)
			m.current = ""
		}
		m.done = true
		m.err = msg.Err
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m RunModel) View() tea.View {
	var body string
	for _, line := range m.lines {
		body += DoneStyle.Render("✓") + " " + PhaseStyle.Render(line) + "\n"
	}

	switch {
	case m.err != nil:
		body += ErrorStyle.Render("✗ "+m.err.Error()) + "\n"
	case m.done:
		body += DoneStyle.Render("✓ done") + "\n"
	default:
		body += m.spinner.View() + " " + m.current + "\n"
	}

	v := tea.NewView("")
	v.SetContent(TitleStyle.Render("paceseed") + "\n\n" + body)
	return v
}

// Err returns the error recorded by the final model, if any.
func (m RunModel) Err() error {
	return m.err
}

// RunLive drives run inside the live view. The run function receives a
// progress callback safe to call from its own goroutine.
func RunLive(run func(progress seeder.ProgressFunc) error) error {
	p := tea.NewProgram(NewRun())

	go func() {
		err := run(func(pr seeder.Progress) {
			p.Send(ProgressMsg(pr))
		})
		p.Send(DoneMsg{Err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(RunModel); ok {
		return m.Err()
	}
	return nil
}

// PlainProgress writes progress updates as lines, for --plain runs and
// non-TTY output.
func PlainProgress(w io.Writer) seeder.ProgressFunc {
	return func(p seeder.Progress) {
		fmt.Fprintf(w, "[%s] %s\n", p.Phase, p.Message)
	}
}
