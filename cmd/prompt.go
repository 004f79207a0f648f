package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/kamal-hamza/datestamp/pkg/ui"
)

var errPromptCancelled = errors.New("prompt cancelled")

// Prompter asks the user for a single line of input.
// A blank answer returns def.
type Prompter interface {
	Ask(label, def string) (string, error)
}

// newPrompter picks an interactive prompter for terminals and a plain line
// reader for pipes and files
func newPrompter(in io.Reader, out io.Writer) Prompter {
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return &teaPrompter{in: in, out: out}
	}
	return newLinePrompter(in, out)
}

// --- Line prompter ---

type linePrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func newLinePrompter(in io.Reader, out io.Writer) *linePrompter {
	return &linePrompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (p *linePrompter) Ask(label, def string) (string, error) {
	fmt.Fprint(p.out, ui.FormatPrompt(label, def))

	input, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if errors.Is(err, io.EOF) {
		// closed input: finish the prompt line
		fmt.Fprintln(p.out)
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return def, nil
	}
	return input, nil
}

// --- Terminal prompter ---

type teaPrompter struct {
	in  io.Reader
	out io.Writer
}

func (p *teaPrompter) Ask(label, def string) (string, error) {
	m := newPromptModel(label, def)

	final, err := tea.NewProgram(m, tea.WithInput(p.in), tea.WithOutput(p.out)).Run()
	if err != nil {
		return "", err
	}

	result := final.(promptModel)
	if result.cancelled {
		return "", errPromptCancelled
	}

	value := result.Value()
	fmt.Fprintln(p.out, ui.FormatPrompt(label, def)+value)
	return value, nil
}

type promptModel struct {
	input     textinput.Model
	def       string
	done      bool
	cancelled bool
}

func newPromptModel(label, def string) promptModel {
	ti := textinput.New()
	ti.Prompt = ui.FormatPrompt(label, def)
	ti.Placeholder = def
	ti.CharLimit = 4096
	ti.Width = 60
	ti.Focus()

	return promptModel{
		input: ti,
		def:   def,
	}
}

// Value returns the trimmed answer, or the default when blank
func (m promptModel) Value() string {
	v := strings.TrimSpace(m.input.Value())
	if v == "" {
		return m.def
	}
	return v
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	return m.input.View() + "\n"
}
