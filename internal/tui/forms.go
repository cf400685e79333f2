package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// form is a vertical stack of text inputs with tab-cycled focus, the building
// block for the login, editor and settings surfaces.

type formField struct {
	key   string
	label string
	value string
	mask  bool
}

type form struct {
	keys   []string
	inputs []textinput.Model
	focus  int
}

func newForm(fields []formField) *form {
	f := &form{}
	for i, field := range fields {
		inp := textinput.New()
		inp.Prompt = field.label + ": "
		inp.SetValue(field.value)
		if field.mask {
			inp.EchoMode = textinput.EchoPassword
		}
		if i == 0 {
			inp.Focus()
		}
		f.keys = append(f.keys, field.key)
		f.inputs = append(f.inputs, inp)
	}
	return f
}

// Update routes a key to the focused input; tab and shift+tab cycle focus.
func (f *form) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "shift+tab":
		dir := 1
		if msg.String() == "shift+tab" {
			dir = -1
		}
		f.inputs[f.focus].Blur()
		f.focus = (f.focus + dir + len(f.inputs)) % len(f.inputs)
		f.inputs[f.focus].Focus()
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) Value(key string) string {
	for i, k := range f.keys {
		if k == key {
			return f.inputs[i].Value()
		}
	}
	return ""
}

func (f *form) SetValue(key, value string) {
	for i, k := range f.keys {
		if k == key {
			f.inputs[i].SetValue(value)
			return
		}
	}
}

func (f *form) View() string {
	lines := make([]string, 0, len(f.inputs))
	for _, inp := range f.inputs {
		lines = append(lines, inp.View())
	}
	return strings.Join(lines, "\n")
}
