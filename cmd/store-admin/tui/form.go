package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// textField is one labeled input of a modal form.
type textField struct {
	label string
	input textinput.Model
}

func newTextField(label, placeholder string, limit int) textField {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = limit
	input.Prompt = "> "

	return textField{label: label, input: input}
}

func (f textField) View(focused bool) string {
	style := labelStyle
	if focused {
		style = focusedLabelStyle
	}

	return style.Render(f.label) + "\n" + f.input.View()
}

// option is one selectable entry of a selectField.
type option struct {
	id    int64
	label string
}

// selectField is the terminal stand-in for a <select> control: left
// and right cycle through the loaded options. Index -1 is the
// "nothing selected" sentinel and maps to id 0. Fields with skipEmpty
// set wrap within the options and never land on the sentinel; the
// status selector uses this because the status enum has no empty
// entry.
type selectField struct {
	label     string
	options   []option
	index     int
	skipEmpty bool
}

func newSelectField(label string) selectField {
	return selectField{label: label, index: -1}
}

func (f *selectField) SetOptions(options []option) {
	f.options = options

	if f.index >= len(options) {
		f.index = -1
	}
}

// Select moves the cursor to the option with the given id, keeping the
// sentinel when the id is unknown.
func (f *selectField) Select(id int64) {
	f.index = -1

	for i, opt := range f.options {
		if opt.id == id {
			f.index = i

			return
		}
	}
}

func (f *selectField) Cycle(delta int) {
	if len(f.options) == 0 {
		return
	}

	f.index += delta

	if f.skipEmpty {
		if f.index < 0 {
			f.index = len(f.options) - 1
		}

		if f.index >= len(f.options) {
			f.index = 0
		}

		return
	}

	if f.index < -1 {
		f.index = len(f.options) - 1
	}

	if f.index >= len(f.options) {
		f.index = -1
	}
}

// Selected returns the chosen id, zero when nothing is selected.
func (f *selectField) Selected() int64 {
	if f.index < 0 || f.index >= len(f.options) {
		return 0
	}

	return f.options[f.index].id
}

func (f *selectField) SelectedLabel() string {
	if f.index < 0 || f.index >= len(f.options) {
		return "Select..."
	}

	return f.options[f.index].label
}

func (f selectField) View(focused bool) string {
	style := labelStyle
	if focused {
		style = focusedLabelStyle
	}

	value := f.SelectedLabel()
	if focused {
		value = "◂ " + value + " ▸"
	}

	return style.Render(f.label) + "\n" + value
}
