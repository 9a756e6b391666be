package ui

import (
	"github.com/charmbracelet/huh"
)

// Confirm asks a yes/no question and returns the answer.
func Confirm(title string, def bool) (bool, error) {
	confirmed := def
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Value(&confirmed),
		),
	).Run()
	if err != nil {
		return false, err
	}
	return confirmed, nil
}

// Select presents labeled options and returns the chosen value. The value
// pointed to by selected preselects an option and receives the choice.
func Select[T comparable](title string, options []huh.Option[T], selected *T) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[T]().
				Title(title).
				Options(options...).
				Value(selected),
		),
	).Run()
}

// Input prompts for a single line of text, pre-filled with initial.
func Input(title, initial string) (string, error) {
	value := initial
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Value(&value),
		),
	).Run()
	if err != nil {
		return "", err
	}
	return value, nil
}
