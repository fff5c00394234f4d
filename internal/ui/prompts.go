package ui

import (
	"github.com/charmbracelet/huh"
)

// InputOption configures an Input prompt.
type InputOption func(*inputConfig)

type inputConfig struct {
	description string
	placeholder string
	validate    func(string) error
}

// WithDescription sets the helper text shown under the prompt title.
func WithDescription(desc string) InputOption {
	return func(c *inputConfig) { c.description = desc }
}

// WithPlaceholder sets the placeholder text of the input field.
func WithPlaceholder(placeholder string) InputOption {
	return func(c *inputConfig) { c.placeholder = placeholder }
}

// WithValidate attaches an input validation function.
func WithValidate(fn func(string) error) InputOption {
	return func(c *inputConfig) { c.validate = fn }
}

// Input displays a single-line text prompt and returns the entered value.
func Input(title string, opts ...InputOption) (string, error) {
	cfg := inputConfig{}
	for _, o := range opts {
		o(&cfg)
	}

	var result string
	input := huh.NewInput().
		Title(title).
		Value(&result)

	if cfg.description != "" {
		input = input.Description(cfg.description)
	}
	if cfg.placeholder != "" {
		input = input.Placeholder(cfg.placeholder)
	}
	if cfg.validate != nil {
		input = input.Validate(cfg.validate)
	}

	form := huh.NewForm(huh.NewGroup(input))
	if err := form.Run(); err != nil {
		return "", err
	}
	return result, nil
}

// Text displays a multi-line text prompt and returns the entered value.
func Text(title string, opts ...InputOption) (string, error) {
	cfg := inputConfig{}
	for _, o := range opts {
		o(&cfg)
	}

	var result string
	text := huh.NewText().
		Title(title).
		Value(&result)

	if cfg.description != "" {
		text = text.Description(cfg.description)
	}

	form := huh.NewForm(huh.NewGroup(text))
	if err := form.Run(); err != nil {
		return "", err
	}
	return result, nil
}
