// Package models contains data types and constants shared by the chat client.
package models

import "strings"

// Model represents a hosted Gemini model
type Model struct {
	Name        string
	Description string
}

// Available models
var (
	Model15Flash = Model{
		Name:        "gemini-1.5-flash",
		Description: "Fast multimodal model",
	}

	Model15Pro = Model{
		Name:        "gemini-1.5-pro",
		Description: "Long-context reasoning model",
	}

	Model20Flash = Model{
		Name:        "gemini-2.0-flash",
		Description: "Second generation flash model",
	}

	Model25Flash = Model{
		Name:        "gemini-2.5-flash",
		Description: "Thinking flash model",
	}

	Model25Pro = Model{
		Name:        "gemini-2.5-pro",
		Description: "Most capable thinking model",
	}

	// DefaultModel is the model used when nothing is configured
	DefaultModel = Model15Flash
)

// AllModels returns a list of all known models
func AllModels() []Model {
	return []Model{Model15Flash, Model15Pro, Model20Flash, Model25Flash, Model25Pro}
}

// ModelFromName resolves a model name or alias.
// Unknown names are passed through so newer models can be used without a release.
func ModelFromName(name string) Model {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "fast", "flash":
		return DefaultModel
	case "pro":
		return Model15Pro
	case "flash-2":
		return Model20Flash
	case "thinking":
		return Model25Flash
	}

	for _, m := range AllModels() {
		if strings.EqualFold(m.Name, strings.TrimSpace(name)) {
			return m
		}
	}
	return Model{Name: strings.TrimSpace(name)}
}

// IsKnown reports whether m is in the built-in catalogue
func (m Model) IsKnown() bool {
	for _, known := range AllModels() {
		if known.Name == m.Name {
			return true
		}
	}
	return false
}
