package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Typos within edit distance 2
		{"stringfy", "stringify"},
		{"strinigfy", "stringify"},
		{"higlight", "highlight"},
		{"wlak", "walk"},
		{"fnd", "find"},
		{"prop", "props"},
		{"convet", "convert"},
		{"mpc", "mcp"},
		{"versio", "version"},
		{"hep", "help"},

		// Too far - no suggestion (distance > 2)
		{"xyz", ""},
		{"foobar", ""},
		{"serialize", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, suggestCommand(tt.input))
		})
	}
}

func TestEditDistance(t *testing.T) {
	assert.Equal(t, 0, editDistance("walk", "walk"))
	assert.Equal(t, 1, editDistance("walk", "wall"))
	assert.Equal(t, 3, editDistance("", "mcp"))
	assert.Equal(t, 1, editDistance("straße", "strase"))
}

func TestHandlersCoverCommands(t *testing.T) {
	for _, name := range commandNames {
		if name == "version" || name == "help" {
			continue
		}
		assert.Contains(t, handlers, name)
	}
}
