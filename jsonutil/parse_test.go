package jsonutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripMarkdownFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: `  {"a":1} `, want: `{"a":1}`},
		{name: "json fence", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", in: "```\n{\"a\":1}\n```\n", want: `{"a":1}`},
		{name: "single line fence", in: "```json {\"a\":1}```", want: `{"a":1}`},
		{name: "missing closing fence", in: "```json\n{\"a\":1}", want: `{"a":1}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripMarkdownFences(tc.in))
		})
	}
}

func TestParseJSON(t *testing.T) {
	type payload struct {
		Items []string `json:"items"`
	}

	got, err := ParseJSON[payload]("```json\n{\"items\":[\"x\",\"y\"]}\n```")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, got.Items)

	_, err = ParseJSON[payload]("Sure! Here you go: {\"items\":[]}")
	assert.Error(t, err)

	_, err = ParseJSON[payload]("```json\n```")
	assert.Error(t, err)
}
