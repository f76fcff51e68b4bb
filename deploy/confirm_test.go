package deploy

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAffirmative(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{" YES \n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"yep\n", false},
		{"sure\n", false},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.answer), func(t *testing.T) {
			assert.Equal(t, tt.want, Affirmative(tt.answer))
		})
	}
}

func TestPrompt(t *testing.T) {
	var out bytes.Buffer
	confirm := Prompt(strings.NewReader("y\nn\n"), &out)

	ok, err := confirm(" M style.css")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, out.String(), " M style.css")
	assert.Contains(t, out.String(), "[y/N]")

	ok, err = confirm(" M style.css")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = confirm(" M style.css")
	require.NoError(t, err)
	assert.False(t, ok, "EOF declines")
}
