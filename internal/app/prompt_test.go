package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptPort(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"explicit", "/dev/ttyACM0\n", "/dev/ttyACM0"},
		{"trimmed", "  COM7  \r\n", "COM7"},
		{"blank", "\n", "COM4"},
		{"eof", "", "COM4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := PromptPort(strings.NewReader(tt.input), &out, "COM4")
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "press Enter for COM4")
		})
	}
}

func TestWaitForEnter(t *testing.T) {
	var out bytes.Buffer
	WaitForEnter(strings.NewReader("\n"), &out, "Press Enter to exit...")
	assert.Equal(t, "Press Enter to exit...", out.String())

	WaitForEnter(strings.NewReader(""), &out, "")
}
