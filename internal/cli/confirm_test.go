package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "lowercase y", input: "y\n", want: true},
		{name: "yes", input: "yes\n", want: true},
		{name: "uppercase", input: "YES\n", want: true},
		{name: "no", input: "n\n", want: false},
		{name: "empty line defaults to no", input: "\n", want: false},
		{name: "eof defaults to no", input: "", want: false},
		{name: "garbage defaults to no", input: "sure\n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			got := Confirm(strings.NewReader(tt.input), &out, "Delete this expense?")
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "[y/N]")
		})
	}
}
