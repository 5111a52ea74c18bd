package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("TALLY_TEST_DIR", "/var/data")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty path", input: "", want: ""},
		{name: "plain path untouched", input: "/tmp/ledger.csv", want: "/tmp/ledger.csv"},
		{name: "tilde prefix", input: "~/ledger.csv", want: filepath.Join(home, "ledger.csv")},
		{name: "bare tilde", input: "~", want: home},
		{name: "env var", input: "$TALLY_TEST_DIR/ledger.csv", want: "/var/data/ledger.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.input))
		})
	}
}
