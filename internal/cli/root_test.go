package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Structure(t *testing.T) {
	cmd := NewRootCmd()

	names := make([]string, 0)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "lookup")
	assert.Contains(t, names, "dump")
	assert.Contains(t, names, "history")
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "prune")
	assert.Contains(t, names, "version")
}

func TestVersionCmd(t *testing.T) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "dnsintel version")
}

func TestLookupCmd_Flags(t *testing.T) {
	cmd := NewRootCmd()
	lookup, _, err := cmd.Find([]string{"lookup"})
	require.NoError(t, err)

	assert.NotNil(t, lookup.Flags().Lookup("type"))
	assert.NotNil(t, lookup.Flags().Lookup("srv"))
	assert.Equal(t, "t", lookup.Flags().Lookup("type").Shorthand)
}
