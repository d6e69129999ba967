package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestRootCommand_Subcommands(t *testing.T) {
	root := NewRootCommand()

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "preview"}, names)

	preview, _, err := root.Find([]string{"preview"})
	require.NoError(t, err)
	assert.NotNil(t, preview.Flags().Lookup("portal"))
	assert.NotNil(t, preview.Flags().Lookup("debug-log"))
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"serve", "extra"})

	assert.Error(t, root.Execute())
}

func TestAppOptions_Validate(t *testing.T) {
	require.NoError(t, fx.ValidateApp(appOptions()...))
}
