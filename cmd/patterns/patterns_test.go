package patterns_test

import (
	"testing"

	"github.com/4rgc/bsparser/cmd/patterns"

	"github.com/stretchr/testify/assert"
)

func TestPatternsCommand_Metadata(t *testing.T) {
	assert.Equal(t, "patterns", patterns.Cmd.Use)
	assert.Contains(t, patterns.Cmd.Short, "pattern bank")
	assert.NotNil(t, patterns.Cmd.RunE)
}

func TestPatternsCommand_Flags(t *testing.T) {
	keysFlag := patterns.Cmd.Flags().Lookup("keys")
	assert.NotNil(t, keysFlag)
	assert.Equal(t, "false", keysFlag.DefValue)

	categoriesFlag := patterns.Cmd.Flags().Lookup("categories")
	assert.NotNil(t, categoriesFlag)
	assert.Equal(t, "false", categoriesFlag.DefValue)

	formatFlag := patterns.Cmd.Flags().Lookup("format")
	assert.NotNil(t, formatFlag)
	assert.Equal(t, "f", formatFlag.Shorthand)
	assert.Equal(t, "text", formatFlag.DefValue)
}
