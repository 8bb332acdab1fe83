package cli

import (
	"errors"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
)

// ---------- Command tree tests ----------

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, name := range []string{"resolve", "inspect", "validate"} {
		assert.Contains(t, names, name, "missing subcommand: %s", name)
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
}

func TestResolveCommandFlags(t *testing.T) {
	cmd := newResolveCommand()
	for _, name := range []string{"bundle", "triple"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag: %s", name)
	}
}

func TestInspectCommandFlags(t *testing.T) {
	cmd := newInspectCommand()
	assert.NotNil(t, cmd.Flags().Lookup("bundle"))
}

func TestValidateCommandFlags(t *testing.T) {
	cmd := newValidateCommand()
	assert.NotNil(t, cmd.Flags().Lookup("bundle"))
}

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{errbuilder.New().WithCode(errbuilder.CodeInvalidArgument).WithMsg("bad triple"), 2},
		{errbuilder.New().WithCode(errbuilder.CodePermissionDenied).WithMsg("path escapes"), 3},
		{errbuilder.New().WithCode(errbuilder.CodeFailedPrecondition).WithMsg("missing field"), 4},
		{errbuilder.New().WithCode(errbuilder.CodeNotFound).WithMsg("no manifest"), 5},
		{errors.New("plain"), 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, exitCodeForError(tt.err))
	}
}
