package commands

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagsCmd() (*cobra.Command, *configFlags) {
	flags := &configFlags{}
	cmd := &cobra.Command{Use: "test"}
	flags.register(cmd)
	return cmd, flags
}

func TestOptions_FlagSet(t *testing.T) {
	cmd, flags := newFlagsCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--port", "3100", "--hostname", "krusty-host"}))

	opts := flags.options(cmd)

	require.NotNil(t, opts.Port)
	assert.Equal(t, "3100", *opts.Port)
	require.NotNil(t, opts.Hostname)
	assert.Equal(t, "krusty-host", *opts.Hostname)
}

func TestOptions_UnsetIsNil(t *testing.T) {
	cmd, flags := newFlagsCmd()
	require.NoError(t, cmd.ParseFlags(nil))

	opts := flags.options(cmd)

	assert.Nil(t, opts.Port)
	assert.Nil(t, opts.Hostname)
	assert.Nil(t, opts.NodeIP)
	assert.Nil(t, opts.NodeLabels)
}

func TestOptions_EnvFallback(t *testing.T) {
	t.Setenv(envHostname, "env-host")
	t.Setenv(envPort, "9000")

	cmd, flags := newFlagsCmd()
	require.NoError(t, cmd.ParseFlags(nil))

	opts := flags.options(cmd)

	require.NotNil(t, opts.Hostname)
	assert.Equal(t, "env-host", *opts.Hostname)
	require.NotNil(t, opts.Port)
	assert.Equal(t, "9000", *opts.Port)
}

func TestOptions_FlagOverridesEnv(t *testing.T) {
	t.Setenv(envPort, "9000")

	cmd, flags := newFlagsCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--port", "3100"}))

	opts := flags.options(cmd)

	require.NotNil(t, opts.Port)
	assert.Equal(t, "3100", *opts.Port)
}

func TestOptions_EmptyFlagStillCountsAsSet(t *testing.T) {
	t.Setenv(envNodeName, "env-name")

	cmd, flags := newFlagsCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--node-name", ""}))

	opts := flags.options(cmd)

	require.NotNil(t, opts.NodeName)
	assert.Equal(t, "", *opts.NodeName)
}

func TestOptions_LabelsFromFlag(t *testing.T) {
	cmd, flags := newFlagsCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--node-labels", "pool=edge,zone=eu"}))

	opts := flags.options(cmd)

	assert.Equal(t, []string{"pool=edge", "zone=eu"}, opts.NodeLabels)
}

func TestOptions_LabelsFromEnv(t *testing.T) {
	t.Setenv(envNodeLabels, "pool=edge,,zone=eu")

	cmd, flags := newFlagsCmd()
	require.NoError(t, cmd.ParseFlags(nil))

	opts := flags.options(cmd)

	assert.Equal(t, []string{"pool=edge", "zone=eu"}, opts.NodeLabels)
}

func TestSplitCommaList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single", "a=1", []string{"a=1"}},
		{"multiple", "a=1,b=2", []string{"a=1", "b=2"}},
		{"empty tokens dropped", ",a=1,,b=2,", []string{"a=1", "b=2"}},
		{"empty string", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitCommaList(tt.input))
		})
	}
}
