package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "easetab", cmd.Use)

	for _, name := range []string{"list", "decode", "sample"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := execute(t, "--format", "xml", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}

func TestGolden(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"list_text", []string{"list"}},
		{"list_csv", []string{"--format", "csv", "list"}},
		{"decode_text", []string{"decode", "0", "1", "2", "3", "4", "255"}},
		{"sample_text", []string{"sample"}},
		{"sample_csv", []string{"--format", "csv", "sample", "smooth", "ramp", "--steps", "2", "--from=-1", "--to=1"}},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Empty(t, stderr)
			g.Assert(t, tt.name, []byte(stdout))
		})
	}
}

func TestDecodeUnknownTag(t *testing.T) {
	stdout, stderr, err := execute(t, "-v", "decode", "9")
	require.NoError(t, err)
	assert.Equal(t, "raw  curve\n9    Step\n", stdout)
	assert.Contains(t, stderr, "tag 9 is not a known curve, using Step")

	_, _, err = execute(t, "decode", "--strict", "2", "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tag 9 is not a known curve")
}

func TestDecodeInvalidArgs(t *testing.T) {
	for _, arg := range []string{"256", "-1", "step", "1.5"} {
		t.Run(arg, func(t *testing.T) {
			_, _, err := execute(t, "decode", "--", arg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid tag")
		})
	}

	_, _, err := execute(t, "decode")
	require.Error(t, err)
}

func TestSampleErrors(t *testing.T) {
	_, _, err := execute(t, "sample", "--steps", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid steps 0")

	for _, steps := range []string{"1048577", "1099511627776", "9223372036854775807"} {
		_, _, err = execute(t, "sample", "--steps", steps)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid steps "+steps)
	}

	_, _, err = execute(t, "sample", "linear", "bounce")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown curve")
}

func TestSampleVerbose(t *testing.T) {
	stdout, stderr, err := execute(t, "-v", "sample", "linear", "--steps", "1")
	require.NoError(t, err)
	assert.Equal(t, "t  Linear\n0  0\n1  1\n", stdout)
	assert.Equal(t, "sampling 1 curves at 2 points in [0, 1]\n", stderr)
}
