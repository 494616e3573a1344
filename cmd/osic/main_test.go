package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/onestop/osic/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConstantsFile = `1944
869.00
0.25
130.00
86.00
58.00
0.13
39.99
`

type testEnv struct {
	constants string
	policies  string
	config    string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	env := testEnv{
		constants: filepath.Join(dir, "Const.dat"),
		policies:  filepath.Join(dir, "out", "Policies.dat"),
		config:    filepath.Join(dir, "config.yaml"),
	}
	require.NoError(t, os.WriteFile(env.constants, []byte(testConstantsFile), 0o600))
	require.NoError(t, os.WriteFile(env.config, []byte("logging:\n  level: error\nsave:\n  steps: 0\n"), 0o600))
	return env
}

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestQuoteCommand(t *testing.T) {
	env := newTestEnv(t)

	input := strings.Join([]string{
		"jane", "doe", "12 water street", "gander", "nl", "a1v 1w8", "7095551234",
		"2", "y", "n", "y", "f", "done", "y",
		"john", "smith", "4 elm ave", "halifax", "ns", "b3h 1a1", "9025550199",
		"1", "n", "y", "n", "d", "250", "C-9", "2021-11-30", "420.10", "done", "n",
	}, "\n") + "\n"

	out, err := execute(t, input, "quote",
		"--config", env.config,
		"--constants", env.constants,
		"--policies", env.policies,
		"--save-steps", "0")
	require.NoError(t, err)

	assert.Contains(t, out, "One Stop Insurance Co.")
	assert.Contains(t, out, "Policy 1944 saved to "+env.policies)
	assert.Contains(t, out, "Policy 1945 saved to "+env.policies)
	assert.Contains(t, out, "Thank you for using One Stop Insurance Company system!")

	data, err := os.ReadFile(env.policies)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Policy Number: 1944\nCustomer Name: Jane Doe\n")
	assert.Contains(t, content, "Total Premium (pre-tax): $1462.25\n")
	assert.Contains(t, content, "Policy Number: 1945\nCustomer Name: John Smith\n")
	assert.Contains(t, content, "Address: 4 Elm Ave, Halifax, NS, B3H 1A1\n")
	assert.Contains(t, content, "Down Payment: $250.00\n")
}

func TestQuoteCommand_PolicyNumberRestartsEachRun(t *testing.T) {
	env := newTestEnv(t)
	input := strings.Join([]string{
		"jane", "doe", "12 water street", "gander", "nl", "a1v 1w8", "7095551234",
		"1", "n", "n", "n", "f", "done", "n",
	}, "\n") + "\n"

	for i := 0; i < 2; i++ {
		viper.Reset()
		_, err := execute(t, input, "--config", env.config,
			"--constants", env.constants, "--policies", env.policies)
		require.NoError(t, err)
	}

	data, err := os.ReadFile(env.policies)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "Policy Number: 1944\n"))
}

func TestQuoteCommand_MissingConstants(t *testing.T) {
	env := newTestEnv(t)

	_, err := execute(t, "", "quote", "--config", env.config,
		"--constants", filepath.Join(filepath.Dir(env.constants), "nope.dat"),
		"--policies", env.policies)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMissingConfig)
	assert.Equal(t, "Cannot start without valid pricing constants", common.UserMessage(err))

	_, statErr := os.Stat(env.policies)
	assert.True(t, os.IsNotExist(statErr))
}

func TestQuoteCommand_BadConstants(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.WriteFile(env.constants, []byte("1944\n869\n"), 0o600))

	_, err := execute(t, "", "quote", "--config", env.config,
		"--constants", env.constants, "--policies", env.policies)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestQuoteCommand_InputEnds(t *testing.T) {
	env := newTestEnv(t)

	_, err := execute(t, "jane\ndoe\n", "quote", "--config", env.config,
		"--constants", env.constants, "--policies", env.policies)
	assert.ErrorIs(t, err, common.ErrInputTerminated)
	assert.Equal(t, "Input ended before the policy was complete", common.UserMessage(err))
}

func TestConstantsCommand(t *testing.T) {
	env := newTestEnv(t)

	out, err := execute(t, "", "constants", "--config", env.config, "--constants", env.constants)
	require.NoError(t, err)

	assert.Contains(t, out, "Pricing constants")
	assert.Contains(t, out, env.constants)
	assert.Contains(t, out, "1944")
	assert.Contains(t, out, "$869.00")
	assert.Contains(t, out, "0.13")
	assert.Contains(t, out, "$39.99")
}

func TestConstantsCommand_FromConfigFile(t *testing.T) {
	env := newTestEnv(t)
	cfg := "files:\n  constants: " + env.constants + "\nlogging:\n  level: error\n"
	require.NoError(t, os.WriteFile(env.config, []byte(cfg), 0o600))

	out, err := execute(t, "", "constants", "--config", env.config)
	require.NoError(t, err)
	assert.Contains(t, out, "$869.00")
}

func TestVersionCommand(t *testing.T) {
	env := newTestEnv(t)

	out, err := execute(t, "", "version", "--config", env.config)
	require.NoError(t, err)
	assert.Contains(t, out, "osic version dev")
}

func TestInvalidLogLevel(t *testing.T) {
	env := newTestEnv(t)

	_, err := execute(t, "", "version", "--config", env.config, "--log-level", "loud")
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}
