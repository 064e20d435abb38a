package cli_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/katalvlaran/incrun/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// env turns a map into a getenv function.
func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

// invoke runs the CLI with colors off and returns exit code, stdout and stderr.
func invoke(t *testing.T, stdin string, vars map[string]string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := cli.Run(append([]string{"-no-color"}, args...), strings.NewReader(stdin), &stdout, &stderr, env(vars))

	return code, stdout.String(), stderr.String()
}

// TestRun_Text covers every input mode with text output.
func TestRun_Text(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"chars arg", "", []string{"ababc"}, "2 5\nabc\n"},
		{"chars joined args", "", []string{"ab", "abc"}, "2 5\nabc\n"},
		{"chars stdin", "abcabc\n", nil, "0 3\nabc\n"},
		{"chars empty", "", nil, "0 0\n\n"},
		{"ints", "", []string{"-mode", "ints", "12", "45", "32", "65", "78", "23", "35", "45", "57"}, "5 9\n23 35 45 57\n"},
		{"ints commas", "3,1,2", []string{"-mode", "ints"}, "1 3\n1 2\n"},
		{"floats with NaN", "1.5, 2.5, NaN, 0.5 3", []string{"-mode", "floats"}, "0 2\n1.5 2.5\n"},
		{"words", "b a c d", []string{"-mode", "words"}, "1 4\na c d\n"},
		{"generated sawtooth", "", []string{"-gen", "sawtooth", "-n", "10", "-param", "4"}, "0 4\n0 1 2 3\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := invoke(t, tc.stdin, nil, tc.args...)
			require.Equal(t, cli.ExitOK, code, "stderr: %s", errOut)
			assert.Equal(t, tc.want, out)
		})
	}
}

// TestRun_JSON decodes the JSON rendering.
func TestRun_JSON(t *testing.T) {
	code, out, _ := invoke(t, "", nil, "-format", "json", "-mode", "ints", "5", "6", "7", "1", "2")
	require.Equal(t, cli.ExitOK, code)

	var res cli.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, cli.Result{
		Mode:        cli.ModeInts,
		Size:        5,
		Start:       0,
		End:         3,
		Length:      3,
		Run:         []string{"5", "6", "7"},
		Steps:       4,
		Comparisons: 3,
		EarlyExit:   true,
	}, res)
}

// TestRun_FullScan checks -full-scan visits every element with the same answer.
func TestRun_FullScan(t *testing.T) {
	code, out, _ := invoke(t, "", nil, "-format", "json", "-full-scan", "-mode", "ints", "5", "6", "7", "1", "2")
	require.Equal(t, cli.ExitOK, code)

	var res cli.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 0, res.Start)
	assert.Equal(t, 3, res.End)
	assert.Equal(t, 5, res.Steps)
	assert.False(t, res.EarlyExit)
}

// TestRun_Dump checks the litter rendering.
func TestRun_Dump(t *testing.T) {
	code, out, _ := invoke(t, "", nil, "-format", "dump", "ababc")
	require.Equal(t, cli.ExitOK, code)
	assert.Contains(t, out, "Result{")
	assert.Contains(t, out, "Start: 2")
	assert.Contains(t, out, "End: 5")
}

// TestRun_Errors maps failures to exit codes.
func TestRun_Errors(t *testing.T) {
	code, _, errOut := invoke(t, "", nil, "-mode", "bytes", "abc")
	assert.Equal(t, cli.ExitUsage, code)
	assert.Contains(t, errOut, "-mode")

	code, _, _ = invoke(t, "", nil, "-format", "xml", "abc")
	assert.Equal(t, cli.ExitUsage, code)

	code, _, _ = invoke(t, "", nil, "-log-level", "loud", "abc")
	assert.Equal(t, cli.ExitUsage, code)

	code, _, _ = invoke(t, "", nil, "-gen", "spiral")
	assert.Equal(t, cli.ExitUsage, code)

	code, _, errOut = invoke(t, "", nil, "-mode", "ints", "1", "x", "3")
	assert.Equal(t, cli.ExitError, code)
	assert.Contains(t, errOut, "invalid input")

	code, _, _ = invoke(t, "", nil, "-h")
	assert.Equal(t, cli.ExitOK, code, "help is not an error")
}

// TestRun_Logging checks the info and debug records reach stderr.
func TestRun_Logging(t *testing.T) {
	code, _, errOut := invoke(t, "", nil, "-log-level", "info", "-gen", "ascending", "-n", "8")
	require.Equal(t, cli.ExitOK, code)
	assert.Contains(t, errOut, "generated input")
	assert.NotContains(t, errOut, "run: scan start")

	code, _, errOut = invoke(t, "", nil, "-log-level", "debug", "abc")
	require.Equal(t, cli.ExitOK, code)
	assert.Contains(t, errOut, "run: scan start")
	assert.Contains(t, errOut, "run: scan done")

	code, _, errOut = invoke(t, "", nil, "abc")
	require.Equal(t, cli.ExitOK, code)
	assert.Empty(t, errOut, "default level is warn")
}

// TestRun_EnvDefaults verifies environment variables act as flag defaults.
func TestRun_EnvDefaults(t *testing.T) {
	code, out, _ := invoke(t, "3 1 2", map[string]string{"INCRUN_MODE": "ints"})
	require.Equal(t, cli.ExitOK, code)
	assert.Equal(t, "1 3\n1 2\n", out)

	// flags win over the environment
	code, out, _ = invoke(t, "", map[string]string{"INCRUN_MODE": "ints"}, "-mode", "chars", "cab")
	require.Equal(t, cli.ExitOK, code)
	assert.Equal(t, "1 3\nab\n", out)
}

// TestFromEnv covers the environment parser directly.
func TestFromEnv(t *testing.T) {
	cfg := cli.FromEnv(env(nil))
	assert.Equal(t, cli.ModeChars, cfg.Mode)
	assert.Equal(t, cli.FormatText, cfg.Format)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.False(t, cfg.NoColor)

	cfg = cli.FromEnv(env(map[string]string{
		"INCRUN_FORMAT":    "json",
		"INCRUN_LOG_LEVEL": "debug",
		"NO_COLOR":         "1",
	}))
	assert.Equal(t, cli.FormatJSON, cfg.Format)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.NoColor)
}
