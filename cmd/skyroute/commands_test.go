package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skyroute/dataset"
)

const scenario = `1
3
0 0 0 1 30 10
1 1 60 2 90 20
2 0 0 2 200 50
0 2 0 200
`

const scenarioReport = `Test Case 1 :
Route 1: 1, 200
Route 2: 30
Route 3: 1, 50

`

const smallConfig = `
log:
  level: error
generate:
  cases: 25
  seed: 11
  network:
    cities: 5
    flights: 14
    max_time: 300
    max_fare: 60
`

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(bytes.NewReader(nil))
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// TestRun_Scenario verifies run prints the report for the three-flight scenario.
func TestRun_Scenario(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "cases.txt", scenario)

	out, err := execute(t, "run", "-i", in)
	require.NoError(t, err)
	assert.Equal(t, scenarioReport, out)
}

// TestRun_MissingInput verifies an unreadable input file is reported as an error.
func TestRun_MissingInput(t *testing.T) {
	_, err := execute(t, "run", "-i", filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

// TestGenerateRunCompare verifies generated cases round-trip through run and compare.
func TestGenerateRunCompare(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "skyroute.yaml", smallConfig)
	cases := filepath.Join(dir, "cases.txt")
	report := filepath.Join(dir, "output.txt")

	_, err := execute(t, "--config", cfg, "generate", "-o", cases, "--cases", "4")
	require.NoError(t, err)

	f, err := os.Open(cases)
	require.NoError(t, err)
	parsed, err := dataset.ReadCases(f)
	require.NoError(t, f.Close())
	require.NoError(t, err)
	require.Len(t, parsed, 4)
	for _, c := range parsed {
		assert.Len(t, c.Flights, 14)
	}

	_, err = execute(t, "--config", cfg, "run", "-i", cases, "-o", report)
	require.NoError(t, err)

	out, err := execute(t, "compare", report, report)
	require.NoError(t, err)
	assert.Contains(t, out, "all test cases match")
}

// TestGenerate_SeedIsDeterministic verifies the same seed reproduces the same cases.
func TestGenerate_SeedIsDeterministic(t *testing.T) {
	cfg := writeFile(t, t.TempDir(), "skyroute.yaml", smallConfig)

	a, err := execute(t, "--config", cfg, "generate", "--seed", "5", "--cases", "2")
	require.NoError(t, err)
	b, err := execute(t, "--config", cfg, "generate", "--seed", "5", "--cases", "2")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestCompare_Mismatch verifies compare surfaces the first differing route line.
func TestCompare_Mismatch(t *testing.T) {
	dir := t.TempDir()
	got := writeFile(t, dir, "output.txt", scenarioReport)
	want := writeFile(t, dir, "model.txt", "Test Case 1 :\nRoute 1: 1, 200\nRoute 2: 31\nRoute 3: 1, 50\n\n")

	_, err := execute(t, "compare", got, want)
	var mm *dataset.Mismatch
	require.ErrorAs(t, err, &mm)
	assert.Equal(t, 2, mm.Route)
	assert.Equal(t, 3, mm.Line)
}

// TestCompare_Args verifies compare requires exactly two files.
func TestCompare_Args(t *testing.T) {
	_, err := execute(t, "compare", "only-one")
	assert.Error(t, err)
}

// TestVerify verifies random cases agree with exhaustive search.
func TestVerify(t *testing.T) {
	cfg := writeFile(t, t.TempDir(), "skyroute.yaml", smallConfig)

	out, err := execute(t, "--config", cfg, "verify")
	require.NoError(t, err)
	assert.Contains(t, out, "25/25 cases passed")

	out, err = execute(t, "--config", cfg, "verify", "--cases", "10", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "10/10 cases passed")
}

// TestVerify_FirstArrivalStop verifies the legacy stop rule still passes the hop-count check.
func TestVerify_FirstArrivalStop(t *testing.T) {
	cfg := writeFile(t, t.TempDir(), "skyroute.yaml", smallConfig+"planner:\n  first_arrival_stop: true\n")

	out, err := execute(t, "--config", cfg, "verify")
	require.NoError(t, err)
	assert.Contains(t, out, "25/25 cases passed")
}

// TestConfigErrors_DoNotPanic verifies out-of-range config and flags fail with errInvalidConfig.
func TestConfigErrors_DoNotPanic(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "cases.txt", scenario)
	badLayover := writeFile(t, dir, "layover.yaml", "planner:\n  layover: -5\n")
	badCases := writeFile(t, dir, "cases.yaml", "generate:\n  cases: -1\n")
	small := writeFile(t, dir, "small.yaml", smallConfig)

	runs := map[string][]string{
		"run negative layover":   {"--config", badLayover, "run", "-i", in},
		"generate negative file": {"--config", badCases, "generate"},
		"generate negative flag": {"generate", "--cases", "-1"},
		"verify negative flag":   {"--config", small, "verify", "--cases", "-1"},
	}
	for name, args := range runs {
		t.Run(name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() { _, err = execute(t, args...) })
			assert.ErrorIs(t, err, errInvalidConfig)
		})
	}
}

// TestGenerate_ZeroCases verifies an empty workload is still a valid file.
func TestGenerate_ZeroCases(t *testing.T) {
	out, err := execute(t, "generate", "--cases", "0")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

// TestRoot_BadLogLevel verifies an unknown --log-level fails before any subcommand runs.
func TestRoot_BadLogLevel(t *testing.T) {
	_, err := execute(t, "--log-level", "chatty", "run")
	assert.Error(t, err)
}

// TestServe_RequiresFlights verifies serve refuses to start without a flight file.
func TestServe_RequiresFlights(t *testing.T) {
	_, err := execute(t, "serve")
	assert.Error(t, err)
}

// TestBuildHandler verifies handler wiring from a case file, with and without cases.
func TestBuildHandler(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	logger, err := cfg.NewLogger(&bytes.Buffer{})
	require.NoError(t, err)
	a := &app{cfg: cfg, logger: logger}

	_, err = buildHandler(a, ServeConfig{Flights: writeFile(t, dir, "empty.txt", "0\n")})
	assert.Error(t, err, "no cases")

	h, err := buildHandler(a, ServeConfig{Flights: writeFile(t, dir, "cases.txt", scenario), Metrics: true})
	require.NoError(t, err)
	assert.NotNil(t, h)
}

// TestWriteOutput verifies file and stdout destinations and error propagation.
func TestWriteOutput(t *testing.T) {
	hello := func(w io.Writer) error {
		_, err := io.WriteString(w, "hello\n")
		return err
	}

	var stdout bytes.Buffer
	require.NoError(t, writeOutput(&stdout, "-", hello))
	assert.Equal(t, "hello\n", stdout.String())

	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, writeOutput(&stdout, path, hello))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))

	boom := errors.New("boom")
	err = writeOutput(&stdout, path, func(io.Writer) error { return boom })
	assert.ErrorIs(t, err, boom, "a write error is not masked by Close")

	err = writeOutput(&stdout, filepath.Join(t.TempDir(), "missing", "out.txt"), hello)
	assert.Error(t, err)
}
