// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hills = `
heuristic: min-edge
edges:
  START: {A: 1, B: 3, C: 2}
  A: {A1: 1, A2: 2}
  A1: {END: 100}
  A2: {END: 50}
  B: {B1: 3}
  B1: {END: 3}
`

const ridge = `.....
.###.
22222
`

// writeFile stores content in a temp file and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// pathfind runs the CLI and returns the exit code and both streams.
func pathfind(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := execute(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRoute(t *testing.T) {
	graph := writeFile(t, "hills.yaml", hills)

	code, out, errOut := pathfind("route", "--graph", graph, "--from", "START", "--to", "END")
	require.Equal(t, exitFound, code, errOut)
	lines := strings.Split(out, "\n")
	assert.Equal(t, "START -> B -> B1 -> END", lines[0])
	assert.Contains(t, lines[1], "cost 9")

	code, out, _ = pathfind("route", "--graph", graph, "--from", "START", "--to", "END", "--heuristic", "zero")
	require.Equal(t, exitFound, code)
	assert.True(t, strings.HasPrefix(out, "START -> B -> B1 -> END\n"))
}

func TestRoute_JSON(t *testing.T) {
	graph := writeFile(t, "hills.yaml", hills)

	code, out, _ := pathfind("route", "--graph", graph, "--from", "START", "--to", "END", "--json")
	require.Equal(t, exitFound, code)
	var r report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.True(t, r.Found)
	assert.Equal(t, []string{"START", "B", "B1", "END"}, r.Path)
	assert.Equal(t, 9.0, r.Cost)
	assert.Equal(t, 5, r.Iterations)
}

func TestRoute_NoPath(t *testing.T) {
	graph := writeFile(t, "hills.yaml", hills)

	code, out, _ := pathfind("route", "--graph", graph, "--from", "C", "--to", "END")
	assert.Equal(t, exitNoPath, code)
	assert.Contains(t, out, "no path")

	code, out, _ = pathfind("route", "--graph", graph, "--from", "START", "--to", "END", "--max-iterations", "1")
	assert.Equal(t, exitNoPath, code)
	assert.Equal(t, "search halted after 1 iterations\n", out)
}

func TestRoute_Errors(t *testing.T) {
	graph := writeFile(t, "hills.yaml", hills)

	code, _, errOut := pathfind("route", "--graph", graph, "--from", "START", "--to", "NOWHERE")
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, "vertex not found")

	code, _, errOut = pathfind("route", "--graph", graph, "--from", "START")
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, `"to" not set`)

	code, _, _ = pathfind("route", "--graph", filepath.Join(t.TempDir(), "none.yaml"), "--from", "A", "--to", "B")
	assert.Equal(t, exitError, code)

	code, _, _ = pathfind("route", "--graph", graph, "--from", "START", "--to", "END", "--heuristic", "magic")
	assert.Equal(t, exitError, code)

	code, _, errOut = pathfind("route", "--graph", graph, "--from", "START", "--to", "END", "--timeout", "-1s")
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, "--timeout")

	code, out, errOut := pathfind("route", "--graph", graph, "--from", "START", "--to", "END", "--log-format", "xml")
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, `--log-format must be text or json, got "xml"`)
	assert.Empty(t, out, "no search runs")
}

func TestRoute_MetricsFile(t *testing.T) {
	graph := writeFile(t, "hills.yaml", hills)
	metrics := filepath.Join(t.TempDir(), "pathfind.prom")

	code, _, _ := pathfind("route", "--graph", graph, "--from", "START", "--to", "END", "--metrics-file", metrics)
	require.Equal(t, exitFound, code)

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `pathfind_astar_searches_total{outcome="found"} 1`)
	assert.Contains(t, text, "pathfind_astar_iterations_total 5")
}

func TestRoute_Trace(t *testing.T) {
	graph := writeFile(t, "hills.yaml", hills)

	code, _, errOut := pathfind("route", "--graph", graph, "--from", "START", "--to", "END", "--trace", "--log-format", "json")
	require.Equal(t, exitFound, code)

	iterations := 0
	for _, line := range strings.Split(strings.TrimSpace(errOut), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec), line)
		if rec["msg"] == "astar: iteration" {
			iterations++
			assert.NotEmpty(t, rec["run_id"])
		}
	}
	assert.Equal(t, 5, iterations)
}

func TestGrid(t *testing.T) {
	level := writeFile(t, "level.txt", ridge)

	code, out, errOut := pathfind("grid", "--map", level, "--from", "0,1", "--to", "4,1", "--render")
	require.Equal(t, exitFound, code, errOut)
	assert.Contains(t, out, "0,1 -> 0,0 -> 1,0 -> 2,0 -> 3,0 -> 4,0 -> 4,1\n")
	assert.Contains(t, out, "cost 6,")
	assert.Contains(t, out, "*****\n*###*\n22222\n")

	code, out, _ = pathfind("grid", "--map", level, "--from", "0,1", "--to", "4,1", "--diagonal", "--json")
	require.Equal(t, exitFound, code)
	var r report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, []string{"0,1", "1,0", "2,0", "3,0", "4,1"}, r.Path)
}

func TestGrid_Errors(t *testing.T) {
	level := writeFile(t, "level.txt", ridge)

	code, _, errOut := pathfind("grid", "--map", level, "--from", "0", "--to", "4,1")
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, "--from")

	code, _, errOut = pathfind("grid", "--map", level, "--from", "0,1", "--to", "1,1")
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, "not passable")

	bad := writeFile(t, "bad.txt", "..x\n")
	code, _, _ = pathfind("grid", "--map", bad, "--from", "0,0", "--to", "1,0")
	assert.Equal(t, exitError, code)
}

func TestMotion(t *testing.T) {
	code, out, errOut := pathfind("motion", "--min", "0", "--max", "10", "--from", "0", "--to", "4")
	require.Equal(t, exitFound, code, errOut)
	assert.True(t, strings.HasPrefix(out, "0 -> 1 -> 3 -> 4 -> 4\ncost 4,"), out)
	assert.Contains(t, out, "s=3 v=2 a=1\n")
	assert.Contains(t, out, "s=4 v=0 a=-1\n", "final step brakes")

	code, _, errOut = pathfind("motion", "--min", "0,0", "--max", "5", "--from", "0,0", "--to", "4,4")
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, "invalid limits")

	code, out, _ = pathfind("motion", "--min", "0", "--max", "10", "--from", "5", "--to", "0", "--to-velocity", "3")
	assert.Equal(t, exitNoPath, code)
	assert.Contains(t, out, "no path")
}

func TestParseInts(t *testing.T) {
	v, err := parseInts(" 3, -1 ")
	require.NoError(t, err)
	assert.Equal(t, []int{3, -1}, v)

	_, err = parseInts("")
	assert.Error(t, err)
	_, err = parseInts("1,x")
	assert.Error(t, err)
}
