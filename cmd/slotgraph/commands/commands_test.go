// SPDX-License-Identifier: MIT
package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slotgraph/cmd/slotgraph/commands"
	"github.com/katalvlaran/slotgraph/core"
	"github.com/katalvlaran/slotgraph/internal/index"
)

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	root := commands.NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--no-color"}, args...))
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRoutes_Path(t *testing.T) {
	out, _, err := run(t, "routes", "path", "a", "E")
	require.NoError(t, err)
	assert.Contains(t, out, "cost: 9")
	assert.Contains(t, out, "path: A -> C -> E")

	out, _, err = run(t, "routes", "path", "A", "E", "--tie-break", "last")
	require.NoError(t, err)
	assert.Contains(t, out, "path: A -> C -> E")

	out, _, err = run(t, "routes", "path", "A", "E", "--replace-ties")
	require.NoError(t, err)
	assert.Contains(t, out, "cost: 9")
	assert.Contains(t, out, "path: A -> C -> D -> E")

	out, _, err = run(t, "routes", "path", "E", "#0")
	require.NoError(t, err)
	assert.Contains(t, out, "no route from E (#4) to A (#0)")

	_, _, err = run(t, "routes", "path", "A", "E", "--tie-break", "middle")
	assert.ErrorContains(t, err, "--tie-break")

	_, _, err = run(t, "routes", "path", "A", "Z")
	assert.ErrorIs(t, err, index.ErrUnknownLabel)
}

func TestRoutes_ListAndDump(t *testing.T) {
	out, _, err := run(t, "routes", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "== Cities ==")
	assert.Contains(t, out, "#4   E")

	out, _, err = run(t, "routes", "dump")
	require.NoError(t, err)
	assert.Contains(t, out, "  -> D (#3)  cost 10")
	assert.Contains(t, out, "no outgoing routes")
}

func TestSocial_Commands(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"social", "list"}, "#5   Frank"},
		{[]string{"social", "friends", "David"}, "  - Eve (#4)\n  - Charlie (#2)\n  - Bob (#1)\n"},
		{[]string{"social", "bfs", "Alice"}, "  level 3  Eve (#4)"},
		{[]string{"social", "dfs", "Alice"}, "  Alice, Charlie, David, Eve, Bob"},
		{[]string{"social", "group", "David"}, "  David, Eve, Charlie, Alice, Bob"},
		{[]string{"social", "groups"}, "== Groups (2) =="},
		{[]string{"social", "suggest", "alice"}, "  - David (#3) via Charlie"},
		{[]string{"social", "suggest", "Frank"}, "no suggestions right now"},
		{[]string{"social", "connected", "Alice", "Frank"}, "not connected"},
	}
	for _, tc := range cases {
		t.Run(tc.args[1], func(t *testing.T) {
			out, _, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tc.want)
		})
	}
}

func TestSocial_BFSMaxDepth(t *testing.T) {
	out, _, err := run(t, "social", "bfs", "Alice", "--max-depth", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "level 1  Bob (#1)")
	assert.NotContains(t, out, "David")
}

func TestSocial_Errors(t *testing.T) {
	_, _, err := run(t, "social", "friends", "#9")
	assert.ErrorIs(t, err, core.ErrInvalidVertex)

	_, _, err = run(t, "social", "bfs")
	assert.ErrorContains(t, err, "accepts 1 arg(s)")
}

func TestScenarioFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "net.yaml")
	doc := "kind: social\nvertices: [Ann, Ben, Cid]\nedges:\n  - {from: Ann, to: Ben}\n  - {from: Ben, to: Cid}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, _, err := run(t, "--scenario", path, "social", "suggest", "Ann")
	require.NoError(t, err)
	assert.Contains(t, out, "Cid (#2) via Ben")

	_, _, err = run(t, "--scenario", path, "routes", "list")
	assert.ErrorIs(t, err, commands.ErrKindMismatch)
}

func TestTraceAndMetrics(t *testing.T) {
	metricsPath := filepath.Join(t.TempDir(), "out.prom")

	_, stderr, err := run(t, "--trace", "--metrics-out", metricsPath, "routes", "path", "A", "D")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"Name":"Network.path"`)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `slotgraph_operations_total{op="path",result="ok"} 1`)
	assert.Contains(t, string(data), `slotgraph_active_vertices{kind="routes"} 5`)
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := run(t, "--log-level", "debug", "--log-format", "json", "social", "groups")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"configured"`)
	assert.Contains(t, stderr, `"op":"components"`)

	_, _, err = run(t, "--log-level", "chatty", "social", "groups")
	assert.ErrorContains(t, err, "bad log level")
}
