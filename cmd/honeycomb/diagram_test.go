package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"who-brings-what/pkg/hexmap"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseHex(t *testing.T) {
	h, err := parseHex("2,-1")
	require.NoError(t, err)
	assert.Equal(t, hexmap.Hex{Q: 2, R: -1}, h)

	h, err = parseHex(" -3 , 0 ")
	require.NoError(t, err)
	assert.Equal(t, hexmap.Hex{Q: -3, R: 0}, h)

	for _, bad := range []string{"", "1", "1,2,3", "a,1", "1,b"} {
		_, err := parseHex(bad)
		assert.Error(t, err, bad)
	}
}

func TestDiagramCommand(t *testing.T) {
	out, err := runCLI(t, "diagram", "--select", "1,0", "--select", "0,-1", "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "<svg")
	assert.Equal(t, 91, strings.Count(out, "<polygon"))
	assert.Equal(t, 2, strings.Count(out, `fill="#2196f3"`))
	assert.Contains(t, out, `data-hex="0,0"`)
}

func TestDiagramCommandRadiusAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hc.svg")
	_, err := runCLI(t, "diagram", "--radius", "1", "--orientation", "flat-top", "--out", path, "--log-level", "error")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 7, strings.Count(string(data), "<polygon"))
}

func TestDiagramCommandErrors(t *testing.T) {
	_, err := runCLI(t, "diagram", "--orientation", "sideways", "--log-level", "error")
	assert.ErrorIs(t, err, hexmap.ErrInvalidOrientation)

	_, err = runCLI(t, "diagram", "--select", "9,0", "--log-level", "error")
	assert.ErrorIs(t, err, hexmap.ErrOutOfRange)

	_, err = runCLI(t, "diagram", "--radius", "-1", "--log-level", "error")
	assert.ErrorIs(t, err, hexmap.ErrInvalidRadius)
}

func TestBuildStateMachine(t *testing.T) {
	cfg, err := (&rootOptions{logLevel: "error"}).load()
	require.NoError(t, err)

	sm, err := buildStateMachine(cfg)
	require.NoError(t, err)
	assert.NotNil(t, sm.Current())

	cfg.Board.Grid = "octagon"
	_, err = buildStateMachine(cfg)
	assert.Error(t, err)
}
