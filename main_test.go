package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPipeline(t *testing.T) {
	dir := t.TempDir()
	missionPath := filepath.Join(dir, "mission.txt")
	searchPath := filepath.Join(dir, "search.txt")
	boundsPath := filepath.Join(dir, "bounds.txt")
	outPath := filepath.Join(dir, "out.txt")

	require.NoError(t, os.WriteFile(missionPath,
		[]byte("1,38.1478,-76.4281,100\n2,38.1483,-76.4276,120\n"), 0o644))
	require.NoError(t, os.WriteFile(searchPath,
		[]byte("1,38.1478,-76.4281\n2,38.1478,-76.4271\n3,38.1488,-76.4271\n4,38.1488,-76.4281\n"), 0o644))
	require.NoError(t, os.WriteFile(boundsPath,
		[]byte("1,38.1468,-76.4291\n2,38.1468,-76.4261\n3,38.1498,-76.4261\n4,38.1498,-76.4291\n"), 0o644))

	require.NoError(t, runPipeline(missionPath, searchPath, boundsPath, outPath, "decomp", 0))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	out := string(data)

	// One flat comma-separated stream of ordinal,lat,lon,alt records,
	// starting with the echoed mission points.
	assert.True(t, strings.HasPrefix(out, "1,38.1478000,-76.4281000,100,2,"), "got %q", out)
	tokens := strings.Split(out, ",")
	require.Zero(t, len(tokens)%4, "token count %d is not a whole number of records", len(tokens))
	// Two mission records plus at least one pair of search waypoints.
	assert.GreaterOrEqual(t, len(tokens)/4, 4)
}

func TestRunPipelineMissingInput(t *testing.T) {
	dir := t.TempDir()
	err := runPipeline(
		filepath.Join(dir, "nope.txt"),
		filepath.Join(dir, "nope.txt"),
		filepath.Join(dir, "nope.txt"),
		filepath.Join(dir, "out.txt"), "decomp", 0)
	require.Error(t, err)
	// Nothing gets written on failure.
	_, statErr := os.Stat(filepath.Join(dir, "out.txt"))
	assert.True(t, os.IsNotExist(statErr))
}
