package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/internal/config"
	"github.com/katalvlaran/mincut/internal/logger"
)

func testApp(t *testing.T, out *bytes.Buffer) *app {
	t.Helper()
	cfg, err := config.NewLoader(config.WithConfigPaths()).Load()
	require.NoError(t, err)

	return &app{cfg: cfg, log: logger.Discard(), stdout: out}
}

func TestGenerateCmd_RejectsInvalidOverrides(t *testing.T) {
	one, two := 1, 2.0
	zero := int64(0)

	cases := map[string]generateCmd{
		"single cluster":   {Clusters: &one},
		"probability > 1":  {Probability: &two},
		"non-positive max": {MaxWeight: &zero},
	}
	for name, cmd := range cases {
		var out bytes.Buffer
		err := cmd.Run(testApp(t, &out))
		assert.ErrorContains(t, err, "invalid generate settings", name)
		assert.Empty(t, out.String(), name)
	}
}

func TestGenerateCmd_OverridesConfig(t *testing.T) {
	clusters, size, bridges := 3, 3, 1
	var out bytes.Buffer
	cmd := generateCmd{Clusters: &clusters, ClusterSize: &size, Bridges: &bridges, Prefix: "v"}
	require.NoError(t, cmd.Run(testApp(t, &out)))

	// Three triangles plus one bridge between each consecutive pair.
	assert.Equal(t, 3*3+2, bytes.Count(out.Bytes(), []byte("\n")))
	assert.Contains(t, out.String(), "v0 v1 1\n")
}

func TestGenerate_CLIRejectsSingleCluster(t *testing.T) {
	code, out, stderr := execute(t, "", "generate", "--clusters", "1")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "generate.clusters")

	code, _, stderr = execute(t, "", "generate", "--clusters", "0", "--probability", "2")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "generate.probability")
}
