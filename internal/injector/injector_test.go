package injector

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/scene/internal/config"
)

func TestInitializeScene(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "messages.jsonl")
	cfgPath := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log:\n  level: silent\nbridge:\n  output: "+out+"\n"), 0o600))

	scene, cleanup, err := InitializeScene(ConfigPath(cfgPath), nil)
	require.NoError(t, err)
	defer cleanup()

	require.NoError(t, scene.Engine().AddEntity(scene.Engine().NewEntity("probe")))
	scene.Step(0)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"addEntity"`)
}

func TestInitializeSceneRejectsBadConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("bridge:\n  codec: xml\n"), 0o600))

	_, _, err := InitializeScene(ConfigPath(cfgPath), nil)
	assert.Error(t, err)
}

func TestOverridesAreValidated(t *testing.T) {
	_, _, err := InitializeScene("", func(cfg *config.Config) {
		cfg.Log.Level = "silent"
		cfg.Bridge.Output = "discard"
		cfg.Engine.Ticks = -1
	})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	scene, cleanup, err := InitializeScene("", func(cfg *config.Config) {
		cfg.Log.Level = "silent"
		cfg.Bridge.Output = "discard"
		cfg.Engine.IDs = "uuid"
	})
	require.NoError(t, err)
	defer cleanup()
	assert.Len(t, scene.Engine().Systems(), 4)
}
