package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigShowsDefaults(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("config")
	env.contains(out, "defaults.quality: 5")
	env.contains(out, "defaults.theme_color: 1976D2")
	env.contains(out, "defaults.splashscreen_icon_ratio: 40")
}

func TestConfigSetAndGet(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("config", "defaults.quality", "9")
	env.contains(out, "defaults.quality = 9 (global)")

	out = env.run("config", "defaults.quality")
	env.contains(out, "9")

	// The global config file is created under HOME.
	_, err := os.Stat(filepath.Join(env.home, ".iconforge", "config.yaml"))
	assert.NoError(t, err)
}

func TestConfigLocalScope(t *testing.T) {
	env := newTestEnv(t)

	env.run("config", "defaults.quality", "9")

	out := env.run("config", "defaults.quality", "3", "--local")
	env.contains(out, "(local)")

	_, err := os.Stat(filepath.Join(env.dir, ".iconforge", "config.yaml"))
	assert.NoError(t, err)

	// Local takes precedence over global on read.
	out = env.run("config", "defaults.quality")
	env.contains(out, "3")
}

func TestConfigRejectsInvalidValues(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runErr("config", "defaults.quality", "0")
	require.Error(t, err)
	env.contains(out, "between 1 and 12")

	out, err = env.runErr("config", "defaults.theme_color", "notahex")
	require.Error(t, err)
	env.contains(out, "hex colour")
}

func TestConfigRejectsUnknownKey(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runErr("config", "defaults.nonsense")
	require.Error(t, err)
	env.contains(out, "unknown config key")
}

func TestConfigDefaultsFlowIntoGeneration(t *testing.T) {
	env := newTestEnv(t)
	env.writePNG(filepath.Join(env.dir, "logo.png"), 64, 64)

	env.run("config", "defaults.theme_color", "ABCDEF")

	out := env.run("verify", "--icon", "logo.png", "--output", "dist", "-o", "json")
	env.contains(out, `"#ABCDEF"`)
}
