package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGuideMainPage(t *testing.T) {
	env := newTestEnv(t)

	// Piped output gets raw markdown, not glamour rendering.
	out := env.run("guide")
	env.contains(out, "# iconforge")
	env.contains(out, "generate")
}

func TestGuideTopic(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("guide", "generate")
	env.contains(out, "--quality")
	env.contains(out, "--padding")
}

func TestGuideUnknownTopic(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runErr("guide", "nonsense")
	require.Error(t, err)
	env.contains(out, "not found")
	env.contains(out, "Available:")
}

func TestVersionCommand(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("version")
	env.contains(out, "Build Tag:")
	env.contains(out, "Go Version:")

	out = env.run("version", "-o", "json")
	env.contains(out, `"build_tag"`)
}

func TestInvalidOutputFormat(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runErr("modes", "-o", "xml")
	require.Error(t, err)
	env.contains(out, "invalid output format")
}
