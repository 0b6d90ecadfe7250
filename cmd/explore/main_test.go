package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-wumpus/game/wumpus"
	"github.com/beka-birhanu/vinom-wumpus/infrastruture/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeWorld(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "world.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestRunCommand(t *testing.T) {
	t.Run("prints the exploration", func(t *testing.T) {
		path := writeWorld(t, "M44\nA11\nP33\nG22\n")

		out, err := execute(t, "run", "--no-color", path)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.GreaterOrEqual(t, len(lines), 4)
		assert.Equal(t, "Starting at (1, 1)", lines[0])
		assert.Equal(t, "Moving from (1, 1) to (2, 1)", lines[1])
		assert.Contains(t, out, "Gold collected at (2, 2)!")
		assert.Equal(t, "No more safe moves. Agent will stop.", lines[len(lines)-3])
		assert.Equal(t, "Exploration ended.", lines[len(lines)-2])
		assert.Equal(t, "steps: 14, visited: 14, safe: 14, gold: 1", lines[len(lines)-1])
	})

	t.Run("stops at once next to a pit", func(t *testing.T) {
		path := writeWorld(t, "M33\nA11\nP21\n")

		out, err := execute(t, "run", "--no-color", path)
		require.NoError(t, err)
		assert.Equal(t, "Starting at (1, 1)\nNo more safe moves. Agent will stop.\nExploration ended.\nsteps: 1, visited: 1, safe: 1, gold: 0\n", out)
	})

	t.Run("renders the world", func(t *testing.T) {
		path := writeWorld(t, "M22\nP22\n")

		out, err := execute(t, "run", "--no-color", "--render", path)
		require.NoError(t, err)
		assert.Contains(t, out, "P")
		assert.Contains(t, out, "+---+")
	})

	t.Run("reports load errors", func(t *testing.T) {
		path := writeWorld(t, "M44\nX11\n")

		_, err := execute(t, "run", path)
		assert.ErrorIs(t, err, wumpus.ErrUnknownTag)
	})

	t.Run("needs a file", func(t *testing.T) {
		_, err := execute(t, "run")
		assert.Error(t, err)
	})
}

func TestGenerateCommand(t *testing.T) {
	t.Run("writes a loadable world", func(t *testing.T) {
		out, err := execute(t, "generate", "--width", "5", "--height", "3", "--seed", "11", "--gold", "2")
		require.NoError(t, err)

		scenario, err := wumpus.ParseString(out)
		require.NoError(t, err)
		assert.Equal(t, 5, scenario.World.Width())
		assert.Equal(t, 3, scenario.World.Height())
		assert.Len(t, scenario.World.Gold(), 2)
	})

	t.Run("same seed same world", func(t *testing.T) {
		a, err := execute(t, "generate", "--seed", "5")
		require.NoError(t, err)
		b, err := execute(t, "generate", "--seed", "5")
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("writes to a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		out, err := execute(t, "generate", "--seed", "5", "-o", path)
		require.NoError(t, err)
		assert.Contains(t, out, path)

		_, err = wumpus.Load(path)
		assert.NoError(t, err)
	})

	t.Run("rejects worlds the file format cannot hold", func(t *testing.T) {
		_, err := execute(t, "generate", "--width", "12", "--seed", "1")
		assert.ErrorIs(t, err, wumpus.ErrNotEncodable)
	})
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")
	t.Setenv("JWT_ISSUER", "cli-test")

	out, err := execute(t, "token", "--subject", "alice")
	require.NoError(t, err)

	claims, err := token.NewJwtService("cli-secret", "cli-test").Decode(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "alice", claims["sub"])

	_, err = execute(t, "token")
	assert.Error(t, err)
}
