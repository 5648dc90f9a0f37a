package level

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brickout/internal/config"
	"brickout/internal/physics"
)

func TestClassicLayoutMatchesOriginalGrid(t *testing.T) {
	cfg := config.Default()
	l, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "classic", l.Name)

	bricks, err := l.Bricks(cfg)
	require.NoError(t, err)
	require.Len(t, bricks, 14*6)

	assert.Equal(t, physics.Vec{X: 15 + 27.5, Y: 110}, bricks[0].Center)
	last := bricks[len(bricks)-1]
	assert.Equal(t, physics.Vec{X: 15 + 13*55 + 27.5, Y: 100 + 5*20 + 10}, last.Center)
	assert.Equal(t, tcell.GetColor("red"), bricks[0].Color)
}

func TestBuiltinLayoutsLoad(t *testing.T) {
	cfg := config.Default()
	for _, name := range []string{"levels/classic.yaml", "levels/pyramid.yaml"} {
		l, err := Builtin(name)
		require.NoError(t, err, name)
		_, err = l.Bricks(cfg)
		require.NoError(t, err, name)
	}
}

func TestGapsAreSkipped(t *testing.T) {
	l, err := Load(strings.NewReader(`
name: sparse
top: 50
rows:
  - pattern: "#.#"
    color: Green
`))
	require.NoError(t, err)

	bricks, err := l.Bricks(config.Default())
	require.NoError(t, err)
	require.Len(t, bricks, 2)
	assert.Equal(t, 15+27.5, bricks[0].Center.X)
	assert.Equal(t, 15+2*55+27.5, bricks[1].Center.X)
	assert.Equal(t, tcell.ColorGreen, bricks[0].Color)
}

func TestLayoutErrors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"too wide", "rows:\n  - pattern: \"###############\"\n", "columns fit"},
		{"bad color", "rows:\n  - pattern: \"#\"\n    color: notacolor\n", "unknown color"},
		{"below window", "top: 590\nrows:\n  - pattern: \"#\"\n", "below the window"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := Load(strings.NewReader(tc.yaml))
			require.NoError(t, err)
			_, err = l.Bricks(config.Default())
			assert.ErrorContains(t, err, tc.want)
		})
	}
}

func TestLoadRejectsMalformed(t *testing.T) {
	_, err := Load(strings.NewReader("rows: []\n"))
	assert.ErrorContains(t, err, "no rows")

	_, err = Load(strings.NewReader("rowz:\n  - pattern: \"#\"\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = LoadFile("does-not-exist.yaml")
	assert.ErrorContains(t, err, "open layout")
}

func TestResolveBuiltinByName(t *testing.T) {
	l, err := Resolve("pyramid")
	require.NoError(t, err)
	assert.Equal(t, "pyramid", l.Name)

	_, err = Resolve("no-such-level")
	assert.Error(t, err)
}
