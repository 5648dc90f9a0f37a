package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"brickout/internal/component"
	"brickout/internal/physics"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	ss.SetSize(w, h)
	t.Cleanup(ss.Fini)
	return ss
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestCameraCells(t *testing.T) {
	c := NewCamera(800, 600, 80, 30)

	x0, y0, x1, y1, ok := c.Cells(physics.Box(physics.Vec{X: 42.5, Y: 110}, 55, 20))
	if !ok {
		t.Fatal("brick should be on screen")
	}
	if x0 != 1 || x1 != 6 || y0 != 5 || y1 != 5 {
		t.Fatalf("cells = (%d,%d)-(%d,%d); want (1,5)-(6,5)", x0, y0, x1, y1)
	}

	if _, _, _, _, ok := c.Cells(physics.Box(physics.Vec{X: 400, Y: 607.5}, 800, 15)); ok {
		t.Fatal("box below the field must not be drawn")
	}

	if sx, sy, ok := c.WorldToScreen(physics.Vec{X: 400, Y: 300}); !ok || sx != 40 || sy != 15 {
		t.Fatalf("WorldToScreen(centre) = (%d,%d,%v); want (40,15,true)", sx, sy, ok)
	}
}

func TestDrawFrame(t *testing.T) {
	ss := newScreen(t, 80, 32)
	r := NewRenderer(ss, 800, 600)
	w := component.NewWorld()

	w.CreateEntity(
		component.Visible{},
		component.Position{X: 400, Y: 300},
		component.Circle{Radius: 10},
		component.Style{Glyph: 'o', Color: tcell.ColorWhite},
	)
	w.CreateEntity(
		component.Visible{},
		component.Position{X: 42.5, Y: 110},
		component.Rectangle{Width: 55, Height: 20},
		component.Style{Glyph: '#', Color: tcell.ColorRed},
	)
	// Not visible: never drawn.
	w.CreateEntity(
		component.Position{X: 600, Y: 300},
		component.Circle{Radius: 10},
		component.Style{Glyph: 'x'},
	)

	r.DrawFrame(w, HUD{Level: "classic", Round: 1, Bricks: 1, Prompt: "press space"})

	if got, _, _, _ := ss.GetContent(40, 15); got != 'o' {
		t.Errorf("ball cell = %q; want 'o'", got)
	}
	row := rowText(ss, 5)
	if !strings.Contains(row, "######") {
		t.Errorf("brick row = %q; want six brick cells", row)
	}
	if strings.ContainsRune(rowText(ss, 15), 'x') {
		t.Error("entity without Visible was drawn")
	}
	if hud := rowText(ss, 31); !strings.Contains(hud, "classic") || !strings.Contains(hud, "bricks 1") {
		t.Errorf("HUD row = %q", hud)
	}
	if prompt := rowText(ss, 20); !strings.Contains(prompt, "press space") {
		t.Errorf("prompt row = %q", prompt)
	}
}

func TestResizeRefitsCamera(t *testing.T) {
	ss := newScreen(t, 80, 32)
	r := NewRenderer(ss, 800, 600)
	ss.SetSize(160, 62)
	r.Resize()
	if c := r.Camera(); c.Cols != 160 || c.Rows != 60 {
		t.Fatalf("camera = %dx%d; want 160x60", c.Cols, c.Rows)
	}
}
