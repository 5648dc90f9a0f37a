// Package level turns brick layouts described in YAML into the list of
// bricks to spawn. A layout is a grid of rows; every '#' in a row's
// pattern is a brick and any other character leaves a gap.
package level

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"

	"brickout/assets"
	"brickout/internal/config"
	"brickout/internal/physics"
)

// BrickCell is the pattern character that places a brick.
const BrickCell = '#'

type Layout struct {
	Name string  `yaml:"name"`
	Top  float64 `yaml:"top"` // y of the first row's upper edge
	Rows []Row   `yaml:"rows"`
}

type Row struct {
	Pattern string `yaml:"pattern"`
	Color   string `yaml:"color"`
}

// Brick is one brick to spawn.
type Brick struct {
	Center physics.Vec
	Color  tcell.Color
}

// Load decodes a layout from r.
func Load(r io.Reader) (*Layout, error) {
	var l Layout
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	if len(l.Rows) == 0 {
		return nil, fmt.Errorf("layout %q has no rows", l.Name)
	}
	return &l, nil
}

// LoadFile reads a layout from disk.
func LoadFile(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open layout %s: %w", path, err)
	}
	defer f.Close()
	l, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", path, err)
	}
	return l, nil
}

// Builtin loads one of the layouts embedded in the binary.
func Builtin(name string) (*Layout, error) {
	f, err := assets.Levels.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open builtin layout %s: %w", name, err)
	}
	defer f.Close()
	return Load(f)
}

// Resolve returns the layout for path: the built-in default when path is
// empty, a built-in layout when path names one ("pyramid"), otherwise the
// YAML file at path.
func Resolve(path string) (*Layout, error) {
	if path == "" {
		return Builtin(assets.DefaultLevel)
	}
	if name := "levels/" + path + ".yaml"; fs.ValidPath(name) {
		if _, err := fs.Stat(assets.Levels, name); err == nil {
			return Builtin(name)
		}
	}
	return LoadFile(path)
}

// Columns returns how many bricks fit side by side between the walls.
func Columns(cfg *config.Config) int {
	return int((cfg.Window.Width - 2*cfg.Window.Border) / cfg.Brick.Width)
}

// Bricks lays l out on the play field described by cfg. Columns start at
// the left wall; rows start at l.Top.
func (l *Layout) Bricks(cfg *config.Config) ([]Brick, error) {
	cols := Columns(cfg)
	w, h := cfg.Brick.Width, cfg.Brick.Height

	var out []Brick
	for j, row := range l.Rows {
		cells := []rune(row.Pattern)
		if len(cells) > cols {
			return nil, fmt.Errorf("layout %q row %d: %d cells but only %d columns fit", l.Name, j, len(cells), cols)
		}
		color := tcell.ColorWhite
		if row.Color != "" {
			color = tcell.GetColor(strings.ToLower(row.Color))
			if color == tcell.ColorDefault {
				return nil, fmt.Errorf("layout %q row %d: unknown color %q", l.Name, j, row.Color)
			}
		}
		y := l.Top + float64(j)*h + h/2
		if y+h/2 > cfg.Window.Height {
			return nil, fmt.Errorf("layout %q row %d lies below the window", l.Name, j)
		}
		for i, c := range cells {
			if c != BrickCell {
				continue
			}
			x := cfg.Window.Border + float64(i)*w + w/2
			out = append(out, Brick{Center: physics.Vec{X: x, Y: y}, Color: color})
		}
	}
	return out, nil
}
