// Package asset holds the sprite sheet: per-kind sizes and outlines.
package asset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tomz197/spaaace/internal/object"
	"github.com/tomz197/spaaace/internal/physics"
)

// Size is the bounding width and height of a sprite in arena units.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Sprite describes how a kind looks and how much room it takes.
type Sprite struct {
	Size
	// Outline is a closed polygon in unit space ([-0.5, 0.5] on both axes),
	// scaled by the sprite size when drawn.
	Outline []physics.Vector2d
}

var (
	// Ships: the player points up, enemies point down.
	playerOutline = []physics.Vector2d{
		{X: 0, Y: -0.5}, {X: 0.5, Y: 0.4}, {X: 0.15, Y: 0.2}, {X: -0.15, Y: 0.2}, {X: -0.5, Y: 0.4},
	}
	dartOutline = []physics.Vector2d{
		{X: -0.5, Y: -0.5}, {X: 0.5, Y: -0.5}, {X: 0, Y: 0.5},
	}
	wingOutline = []physics.Vector2d{
		{X: -0.5, Y: -0.3}, {X: -0.2, Y: -0.5}, {X: 0.2, Y: -0.5}, {X: 0.5, Y: -0.3}, {X: 0, Y: 0.5},
	}
	hullOutline = []physics.Vector2d{
		{X: -0.5, Y: -0.5}, {X: 0.5, Y: -0.5}, {X: 0.5, Y: 0.1}, {X: 0, Y: 0.5}, {X: -0.5, Y: 0.1},
	}
	diamondOutline = []physics.Vector2d{
		{X: 0, Y: -0.5}, {X: 0.5, Y: 0}, {X: 0, Y: 0.5}, {X: -0.5, Y: 0},
	}
	boltOutline = []physics.Vector2d{
		{X: -0.5, Y: -0.5}, {X: 0.5, Y: -0.5}, {X: 0.5, Y: 0.5}, {X: -0.5, Y: 0.5},
	}
)

// defaultSprites match the pixel sizes of the ship artwork.
var defaultSprites = map[object.Kind]Sprite{
	object.KindPlayer:           {Size: Size{Width: 50, Height: 40}, Outline: playerOutline},
	object.KindShip1:            {Size: Size{Width: 40, Height: 32}, Outline: dartOutline},
	object.KindShip2:            {Size: Size{Width: 44, Height: 36}, Outline: wingOutline},
	object.KindShip3:            {Size: Size{Width: 48, Height: 36}, Outline: diamondOutline},
	object.KindShip4:            {Size: Size{Width: 52, Height: 40}, Outline: hullOutline},
	object.KindPlayerProjectile: {Size: Size{Width: 6, Height: 18}, Outline: boltOutline},
	object.KindEnemyProjectile:  {Size: Size{Width: 8, Height: 14}, Outline: boltOutline},
}

// Sheet is the sprite lookup used for collision boxes, clamping and drawing.
// It implements object.Metrics.
type Sheet struct {
	sprites map[object.Kind]Sprite
}

var _ object.Metrics = (*Sheet)(nil)

// DefaultSheet returns the built-in sprites.
func DefaultSheet() *Sheet {
	sheet, err := NewSheet(nil)
	if err != nil {
		panic(err) // Built-in table is complete
	}
	return sheet
}

// NewSheet builds a sheet from the built-in sprites with the sizes in
// overrides (keyed by kind name) applied on top. Every kind must end up
// with a positive width and height.
func NewSheet(overrides map[string]Size) (*Sheet, error) {
	sprites := make(map[object.Kind]Sprite, len(defaultSprites))
	for k, s := range defaultSprites {
		sprites[k] = s
	}

	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		kind, ok := object.ParseKind(name)
		if !ok {
			return nil, fmt.Errorf("unknown sprite %q (want one of %s)", name, kindNames())
		}
		s := sprites[kind]
		s.Size = overrides[name]
		sprites[kind] = s
	}

	for _, kind := range object.Kinds() {
		s, ok := sprites[kind]
		if !ok {
			return nil, fmt.Errorf("missing sprite for %s", kind)
		}
		if s.Width <= 0 || s.Height <= 0 {
			return nil, fmt.Errorf("sprite %s: size %gx%g must be positive", kind, s.Width, s.Height)
		}
	}

	return &Sheet{sprites: sprites}, nil
}

// Size returns the bounding size of kind k.
func (s *Sheet) Size(k object.Kind) (w, h float64) {
	sp := s.sprites[k]
	return sp.Width, sp.Height
}

// Sprite returns the full sprite of kind k.
func (s *Sheet) Sprite(k object.Kind) Sprite {
	return s.sprites[k]
}

func kindNames() string {
	var names []string
	for _, k := range object.Kinds() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}
