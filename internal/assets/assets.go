// Package assets resolves sprite files for the game's entities.
//
// A sprite file is a small YAML document named after the asset
// (for example spaceship_up.yaml):
//
//	glyph: "▲"
//	color: white
//
// Resolution never fails: a missing or invalid file yields the built-in
// sprite, tagged UsingDefault, and a warning on the operator logger.
// The game only ever sees resolved sprites.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/the-collector/internal/core"
)

// Source tags where a resolved sprite came from.
type Source int

const (
	Found Source = iota
	UsingDefault
)

func (s Source) String() string {
	if s == Found {
		return "found"
	}
	return "default"
}

// Sprite is a resolved visual handle: one terminal cell.
type Sprite struct {
	Glyph rune
	Color core.Color
}

// Resolution is the tagged result of resolving one asset.
type Resolution struct {
	Name   string
	Sprite Sprite
	Source Source
	Err    error // Why the default was used; nil when Found or simply missing
}

// spriteFile is the on-disk shape of a sprite.
type spriteFile struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

var errNotFound = errors.New("not found")

// Resolve looks up name+".yaml" in fsys and falls back to def.
// A nil fsys resolves everything to defaults.
func Resolve(fsys fs.FS, name string, def Sprite) Resolution {
	res := Resolution{Name: name, Sprite: def, Source: UsingDefault}
	if fsys == nil {
		res.Err = errNotFound
		return res
	}

	data, err := fs.ReadFile(fsys, name+".yaml")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = errNotFound
		}
		res.Err = err
		return res
	}

	sprite, err := parseSprite(data, def)
	if err != nil {
		res.Err = err
		return res
	}

	res.Sprite = sprite
	res.Source = Found
	res.Err = nil
	return res
}

func parseSprite(data []byte, def Sprite) (Sprite, error) {
	var f spriteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return def, fmt.Errorf("invalid sprite: %w", err)
	}
	if utf8.RuneCountInString(f.Glyph) != 1 {
		return def, fmt.Errorf("invalid sprite: glyph must be exactly one character, got %q", f.Glyph)
	}
	r, _ := utf8.DecodeRuneInString(f.Glyph)

	color := def.Color
	if f.Color != "" {
		c, ok := core.ParseColor(f.Color)
		if !ok {
			return def, fmt.Errorf("invalid sprite: unknown color %q", f.Color)
		}
		color = c
	}
	return Sprite{Glyph: r, Color: color}, nil
}

// Asset names looked up in the assets directory.
const (
	ShipUp    = "spaceship_up"
	ShipDown  = "spaceship_down"
	ShipLeft  = "spaceship_left"
	ShipRight = "spaceship_right"
	Asteroid  = "asteroid"
	Crate1    = "crate1"
	Crate2    = "crate2"
)

// Built-in shapes, used when an asset cannot be resolved.
var (
	DefaultShip     = Sprite{Glyph: '▲', Color: core.ColorWhite}
	DefaultAsteroid = Sprite{Glyph: '●', Color: core.ColorOrange}
	DefaultCrate    = Sprite{Glyph: '■', Color: core.ColorYellow}
)

// Set holds every sprite the game draws.
type Set struct {
	ShipUp, ShipDown, ShipLeft, ShipRight Sprite
	Asteroid                              Sprite
	Crates                                [2]Sprite
}

// Defaults returns the built-in sprite set without touching any filesystem.
// Each ship direction gets its own default arrow so facing stays visible.
func Defaults() Set {
	return Set{
		ShipUp:    DefaultShip,
		ShipDown:  Sprite{Glyph: '▼', Color: core.ColorWhite},
		ShipLeft:  Sprite{Glyph: '◀', Color: core.ColorWhite},
		ShipRight: Sprite{Glyph: '▶', Color: core.ColorWhite},
		Asteroid:  DefaultAsteroid,
		Crates: [2]Sprite{
			DefaultCrate,
			{Glyph: '▣', Color: core.ColorYellow},
		},
	}
}

// Load resolves the full sprite set from fsys, warning on logger for every
// asset that falls back to its default. logger may be nil.
func Load(fsys fs.FS, logger *log.Logger) (Set, []Resolution) {
	set := Defaults()
	targets := []struct {
		name string
		dst  *Sprite
	}{
		{ShipUp, &set.ShipUp},
		{ShipDown, &set.ShipDown},
		{ShipLeft, &set.ShipLeft},
		{ShipRight, &set.ShipRight},
		{Asteroid, &set.Asteroid},
		{Crate1, &set.Crates[0]},
		{Crate2, &set.Crates[1]},
	}

	results := make([]Resolution, 0, len(targets))
	for _, t := range targets {
		def := *t.dst
		res := Resolve(fsys, t.name, def)
		*t.dst = res.Sprite
		if res.Source == UsingDefault && logger != nil {
			logger.Warn("asset unavailable, using default shape",
				"asset", t.name+".yaml",
				"default", string(def.Glyph),
				"reason", res.Err,
			)
		}
		results = append(results, res)
	}
	return set, results
}
