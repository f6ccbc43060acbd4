package assets

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/the-collector/internal/core"
)

func TestResolve(t *testing.T) {
	fsys := fstest.MapFS{
		"asteroid.yaml":       {Data: []byte("glyph: \"*\"\ncolor: gray\n")},
		"crate1.yaml":         {Data: []byte("glyph: \"$\"\n")},
		"crate2.yaml":         {Data: []byte("glyph: \"ab\"\n")},
		"spaceship_up.yaml":   {Data: []byte("glyph: [\n")},
		"spaceship_down.yaml": {Data: []byte("glyph: \"v\"\ncolor: plaid\n")},
	}

	tests := []struct {
		name   string
		asset  string
		source Source
		glyph  rune
		color  core.Color
	}{
		{"found with color", Asteroid, Found, '*', core.ColorGray},
		{"found keeps default color", Crate1, Found, '$', DefaultCrate.Color},
		{"too many runes", Crate2, UsingDefault, DefaultCrate.Glyph, DefaultCrate.Color},
		{"malformed yaml", ShipUp, UsingDefault, DefaultShip.Glyph, DefaultShip.Color},
		{"unknown color", ShipDown, UsingDefault, DefaultShip.Glyph, DefaultShip.Color},
		{"missing file", ShipLeft, UsingDefault, DefaultShip.Glyph, DefaultShip.Color},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			def := DefaultShip
			if tc.asset == Crate1 || tc.asset == Crate2 {
				def = DefaultCrate
			}
			if tc.asset == Asteroid {
				def = DefaultAsteroid
			}

			res := Resolve(fsys, tc.asset, def)
			if res.Source != tc.source {
				t.Errorf("Source = %v, expected %v (err: %v)", res.Source, tc.source, res.Err)
			}
			if res.Sprite.Glyph != tc.glyph || res.Sprite.Color != tc.color {
				t.Errorf("Sprite = %q/%v, expected %q/%v", res.Sprite.Glyph, res.Sprite.Color, tc.glyph, tc.color)
			}
			if res.Source == UsingDefault && res.Err == nil {
				t.Error("default resolution should carry a reason")
			}
		})
	}
}

func TestResolveNilFS(t *testing.T) {
	res := Resolve(nil, Asteroid, DefaultAsteroid)
	if res.Source != UsingDefault || res.Sprite != DefaultAsteroid {
		t.Errorf("nil filesystem should resolve to default, got %+v", res)
	}
}

func TestLoadWarnsForEveryFallback(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	fsys := fstest.MapFS{
		"crate2.yaml": {Data: []byte("glyph: \"%\"\n")},
	}

	set, results := Load(fsys, logger)

	if len(results) != 7 {
		t.Fatalf("expected 7 resolutions, got %d", len(results))
	}
	if set.Crates[1].Glyph != '%' {
		t.Errorf("crate2 should come from the file, got %q", set.Crates[1].Glyph)
	}
	if set.ShipRight != Defaults().ShipRight {
		t.Errorf("missing ship sprite should use default, got %+v", set.ShipRight)
	}

	warnings := strings.Count(buf.String(), "asset unavailable")
	if warnings != 6 {
		t.Errorf("expected 6 warnings, got %d:\n%s", warnings, buf.String())
	}
	if strings.Contains(buf.String(), "crate2.yaml") {
		t.Error("resolved asset should not be warned about")
	}
}
