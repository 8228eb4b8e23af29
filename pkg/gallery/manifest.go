package gallery

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/pixelgrid/overlaykit/pkg/errors"
	"github.com/pixelgrid/overlaykit/pkg/overlay"
)

// =============================================================================
// Manifest - TOML Gallery Declarations
// =============================================================================

// A gallery manifest declares a container, optional sizing defaults,
// entries, and overlay controls in TOML:
//
//	[container]
//	width = 400
//	height = 300
//
//	[defaults]
//	button_size = 44
//	gap = 4
//	offset = "12px"
//
//	[[entries]]
//	kind = "item"
//	source = "beach.jpg"
//
//	[[entries]]
//	kind = "placeholder"
//
//	[[controls]]
//	kind = "favorite"
//	position = "top-right"
//
//	[[controls]]
//	kind = "delete"
//	position = "top-right"
//	direction = "down"
type manifest struct {
	Container struct {
		Width  float64 `toml:"width"`
		Height float64 `toml:"height"`
	} `toml:"container"`
	Defaults struct {
		ButtonSize float64 `toml:"button_size"`
		Gap        float64 `toml:"gap"`
		Offset     string  `toml:"offset"`
	} `toml:"defaults"`
	Entries  []manifestEntry   `toml:"entries"`
	Controls []manifestControl `toml:"controls"`
}

type manifestEntry struct {
	Kind   string `toml:"kind"`
	Source string `toml:"source"`
	Alt    string `toml:"alt"`
}

type manifestControl struct {
	Kind       string  `toml:"kind"`
	Position   string  `toml:"position"`
	Direction  string  `toml:"direction"`
	ButtonSize float64 `toml:"button_size"`
	Gap        float64 `toml:"gap"`
	Offset     string  `toml:"offset"`
}

// ParseManifest parses a TOML gallery manifest into a validated Gallery.
func ParseManifest(data []byte) (Gallery, error) {
	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return Gallery{}, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse gallery manifest")
	}

	g := Gallery{
		Container: overlay.Size{Width: m.Container.Width, Height: m.Container.Height},
	}

	for _, e := range m.Entries {
		kind := e.Kind
		if kind == "" {
			kind = EntryItem
		}
		g.Entries = append(g.Entries, Entry{Kind: kind, Source: e.Source, Alt: e.Alt})
	}

	for _, mc := range m.Controls {
		pos, err := overlay.ParsePosition(mc.Position)
		if err != nil {
			return Gallery{}, errors.Wrap(errors.ErrCodeInvalidManifest, err, "control %q", mc.Kind)
		}

		c := Control{
			Kind:       ControlKind(mc.Kind),
			Position:   pos,
			ButtonSize: firstNonZero(mc.ButtonSize, m.Defaults.ButtonSize),
			Gap:        firstNonZero(mc.Gap, m.Defaults.Gap),
			Offset:     firstNonEmpty(mc.Offset, m.Defaults.Offset),
		}
		if mc.Direction != "" {
			dir, err := overlay.ParseDirection(mc.Direction)
			if err != nil {
				return Gallery{}, errors.Wrap(errors.ErrCodeInvalidManifest, err, "control %q", mc.Kind)
			}
			c.Direction = dir.Ptr()
		}
		g.Controls = append(g.Controls, c)
	}

	if err := g.Validate(); err != nil {
		return Gallery{}, err
	}
	return g, nil
}

// LoadManifest reads and parses a TOML gallery manifest file.
func LoadManifest(path string) (Gallery, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Gallery{}, errors.Wrap(errors.ErrCodeInvalidManifest, err, "read %s", path)
	}
	return ParseManifest(data)
}

func firstNonZero(values ...float64) float64 {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
