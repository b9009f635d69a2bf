package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ParseHexColor parses "#rrggbb" (the leading # is optional).
func ParseHexColor(s string) (core.RGB, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return core.RGB{}, fmt.Errorf("color %q must be #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return core.RGB{}, fmt.Errorf("color %q: %w", s, err)
	}
	return core.RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Palette is the parsed set of render colors.
type Palette struct {
	Head     core.RGB
	Apple    core.RGB
	Border   core.RGB
	BorderBG core.RGB
}

// Palette parses the configured colors. Call Validate first; invalid entries
// come back as black.
func (r SnakeRender) Palette() Palette {
	parse := func(s string) core.RGB {
		c, _ := ParseHexColor(s)
		return c
	}
	return Palette{
		Head:     parse(r.HeadColor),
		Apple:    parse(r.AppleColor),
		Border:   parse(r.BorderColor),
		BorderBG: parse(r.BorderBG),
	}
}
