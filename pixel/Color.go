// Package pixel holds the display color format.
package pixel

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Color is a 16-bit RGB565 value, the native format of the panel.
type Color uint16

const (
	Black  Color = 0x0000
	White  Color = 0xFFFF
	Red    Color = 0xF800
	Green  Color = 0x07E0
	Blue   Color = 0x001F
	Purple Color = 0x8010
	Orange Color = 0xFD20
)

// RGB565 packs 8-bit channels.
func RGB565(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// RGB expands the color back to 8-bit channels.
func (c Color) RGB() (r, g, b uint8) {
	r5 := uint8(c>>11) & 0x1F
	g6 := uint8(c>>5) & 0x3F
	b5 := uint8(c) & 0x1F
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

func (c Color) String() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Parse accepts "#rrggbb" hex notation.
func Parse(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid color %q", s)
	}
	r, g, b := c.RGB255()
	return RGB565(r, g, b), nil
}
