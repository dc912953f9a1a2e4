package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColorFormat is returned when a hex color cannot be decoded
var ErrInvalidColorFormat = errors.New("invalid color format")

// RGB is a color as three channels in [0,255].
// Serialized as a JSON array so deck.gl can consume it directly.
type RGB [3]int

// HexToRGB converts "#RRGGBB" (leading '#' optional) to its RGB channels.
// The digits are split into three equal groups and each group is parsed as base 16.
// A three-digit value decodes one digit per channel ("#F00" is (15, 0, 0)).
func HexToRGB(value string) (RGB, error) {
	hex := strings.TrimPrefix(value, "#")
	n := len(hex)
	if n == 0 || n%3 != 0 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, value)
	}

	step := n / 3
	var rgb RGB
	for i := 0; i < 3; i++ {
		channel, err := strconv.ParseUint(hex[i*step:(i+1)*step], 16, 64)
		if err != nil || channel > 255 {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, value)
		}
		rgb[i] = int(channel)
	}
	return rgb, nil
}

// MustHexToRGB is HexToRGB for compile-time constants. Panics on invalid input.
func MustHexToRGB(value string) RGB {
	rgb, err := HexToRGB(value)
	if err != nil {
		panic(err)
	}
	return rgb
}
