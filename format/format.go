// Package format expands a geometry format string against a selected region.
//
// The format is scanned once, left to right, writing as it goes. A literal
// character is copied through, "%%" emits "%", and "%x %y %X %Y %w %h %b %d"
// emit the region fields. A specifier may carry a rounding prefix, e.g.
// "%[10]x", which rounds the value down to the nearest multiple of the given
// base before printing. An unknown character after "%" is skipped silently.
package format

import (
	"fmt"
	"io"
	"strconv"

	"xrectsel/xselect"
)

// Expand writes the expanded format to w. Output is produced incrementally,
// so on a malformed rounding bracket everything scanned before the error has
// already been written.
func Expand(w io.Writer, format string, region xselect.Region) error {
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			if err := writeByte(w, c); err != nil {
				return err
			}
			continue
		}

		i++
		if i >= len(format) {
			break
		}

		rounding := 0
		if format[i] == '[' {
			n, rest, err := readRounding(format, i+1)
			if err != nil {
				return err
			}
			rounding = n
			i = rest
			if i >= len(format) {
				break
			}
		}

		var err error
		switch format[i] {
		case '%':
			err = writeByte(w, '%')
		case 'x':
			err = writeInt(w, region.X, rounding)
		case 'y':
			err = writeInt(w, region.Y, rounding)
		case 'X':
			err = writeInt(w, region.FromRight, rounding)
		case 'Y':
			err = writeInt(w, region.FromBottom, rounding)
		case 'w':
			err = writeUint(w, region.Width, rounding)
		case 'h':
			err = writeUint(w, region.Height, rounding)
		case 'b':
			err = writeUint(w, region.Border, rounding)
		case 'd':
			err = writeUint(w, region.Depth, rounding)
		default:
			// Unrecognized specifier, skipped without output.
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// readRounding parses the digits of a "[N]" rounding prefix starting just
// after the opening bracket. It returns the parsed base and the index of the
// first character after the closing bracket. A missing closing bracket or a
// non-digit inside the brackets is an error.
func readRounding(format string, start int) (rounding, next int, err error) {
	i := start
	for {
		if i >= len(format) {
			return 0, 0, fmt.Errorf("no matching %q found in format %q", ']', format)
		}
		c := format[i]
		if c == ']' {
			break
		}
		if c < '0' || c > '9' {
			return 0, 0, fmt.Errorf("unexpected character %q in rounding specifier", c)
		}
		i++
	}
	if i == start {
		return 0, i + 1, nil
	}
	n, err := strconv.Atoi(format[start:i])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid rounding value %q: %v", format[start:i], err)
	}
	return n, i + 1, nil
}

// round applies the rounding base to v. Go's integer division truncates
// toward zero, so negative offsets round toward zero as well; a base of 0
// leaves the value unchanged.
func round(v, rounding int) int {
	if rounding > 0 {
		v = (v / rounding) * rounding
	}
	return v
}

func writeInt(w io.Writer, v, rounding int) error {
	_, err := io.WriteString(w, strconv.Itoa(round(v, rounding)))
	return err
}

func writeUint(w io.Writer, v uint, rounding int) error {
	return writeInt(w, int(v), rounding)
}

func writeByte(w io.Writer, c byte) error {
	_, err := w.Write([]byte{c})
	return err
}
