// Package xselect lets the user drag a rubber-band rectangle on an X11
// desktop and reports the resulting geometry. Drawing uses a GXinvert
// graphics context on the root window, so drawing the same rectangle twice
// restores the original pixels and no backing store is needed.
package xselect

import (
	"fmt"
	"log"
	"os"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// tcross glyph in the standard X "cursor" font; the mask glyph follows it.
const tcrossGlyph = 130

// Connect opens the display named by $DISPLAY.
func Connect() (*xgb.Conn, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("failed to open display %q: %v", os.Getenv("DISPLAY"), err)
	}
	return conn, nil
}

// Select grabs the pointer with a crosshair cursor and tracks one drag on
// the root window, drawing a live XOR outline. It blocks until the button
// is released, erases the outline, releases every X resource it acquired,
// and only then queries the root geometry to resolve the region.
func Select(conn *xgb.Conn) (Region, error) {
	screen := xproto.Setup(conn).DefaultScreen(conn)
	root := screen.Root

	cursor, err := createCrossCursor(conn)
	if err != nil {
		return Region{}, err
	}

	const eventMask = xproto.EventMaskPointerMotion |
		xproto.EventMaskButtonPress |
		xproto.EventMaskButtonRelease
	grab, err := xproto.GrabPointer(conn, true, root, uint16(eventMask),
		xproto.GrabModeAsync, xproto.GrabModeAsync,
		xproto.WindowNone, cursor, xproto.TimeCurrentTime).Reply()
	if err != nil {
		xproto.FreeCursor(conn, cursor)
		return Region{}, fmt.Errorf("failed to grab pointer: %v", err)
	}
	if grab.Status != xproto.GrabStatusSuccess {
		xproto.FreeCursor(conn, cursor)
		return Region{}, fmt.Errorf("failed to grab pointer (status %d)", grab.Status)
	}

	gc, err := xproto.NewGcontextId(conn)
	if err != nil {
		xproto.UngrabPointer(conn, xproto.TimeCurrentTime)
		xproto.FreeCursor(conn, cursor)
		return Region{}, fmt.Errorf("failed to allocate graphics context: %v", err)
	}
	xproto.CreateGC(conn, gc, xproto.Drawable(root),
		xproto.GcFunction|xproto.GcLineWidth|xproto.GcSubwindowMode,
		[]uint32{xproto.GxInvert, 1, xproto.SubwindowModeIncludeInferiors})

	var d drag
	sel, err := track(conn, root, gc, &d)

	// Release everything before the geometry query and force a round trip
	// so the outline is guaranteed gone from the screen.
	xproto.UngrabPointer(conn, xproto.TimeCurrentTime)
	xproto.FreeCursor(conn, cursor)
	xproto.FreeGC(conn, gc)
	conn.Sync()

	if err != nil {
		return Region{}, err
	}

	geom, err := xproto.GetGeometry(conn, xproto.Drawable(root)).Reply()
	if err != nil {
		return Region{}, fmt.Errorf("failed to get root window geometry: %v", err)
	}
	return resolve(sel, uint(geom.Width), uint(geom.Height),
		uint(geom.BorderWidth), uint(geom.Depth)), nil
}

// track consumes pointer events until the button is released, keeping the
// XOR outline in sync with the drag, and returns the final rectangle.
func track(conn *xgb.Conn, root xproto.Window, gc xproto.Gcontext, d *drag) (rect, error) {
	for {
		ev, xerr := conn.WaitForEvent()
		if ev == nil && xerr == nil {
			return rect{}, fmt.Errorf("display connection closed during selection")
		}
		if xerr != nil {
			log.Printf("ignoring X error during selection: %v", xerr)
			continue
		}
		switch e := ev.(type) {
		case xproto.ButtonPressEvent:
			d.press(int(e.RootX), int(e.RootY))
		case xproto.MotionNotifyEvent:
			if erase, draw, redraw := d.motion(int(e.RootX), int(e.RootY)); redraw {
				outline(conn, root, gc, erase)
				outline(conn, root, gc, draw)
			}
		case xproto.ButtonReleaseEvent:
			if erase, ok := d.finish(); ok {
				outline(conn, root, gc, erase)
			}
			return d.cur, nil
		}
	}
}

func outline(conn *xgb.Conn, root xproto.Window, gc xproto.Gcontext, r rect) {
	xproto.PolyRectangle(conn, xproto.Drawable(root), gc, []xproto.Rectangle{{
		X:      int16(r.x),
		Y:      int16(r.y),
		Width:  uint16(r.width),
		Height: uint16(r.height),
	}})
}

// createCrossCursor builds the tcross glyph cursor from the standard cursor
// font, black on white.
func createCrossCursor(conn *xgb.Conn) (xproto.Cursor, error) {
	font, err := xproto.NewFontId(conn)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate font id: %v", err)
	}
	const fontName = "cursor"
	if err := xproto.OpenFontChecked(conn, font, uint16(len(fontName)), fontName).Check(); err != nil {
		return 0, fmt.Errorf("failed to open cursor font: %v", err)
	}
	defer xproto.CloseFont(conn, font)

	cursor, err := xproto.NewCursorId(conn)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate cursor id: %v", err)
	}
	err = xproto.CreateGlyphCursorChecked(conn, cursor, font, font,
		tcrossGlyph, tcrossGlyph+1,
		0, 0, 0, 0xffff, 0xffff, 0xffff).Check()
	if err != nil {
		return 0, fmt.Errorf("failed to create crosshair cursor: %v", err)
	}
	return cursor, nil
}
