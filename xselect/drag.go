package xselect

// rect is a drawable rectangle in root-window coordinates.
type rect struct {
	x, y          int
	width, height uint
}

// drag tracks a single press/motion/release sequence. The zero value is
// ready to use; motion events are ignored until press is called.
type drag struct {
	active           bool
	visible          bool
	anchorX, anchorY int
	cur              rect
}

func (d *drag) press(x, y int) {
	d.active = true
	d.anchorX, d.anchorY = x, y
	d.cur = rect{x: x, y: y}
}

// motion advances the rectangle to the current pointer position. It returns
// the rectangle to erase, the rectangle to draw, and whether drawing is
// needed at all (false while no button is held).
func (d *drag) motion(x, y int) (erase, draw rect, redraw bool) {
	if !d.active {
		return rect{}, rect{}, false
	}
	erase = d.cur
	d.cur = normalize(d.anchorX, d.anchorY, x, y)
	d.visible = true
	return erase, d.cur, true
}

// finish reports the rectangle still on screen, if any. The caller erases it
// exactly once; a press with no motion draws nothing, so there is nothing to
// erase in that case.
func (d *drag) finish() (erase rect, ok bool) {
	if !d.visible {
		return rect{}, false
	}
	d.visible = false
	return d.cur, true
}

// normalize maps the anchor point and the current pointer position to a
// rectangle whose x/y is the top-left corner regardless of drag direction.
func normalize(anchorX, anchorY, curX, curY int) rect {
	r := rect{x: anchorX, y: anchorY}
	if curX > anchorX {
		r.width = uint(curX - anchorX)
	} else {
		r.x = curX
		r.width = uint(anchorX - curX)
	}
	if curY > anchorY {
		r.height = uint(curY - anchorY)
	} else {
		r.y = curY
		r.height = uint(anchorY - curY)
	}
	return r
}

// resolve fills in the edge distances from the root window's extent and
// carries over the root's border width and depth.
func resolve(sel rect, rootWidth, rootHeight, border, depth uint) Region {
	return Region{
		X:          sel.x,
		Y:          sel.y,
		FromRight:  int(rootWidth) - sel.x - int(sel.width),
		FromBottom: int(rootHeight) - sel.y - int(sel.height),
		Width:      sel.width,
		Height:     sel.height,
		Border:     border,
		Depth:      depth,
	}
}
