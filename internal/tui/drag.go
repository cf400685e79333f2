package tui

// Mouse drag-to-reorder for the category and portfolio rows. A press arms a
// pending drag; it only activates once the pointer has moved far enough
// vertically to rule out a plain click. The drop target is the row whose
// center is closest to the release point; dropping on the origin row or
// outside the list is a no-op.

// dragActivationRows is the activation distance in terminal rows.
const dragActivationRows = 1

type rowArea struct {
	top       int
	rowHeight int
	count     int
}

// contains reports whether y falls inside the list.
func (r rowArea) contains(y int) bool {
	return r.count > 0 && y >= r.top && y < r.top+r.count*r.rowHeight
}

// rowAt maps a y coordinate to the index of the row whose vertical center is
// closest. Outside the list it returns -1.
func (r rowArea) rowAt(y int) int {
	if r.count == 0 || r.rowHeight <= 0 {
		return -1
	}
	best, bestDist := -1, 0
	for i := 0; i < r.count; i++ {
		center := r.top + i*r.rowHeight + r.rowHeight/2
		dist := y - center
		if dist < 0 {
			dist = -dist
		}
		if best == -1 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	// a closest match further than one row away is not a hit
	if bestDist > r.rowHeight {
		return -1
	}
	return best
}

type dragState struct {
	armed  bool
	active bool
	origin int
	pressY int
}

// press arms a drag starting on the given row.
func (d *dragState) press(row, y int) {
	d.armed = true
	d.active = false
	d.origin = row
	d.pressY = y
}

// move activates the drag once the pointer has traveled the activation
// distance.
func (d *dragState) move(y int) {
	if !d.armed || d.active {
		return
	}
	dist := y - d.pressY
	if dist < 0 {
		dist = -dist
	}
	if dist >= dragActivationRows {
		d.active = true
	}
}

// release finishes the gesture. ok is true only for an activated drag ending
// on a valid target other than the origin.
func (d *dragState) release(y int, area rowArea) (from, to int, ok bool) {
	defer func() { *d = dragState{} }()
	if !d.armed || !d.active {
		return 0, 0, false
	}
	target := area.rowAt(y)
	if target < 0 || target == d.origin {
		return 0, 0, false
	}
	return d.origin, target, true
}
