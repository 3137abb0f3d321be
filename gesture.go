package main

// primaryPointer tracks which pointer owns the drag so that extra touch
// points neither restart nor steer it.
type primaryPointer struct {
	id     int
	active bool
}

// down starts a drag. A repeated down from the owning pointer, or a down
// from a new primary pointer, means the previous up was lost and restarts
// the drag.
func (p *primaryPointer) down(id int, isPrimary bool) bool {
	if p.active && p.id != id && !isPrimary {
		return false
	}
	p.id = id
	p.active = true
	return true
}

func (p *primaryPointer) move(id int) bool {
	return p.active && p.id == id
}

func (p *primaryPointer) up(id int) bool {
	if p.active && p.id != id {
		return false
	}
	p.active = false
	return true
}

// cancel drops the drag regardless of the pointer.
func (p *primaryPointer) cancel() {
	p.active = false
}

// dragInput routes pointer events of the render surface to the view.
type dragInput struct {
	pointer primaryPointer
	view    *view
}

// down reports whether a drag was started.
func (d *dragInput) down(id int, isPrimary bool, x, y float64) bool {
	if !d.pointer.down(id, isPrimary) {
		return false
	}
	d.view.pointerDown(x, y)
	return true
}

func (d *dragInput) move(id int, x, y float64) {
	if d.pointer.move(id) {
		d.view.pointerMove(x, y)
	}
}

// up reports whether the drag was ended.
func (d *dragInput) up(id int) bool {
	if !d.pointer.up(id) {
		return false
	}
	d.view.pointerUp()
	return true
}

func (d *dragInput) cancel() {
	d.pointer.cancel()
	d.view.pointerUp()
}
