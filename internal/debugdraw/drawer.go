// Package debugdraw keeps short-lived diagnostic lines and renders them in
// the 3D pass.
package debugdraw

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Line is a segment from Start to End that stays visible for Remaining
// seconds.
type Line struct {
	Start     rl.Vector3
	End       rl.Vector3
	Color     rl.Color
	Remaining float32
}

// Drawer collects timed lines. A line submitted with a non-positive
// duration lives until the next Tick, so tick before queueing a frame's
// lines and draw after.
type Drawer struct {
	lines []Line
}

func New() *Drawer {
	return &Drawer{}
}

// Ray queues a line from origin to origin+delta.
func (d *Drawer) Ray(origin, delta rl.Vector3, color rl.Color, duration float32) {
	d.Line(origin, rl.Vector3Add(origin, delta), color, duration)
}

func (d *Drawer) Line(start, end rl.Vector3, color rl.Color, duration float32) {
	d.lines = append(d.lines, Line{Start: start, End: end, Color: color, Remaining: duration})
}

// Tick ages every line by deltaTime and drops the expired ones.
func (d *Drawer) Tick(deltaTime float32) {
	kept := d.lines[:0]
	for _, l := range d.lines {
		l.Remaining -= deltaTime
		if l.Remaining > 0 {
			kept = append(kept, l)
		}
	}
	clear(d.lines[len(kept):])
	d.lines = kept
}

// Draw renders all live lines. Call it between BeginMode3D and EndMode3D.
func (d *Drawer) Draw() {
	for _, l := range d.lines {
		rl.DrawLine3D(l.Start, l.End, l.Color)
	}
}

func (d *Drawer) Len() int {
	return len(d.lines)
}

// Clear drops every queued line.
func (d *Drawer) Clear() {
	d.lines = d.lines[:0]
}
