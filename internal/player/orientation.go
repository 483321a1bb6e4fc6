package player

import (
	"cubejam/internal/cube"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frame is the pair of world directions that stick input maps onto while
// standing on one cube face.
type Frame struct {
	Forward rl.Vector3
	Right   rl.Vector3
}

// OrientationTable maps each cube face to its movement frame. Faces that
// were never set resolve to the zero frame, so input there produces no
// movement.
type OrientationTable struct {
	frames [cube.FaceCount]Frame
	set    [cube.FaceCount]bool
}

// DefaultOrientationTable covers the two faces the level uses: the top,
// and the -Z side where "forward" climbs the wall.
func DefaultOrientationTable() OrientationTable {
	var t OrientationTable
	t.Set(cube.YP, Frame{Forward: rl.Vector3{Z: 1}, Right: rl.Vector3{X: 1}})
	t.Set(cube.ZM, Frame{Forward: rl.Vector3{Y: 1}, Right: rl.Vector3{X: 1}})
	return t
}

// Set installs the frame for f. Invalid faces are ignored.
func (t *OrientationTable) Set(f cube.Face, fr Frame) {
	if !f.Valid() {
		return
	}
	t.frames[f] = fr
	t.set[f] = true
}

// Lookup returns the frame for f and whether one was set.
func (t *OrientationTable) Lookup(f cube.Face) (Frame, bool) {
	if !f.Valid() || !t.set[f] {
		return Frame{}, false
	}
	return t.frames[f], true
}
