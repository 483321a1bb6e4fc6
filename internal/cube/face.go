// Package cube models the cubic play field: which face an object stands
// on and which way is "down" there.
package cube

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Face identifies one side of the cube by its outward normal.
type Face int

const (
	XP Face = iota // +X
	XM             // -X
	YP             // +Y, the top
	YM             // -Y
	ZP             // +Z
	ZM             // -Z
)

// FaceCount is the number of cube faces; it sizes per-face tables.
const FaceCount = 6

var faceNames = [FaceCount]string{"+X", "-X", "+Y", "-Y", "+Z", "-Z"}

var faceNormals = [FaceCount]rl.Vector3{
	{X: 1}, {X: -1},
	{Y: 1}, {Y: -1},
	{Z: 1}, {Z: -1},
}

func (f Face) Valid() bool {
	return f >= 0 && f < FaceCount
}

func (f Face) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Face(%d)", int(f))
	}
	return faceNames[f]
}

// Normal is the outward unit normal of the face, zero for invalid faces.
func (f Face) Normal() rl.Vector3 {
	if !f.Valid() {
		return rl.Vector3{}
	}
	return faceNormals[f]
}

// ParseFace accepts "+Y"/"-Z" style names and "YP"/"ZM" style names.
func ParseFace(s string) (Face, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, name := range faceNames {
		if s == name {
			return Face(i), nil
		}
	}
	for i, name := range [FaceCount]string{"XP", "XM", "YP", "YM", "ZP", "ZM"} {
		if s == name {
			return Face(i), nil
		}
	}
	return 0, fmt.Errorf("unknown cube face %q", s)
}

// Classify returns the face whose normal best matches offset, the vector
// from the cube center to a point. Ties prefer Y, then Z; the zero vector
// classifies as the top.
func Classify(offset rl.Vector3) Face {
	ax, ay, az := abs(offset.X), abs(offset.Y), abs(offset.Z)
	switch {
	case ay >= ax && ay >= az:
		if offset.Y < 0 {
			return YM
		}
		return YP
	case az >= ax:
		if offset.Z < 0 {
			return ZM
		}
		return ZP
	default:
		if offset.X < 0 {
			return XM
		}
		return XP
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
