package player

import "math"

// alignmentOffset turns the stick angle (0 = right) into the model's facing
// convention on the cube.
const alignmentOffset = 90

// QuadrantOffset is the correction added to atan(v/h). Only the sign of h
// matters: (-,+) and (-,-) both get -180, (+,+) and (+,-) get 0, and any
// input on an axis gets 0.
func QuadrantOffset(h, v float32) float32 {
	switch {
	case h > 0 && v > 0:
		return 0
	case h < 0 && v > 0:
		return -180
	case h < 0 && v < 0:
		return -180
	case h > 0 && v < 0:
		return 0
	}
	return 0
}

// FacingAngle returns the facing angle in degrees before it is negated and
// applied about the up axis. With h == 0 the atan term is skipped entirely,
// so straight up and straight down both yield -90.
func FacingAngle(h, v float32) float32 {
	var angle float32
	if h != 0 {
		angle = float32(math.Atan(float64(v/h))) * (180 / math.Pi)
	}
	angle += QuadrantOffset(h, v)
	angle -= alignmentOffset
	return angle
}
