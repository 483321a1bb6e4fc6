package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDeadZone(t *testing.T) {
	tests := []struct {
		name  string
		x, dz float32
		want  float32
	}{
		{"inside", 0.1, 0.2, 0},
		{"negative inside", -0.19, 0.2, 0},
		{"edge", 0.2, 0.2, 0},
		{"half", 0.6, 0.2, 0.5},
		{"negative half", -0.6, 0.2, -0.5},
		{"full", 1, 0.2, 1},
		{"overshoot", 1.3, 0.2, 1},
		{"no dead zone", 0.05, 0, 0.05},
		{"no dead zone clamps", -2, 0, -1},
		{"all dead", 0.9, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ApplyDeadZone(tt.x, tt.dz), 1e-6)
		})
	}
}
