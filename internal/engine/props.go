package engine

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Props is the decoded property bag of a component in a scene file.
// YAML and JSON decoders disagree on numeric types, so the accessors accept
// any of them.
type Props map[string]any

func (p Props) Float(key string, fallback float32) float32 {
	if v, ok := toFloat(p[key]); ok {
		return v
	}
	return fallback
}

func (p Props) Bool(key string, fallback bool) bool {
	if v, ok := p[key].(bool); ok {
		return v
	}
	return fallback
}

func (p Props) String(key string, fallback string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return fallback
}

// Vector3 reads a three-element list. A present but malformed value is an error.
func (p Props) Vector3(key string, fallback rl.Vector3) (rl.Vector3, error) {
	raw, ok := p[key]
	if !ok {
		return fallback, nil
	}
	list, ok := raw.([]any)
	if !ok || len(list) != 3 {
		return fallback, fmt.Errorf("%s: want a list of 3 numbers, got %v", key, raw)
	}
	var out [3]float32
	for i, item := range list {
		v, ok := toFloat(item)
		if !ok {
			return fallback, fmt.Errorf("%s[%d]: not a number: %v", key, i, item)
		}
		out[i] = v
	}
	return rl.Vector3{X: out[0], Y: out[1], Z: out[2]}, nil
}

func toFloat(v any) (float32, bool) {
	switch n := v.(type) {
	case float64:
		return float32(n), true
	case float32:
		return n, true
	case int:
		return float32(n), true
	case int64:
		return float32(n), true
	case uint64:
		return float32(n), true
	}
	return 0, false
}
