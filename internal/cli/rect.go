package cli

import (
	"fmt"
	"strconv"
	"strings"

	"skin-analyzer/pkg/geometry"
)

// parseRect parses "x,y,w,h".
func parseRect(s string) (geometry.RectInt, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return geometry.RectInt{}, fmt.Errorf("rect %q: want x,y,w,h", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return geometry.RectInt{}, fmt.Errorf("rect %q: %w", s, err)
		}
		v[i] = n
	}
	r := geometry.RectInt{X: v[0], Y: v[1], Width: v[2], Height: v[3]}
	if r.Empty() {
		return geometry.RectInt{}, fmt.Errorf("rect %q: width and height must be positive", s)
	}
	return r, nil
}
