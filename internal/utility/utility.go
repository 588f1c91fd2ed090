package utility

import (
	"fmt"
	"math/rand"
)

// RandomColorHex returns a #rrggbb color whose channels avoid the extremes
// so it stays readable on both light and dark backgrounds.
func RandomColorHex() string {
	r := 4 + rand.Intn(248)
	g := 4 + rand.Intn(248)
	b := 4 + rand.Intn(248)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
