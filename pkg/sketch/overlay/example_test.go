package overlay_test

import (
	"fmt"

	"github.com/matzehuels/tonesketch/pkg/sketch/overlay"
)

func ExampleNextSide() {
	fmt.Println(overlay.NextSide(overlay.Top))
	fmt.Println(overlay.NextSide(overlay.Left))
	// Output:
	// right
	// top
}

func ExampleCornerPoint() {
	c := overlay.CornerPoint(overlay.Bottom, overlay.Left, 800, 600)
	fmt.Println(c.X, c.Y)
	// Output: 0 600
}
