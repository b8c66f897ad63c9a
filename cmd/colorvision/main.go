// Colorvision analyzes the color composition of images for patterns
// consistent with color vision deficiencies and annotates the minority
// color regions.
package main

import (
	"github.com/lrm2017/color-weakness-detector/internal/cli"
)

func main() {
	cli.Execute()
}
