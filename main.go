// Command skinscan assesses skin type, brightness and acne severity from the
// first face found in an image.
package main

import "skin-analyzer/internal/cli"

func main() {
	cli.Execute()
}
