// Package main implements a cross-platform GUI application for drawing an
// H-tree fractal using the Fyne framework.
package main

import "github.com/Akaiko1/htree-viewer/internal/cli"

func main() {
	cli.Execute()
}
