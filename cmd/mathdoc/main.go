// Command mathdoc renders tutorial exercises on powers and logarithms to
// markdown documents with inline math, tables, and figures.
package main

import "github.com/mesh-intelligence/mathdoc/internal/cli"

func main() {
	cli.Execute()
}
