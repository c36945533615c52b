// Command gadgetstore runs the interactive gadget inventory menu.
package main

import "github.com/mesh-intelligence/gadgetstore/internal/cli"

func main() {
	cli.Execute()
}
