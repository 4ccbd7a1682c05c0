// Command inspector browses and edits a live object graph from the terminal.
package main

import "github.com/mesh-intelligence/inspector/internal/cli"

func main() {
	cli.Execute()
}
