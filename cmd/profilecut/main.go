// ProfileCut is a linear stock cutting optimizer.
//
// A command-line tool for cutting a demanded piece length out of profile
// bar stock with minimal waste and even material draw across stock types.
//
// Build:
//   go build -o profilecut ./cmd/profilecut
package main

import "github.com/piwi3910/profilecut/cmd/profilecut/commands"

func main() {
	commands.Execute()
}
