// SPDX-License-Identifier: MIT

// Command slotgraph queries the route map and the social network.
package main

import "github.com/katalvlaran/slotgraph/cmd/slotgraph/commands"

func main() {
	commands.Execute()
}
