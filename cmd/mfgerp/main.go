// mfgerp is the command line interface for manufacturing order execution:
// stage plans, gated work orders, completion cascades and stock postings.
package main

import (
	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/interfaces/cli/commands"
)

func main() {
	commands.Execute()
}
