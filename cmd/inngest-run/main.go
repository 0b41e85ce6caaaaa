// Command inngest-run executes one Inngest function step and prints its response as a line of JSON.
//
// Usage:
//
//	inngest-run <module-path> <context-json>
//
// The module is a Go plugin exporting a Run symbol; see inngestfn.PluginLoader. Set INNGEST_LOG_LEVEL to
// change the minimum level of diagnostic output, which goes to stderr.
package main

import (
	"github.com/inngest/inngest-sdk-go/inngestfn"
)

func main() {
	inngestfn.Main(inngestfn.PluginLoader{})
}
