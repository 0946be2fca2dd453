// Command tonal-shellenv is an example external exporter. It writes the
// projected tokens as shell variable assignments over go-plugin RPC.
//
// Build it into the plugins directory and tonal discovers it:
//
//	go build -o ~/.config/tonal/plugins/tonal-shellenv ./contrib/plugins/shellenv
//	tonal export -s "#769cdf" --format shellenv --plugin-args shellenv='{"prefix":"THEME_"}'
package main

import (
	"github.com/jmylchreest/tonal/pkg/plugin"
)

func main() {
	plugin.Serve(&Exporter{})
}
