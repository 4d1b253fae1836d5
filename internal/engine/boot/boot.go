// Released under an MIT license. See LICENSE.

// Package boot provides what is necessary for bootstrapping tern.
package boot

import _ "embed" // Blank import required by embed.

//go:embed boot.scm
var script string //nolint:gochecknoglobals

// Script returns the boot script for tern.
func Script() string {
	return script
}
