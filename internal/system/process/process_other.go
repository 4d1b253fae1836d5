// Released under an MIT license. See LICENSE.

//go:build !unix

package process

import (
	"os"
)

//nolint:gochecknoglobals
var signals = []os.Signal{os.Interrupt}
