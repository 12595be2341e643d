//go:build unix

package xcmd

import (
	"os"

	"golang.org/x/sys/unix"
)

func defaultSignals() []os.Signal {
	return []os.Signal{unix.SIGINT, unix.SIGTERM}
}
