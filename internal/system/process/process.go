// Released under an MIT license. See LICENSE.

// Package process relays operating system signals to a running session.
package process

import (
	"os"
	"os/signal"
)

// Notify calls onInterrupt each time the process is interrupted and
// onTerminate when it is asked to stop. The returned function stops
// delivery and restores default signal handling.
func Notify(onInterrupt, onTerminate func()) func() {
	signalq := make(chan os.Signal, len(signals)+1)
	done := make(chan struct{})

	signal.Notify(signalq, signals...)

	go monitor(signalq, done, onInterrupt, onTerminate)

	return func() {
		signal.Stop(signalq)
		close(done)
	}
}

func monitor(signalq chan os.Signal, done chan struct{}, onInterrupt, onTerminate func()) {
	for {
		select {
		case <-done:
			return

		case s := <-signalq:
			if s == os.Interrupt {
				onInterrupt()
			} else {
				onTerminate()
			}
		}
	}
}
