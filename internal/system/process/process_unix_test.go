//go:build unix

package process_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/michaelmacinnis/tern/internal/system/process"
)

func TestNotify(t *testing.T) {
	interrupted := make(chan struct{}, 1)
	terminated := make(chan struct{}, 1)

	stop := process.Notify(func() {
		interrupted <- struct{}{}
	}, func() {
		terminated <- struct{}{}
	})
	defer stop()

	require.NoError(t, unix.Kill(unix.Getpid(), unix.SIGINT))

	select {
	case <-interrupted:
	case <-time.After(5 * time.Second):
		t.Fatal("interrupt not delivered")
	}

	require.NoError(t, unix.Kill(unix.Getpid(), unix.SIGTERM))

	select {
	case <-terminated:
	case <-time.After(5 * time.Second):
		t.Fatal("terminate not delivered")
	}
}
