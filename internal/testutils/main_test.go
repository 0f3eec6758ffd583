package testutils

import (
	"os"
	"os/signal"
	"syscall"
	"testing"
)

// TestMain ensures the shared Docker container is purged even when tests are
// interrupted or when running `go test ./...` directly.
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()

	CleanupSharedContainer()

	os.Exit(code)
}
