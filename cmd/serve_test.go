package main

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignalContext(t *testing.T) {
	ctx, exitCode, stop := signalContext(context.Background(), syscall.SIGUSR1)
	defer stop()
	assert.Equal(t, 0, exitCode())

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGUSR1))
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context not canceled by signal")
	}
	assert.Equal(t, 128+int(syscall.SIGUSR1), exitCode())
}

func TestSignalContext_Stop(t *testing.T) {
	ctx, exitCode, stop := signalContext(context.Background(), syscall.SIGUSR2)
	stop()
	<-ctx.Done()
	assert.Equal(t, 0, exitCode())
}
