package main

import (
	"errors"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWaitForShutdown_Senal(t *testing.T) {
	quit := make(chan os.Signal, 1)
	quit <- syscall.SIGTERM

	assert.NoError(t, waitForShutdown(quit, make(chan error)))
}

func TestWaitForShutdown_ListenFalla(t *testing.T) {
	serverErr := make(chan error, 1)
	cause := errors.New("listen tcp :8080: bind: address already in use")
	serverErr <- cause

	err := waitForShutdown(make(chan os.Signal), serverErr)
	assert.ErrorIs(t, err, cause)
}

func TestWaitForShutdown_ListenTerminaSinError(t *testing.T) {
	serverErr := make(chan error, 1)
	serverErr <- nil

	assert.Error(t, waitForShutdown(make(chan os.Signal), serverErr))
}
