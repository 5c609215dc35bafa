package clierr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackerErrorRaisesExitCode(t *testing.T) {
	var tr Tracker
	assert.Equal(t, 0, tr.ExitCode())

	tr.Error(1, "first problem")
	assert.Equal(t, 1, tr.ExitCode())

	tr.Error(2, "second problem")
	assert.Equal(t, 2, tr.ExitCode())

	// A lower-severity error afterward must not lower the recorded code.
	tr.Error(1, "third problem")
	assert.Equal(t, 2, tr.ExitCode())
}

func TestTrackerErrorStartsAtZero(t *testing.T) {
	var tr Tracker
	assert.Equal(t, 0, tr.ExitCode())
}
