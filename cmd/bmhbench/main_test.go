package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FooBarWidget/boyer-moore-horspool/substr"
)

func TestStreamSearchOnceFindsMatch(t *testing.T) {
	needle := []byte("control\n")
	tables, err := substr.NewTables(needle)
	require.NoError(t, err)

	data := []byte("preamble text\nI have control\ntrailer")
	offset := streamSearchOnce(data, tables, needle)
	assert.Equal(t, 21, offset)
}

func TestStreamSearchOnceNotFound(t *testing.T) {
	needle := []byte("absent")
	tables, err := substr.NewTables(needle)
	require.NoError(t, err)

	data := []byte("nothing to see here")
	offset := streamSearchOnce(data, tables, needle)
	assert.Equal(t, len(data), offset)
}

func TestReportRunsEachIteration(t *testing.T) {
	calls := 0
	report("test", 3, func() int {
		calls++
		return 42
	})
	assert.Equal(t, 3, calls)
}
