package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FooBarWidget/boyer-moore-horspool/internal/bytearray"
)

func TestResolveFindReplaceText(t *testing.T) {
	find, to, err := resolveFindReplace(CLI{Find: "ab", To: "cd"})
	require.NoError(t, err)
	assert.Equal(t, []byte("ab"), find)
	assert.Equal(t, []byte("cd"), to)
}

func TestResolveFindReplaceHex(t *testing.T) {
	var findHex, toHex bytearray.ByteArray
	require.NoError(t, findHex.Set("0011"))
	require.NoError(t, toHex.Set("2233"))

	find, to, err := resolveFindReplace(CLI{FindHex: findHex, ToHex: toHex})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x11}, find)
	assert.Equal(t, []byte{0x22, 0x33}, to)
}

func TestResolveFindReplaceRejectsBothTextAndHex(t *testing.T) {
	var findHex bytearray.ByteArray
	require.NoError(t, findHex.Set("00"))
	_, _, err := resolveFindReplace(CLI{Find: "a", FindHex: findHex, To: "b"})
	assert.Error(t, err)
}

func TestResolveFindReplaceRejectsLengthMismatch(t *testing.T) {
	_, _, err := resolveFindReplace(CLI{Find: "abc", To: "de"})
	assert.Error(t, err)
}

func TestResolveFindReplaceRequiresReplacement(t *testing.T) {
	_, _, err := resolveFindReplace(CLI{Find: "abc"})
	assert.Error(t, err)
}

func TestPatchFirstMatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(path, []byte("xx needle here and needle again"), 0644))

	err := patchFirstMatch(path, []byte("needle"), []byte("PAT6CH"))
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "xx PAT6CH here and needle again", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var sawBackup bool
	for _, e := range entries {
		if filepath.Ext(e.Name()) != "" && e.Name() != "data.bin" {
			sawBackup = true
		}
	}
	assert.True(t, sawBackup, "expected a backup file to be left behind")
}

func TestPatchFirstMatchNeedleNotFound(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(path, []byte("no match in here"), 0644))

	err := patchFirstMatch(path, []byte("absent"), []byte("xxxxxx"))
	assert.Error(t, err)
}
