// Package bytearray implements a hex-encoded byte slice usable directly as
// a command-line flag value, the way ivancich-substr/src/bytearray let
// sift's -b flag accept a needle as hex digits instead of text. Decoded
// values are bounded by substr.MaxNeedleLen, since every ByteArray in this
// module ends up as a search needle.
package bytearray

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/FooBarWidget/boyer-moore-horspool/substr"
)

// ByteArray is a byte slice that parses from (and renders to) a string of
// hex digit pairs, two digits per byte, bounded at substr.MaxNeedleLen
// bytes — the largest needle the rest of this module can ever act on.
type ByteArray []byte

// Set decodes value as hex digit pairs, replacing the receiver's contents.
// It satisfies flag.Value and is also used as kong's UnmarshalText hook
// for --needle-hex-style flags.
func (n *ByteArray) Set(value string) error {
	decoded, err := hex.DecodeString(value)
	if err != nil {
		return fmt.Errorf("%q is not a valid hex byte sequence: %w", value, err)
	}
	if len(decoded) > substr.MaxNeedleLen {
		return fmt.Errorf("hex byte sequence is %d bytes, exceeds the %d-byte needle limit", len(decoded), substr.MaxNeedleLen)
	}

	*n = decoded
	return nil
}

// UnmarshalText lets kong and koanf bind a ByteArray field directly from a
// flag, env var, or config value without a custom Mapper.
func (n *ByteArray) UnmarshalText(text []byte) error {
	return n.Set(string(text))
}

func (n ByteArray) String() string {
	return strings.ToUpper(hex.EncodeToString(n))
}
