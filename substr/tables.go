package substr

import "math"

// MaxNeedleLen is M_max: the largest needle BuildOcc/BuildSkip/NewTables
// will accept. It matches the C reference implementation's sbmh_size_t
// (an unsigned short), keeping every shift table entry a compact uint16.
const MaxNeedleLen = math.MaxUint16

const byteCount = 1 + math.MaxUint8

// Tables holds the bad-character (Occ) and good-suffix (Skip) shift
// tables produced by preprocessing a needle. Both are read-only once
// built and may be shared across any number of concurrent searches
// against that same needle.
type Tables struct {
	Occ       [byteCount]uint16
	Skip      []uint16
	NeedleLen int
}

// NewTables preprocesses needle, building both the bad-character and
// good-suffix tables needed by every searcher in this package. The
// returned Tables is bound to needle's length and contents; pass the
// same needle bytes to every search that uses it.
func NewTables(needle []byte) (*Tables, error) {
	if len(needle) == 0 {
		return nil, ErrEmptyNeedle
	}
	if len(needle) > MaxNeedleLen {
		return nil, ErrNeedleTooLong
	}
	return &Tables{
		Occ:       BuildOcc(needle),
		Skip:      BuildSkip(needle),
		NeedleLen: len(needle),
	}, nil
}

// BuildOcc computes the bad-character shift table: for each of the 256
// byte values, the distance the search window advances when that byte
// occupies the window's last position and does not complete a match.
// The needle's own last byte is deliberately excluded from the scan that
// populates the table, so occ[needle[m-1]] falls back to m unless that
// byte also occurs earlier in the needle.
func BuildOcc(needle []byte) (occ [byteCount]uint16) {
	m := len(needle)

	for i := range occ {
		occ[i] = uint16(m)
	}
	for i := 0; i < m-1; i++ {
		occ[needle[i]] = uint16(m - 1 - i)
	}
	return
}

// BuildSkip computes the good-suffix shift table used by the full
// Boyer-Moore and Turbo Boyer-Moore searchers: skip[i] is the distance
// to advance the window when needle[i+1:] matched but needle[i] did not.
//
// This is a direct port of the classical two-case good-suffix
// construction (isPrefix/suffixLength), the same derivation
// ivancich-substr/src/substr/boyer_moore.go uses for its offset table,
// except that each entry is stored at its mismatch index as a plain window
// shift (that offset table is keyed by matched length and adds the matched
// length to every entry). It produces the same skip[i] >= 1 invariant as
// the suff[]-array formulation, by a differently organized but equivalent
// scan.
func BuildSkip(needle []byte) []uint16 {
	m := len(needle)
	if m <= 1 {
		return []uint16{1}
	}

	skip := make([]uint16, m)
	lastPrefixPosition := m
	for i := m - 1; i >= 0; i-- {
		if isPrefix(needle, i+1) {
			lastPrefixPosition = i + 1
		}
		skip[i] = uint16(lastPrefixPosition)
	}
	for i := 0; i < m-1; i++ {
		slen := suffixLength(needle, i)
		skip[m-1-slen] = uint16(m - 1 - i)
	}
	return skip
}

// isPrefix reports whether needle[p:] is a prefix of needle.
func isPrefix(needle []byte, p int) bool {
	for i, j := p, 0; i < len(needle); i, j = i+1, j+1 {
		if needle[i] != needle[j] {
			return false
		}
	}
	return true
}

// suffixLength returns the length of the longest substring of needle
// ending at p that is also a suffix of the full needle.
func suffixLength(needle []byte, p int) int {
	length := 0
	for i, j := p, len(needle)-1; i >= 0 && needle[i] == needle[j]; i, j = i-1, j-1 {
		length++
	}
	return length
}
