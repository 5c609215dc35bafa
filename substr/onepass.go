package substr

import "bytes"

// HorspoolSearch returns the offset of the first occurrence of needle in
// haystack, or len(haystack) if there is none. It implements classical
// Boyer-Moore-Horspool: the window's last byte gates a left-to-right
// comparison of the rest of the needle (Raita's refinement), advancing by
// tables.Occ on any mismatch.
func HorspoolSearch(haystack []byte, tables *Tables, needle []byte) int {
	n, m := len(haystack), len(needle)
	if m > n {
		return n
	}
	if m == 1 {
		return singleByteSearch(haystack, needle[0])
	}

	last := needle[m-1]
	occ := &tables.Occ
	p := 0
	for p <= n-m {
		c := haystack[p+m-1]
		if c == last && bytes.Equal(haystack[p:p+m-1], needle[:m-1]) {
			return p
		}
		p += int(occ[c])
	}
	return n
}

// BMSearch returns the offset of the first occurrence of needle in
// haystack, or len(haystack) if there is none. It implements full
// Boyer-Moore: each window is compared right-to-left, and on a mismatch
// the window advances by the larger of the good-suffix shift and the
// bad-character shift adjusted for the suffix already matched.
func BMSearch(haystack []byte, tables *Tables, needle []byte) int {
	n, m := len(haystack), len(needle)
	if m > n {
		return n
	}
	if m == 1 {
		return singleByteSearch(haystack, needle[0])
	}

	p := 0
	for p <= n-m {
		l := backwardMatchLen(needle, haystack[p:p+m], m)
		if l == m {
			return p
		}

		mismatchIdx := m - 1 - l
		c := haystack[p+mismatchIdx]
		bcShift := int(tables.Occ[c]) - l
		gcShift := int(tables.Skip[mismatchIdx])
		shift := gcShift
		if bcShift > shift {
			shift = bcShift
		}
		if shift < 1 {
			shift = 1
		}
		p += shift
	}
	return n
}

// backwardMatchLen returns how many bytes of window (length m, aligned
// with needle) match needle when compared from the right, stopping at
// the first mismatch (or m if the whole needle matched).
func backwardMatchLen(needle, window []byte, m int) int {
	l := 0
	for l < m && needle[m-1-l] == window[m-1-l] {
		l++
	}
	return l
}

func singleByteSearch(haystack []byte, b byte) int {
	if idx := bytes.IndexByte(haystack, b); idx >= 0 {
		return idx
	}
	return len(haystack)
}
