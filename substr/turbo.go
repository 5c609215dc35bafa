package substr

// TurboBMSearch returns the offset of the first occurrence of needle in
// haystack, or len(haystack) if there is none. It implements Turbo
// Boyer-Moore: alongside the good-suffix and bad-character shifts, it
// tracks u (the number of trailing bytes already known to match, because
// the previous shift only moved the window past the good-suffix region)
// and the previous shift distance, letting the backward comparison skip
// that already-verified span instead of re-checking it.
//
// This searcher has no grounding in the retrieval pack (the reference
// C++'s BoyerMooreAndTurbo.cpp was not among the retrieved original-source
// files); it is built directly from the classical Turbo-BM algorithm
// description (Crochemore & Perrin), matching spec.md's shift-update
// rules exactly.
func TurboBMSearch(haystack []byte, tables *Tables, needle []byte) int {
	n, m := len(haystack), len(needle)
	if m > n {
		return n
	}
	if m == 1 {
		return singleByteSearch(haystack, needle[0])
	}

	p := 0
	shift := m
	u := 0

	for p <= n-m {
		i := m - 1
		for i >= 0 && needle[i] == haystack[p+i] {
			i--
			if u != 0 && i == m-1-shift {
				i -= u
			}
		}
		if i < 0 {
			return p
		}

		l := m - 1 - i
		c := haystack[p+i]
		turboShift := u - l
		bcShift := int(tables.Occ[c]) - l
		gcShift := int(tables.Skip[i])

		shift = gcShift
		if bcShift > shift {
			shift = bcShift
		}
		if turboShift > shift {
			shift = turboShift
		}

		if shift == gcShift {
			u = m - shift
			if l < u {
				u = l
			}
		} else {
			if turboShift < bcShift && u+1 > shift {
				shift = u + 1
			}
			u = 0
		}
		if shift < 1 {
			shift = 1
		}
		p += shift
	}
	return n
}
