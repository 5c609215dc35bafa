/*
Package substr implements the Boyer-Moore family of substring search
algorithms: classical Horspool, full Boyer-Moore with a good-suffix table,
Turbo Boyer-Moore, and a streaming Boyer-Moore-Horspool matcher that
accepts its haystack in arbitrarily sized chunks.

The bad-character and good-suffix preprocessing is shared by every
searcher via Tables, computed once per needle and safe to reuse across
many searches. The one-shot searchers (HorspoolSearch, BMSearch,
TurboBMSearch) consume a complete haystack and return the offset of the
first match, or len(haystack) if there is none. Context is the streaming
matcher: it is fed successive haystack chunks and reports, through a
caller-supplied sink, the haystack bytes proven not to participate in a
match, transitioning to a terminal found state on the first match.

This package does not implement regular expressions, multi-pattern
search, Unicode-aware matching, or enumeration of matches past the first.

Copyright © 2012 by J. E. Ivancich, adapted 2024.
This work is licensed under a Creative Commons Attribution-ShareAlike 3.0
Unported License. See: http://creativecommons.org/licenses/by-sa/3.0/
*/
package substr
