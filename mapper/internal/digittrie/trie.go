/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package digittrie is a longest-prefix index over fixed-width decimal keys,
// such as the 5-digit textual form of a status code.
//
// Every digit is one level of the trie. A pattern digit may be "*", which
// matches exactly one key digit. Among matches of the same length an exact
// digit beats a wildcard.
package digittrie

import "errors"

// MaxDepth is the longest pattern (and key) the trie accepts.
const MaxDepth = 5

const wildcard = 10

// Trie is a digit-aware prefix index. It is not safe for concurrent Insert,
// but concurrent Match calls on a fully built trie are safe.
type Trie[T any] struct {
	// children[0..9] are exact digits, children[wildcard] is "*".
	children [11]*Trie[T]
	hasVal   bool
	val      T
	// pattern is the inserted pattern, kept so MatchWithPattern does not
	// build strings during lookup.
	pattern string
}

// ErrInvalidPattern is returned by Insert for empty or too long patterns,
// for characters other than digits and "*", and for all-wildcard patterns.
var ErrInvalidPattern = errors.New("digittrie: invalid pattern")

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{}
}

// Insert associates val with pattern, e.g. "1011" (10110..10119) or
// "101*3" (10103, 10113, ... 10193). Re-inserting a pattern replaces its value.
func (t *Trie[T]) Insert(pattern string, val T) error {
	if t == nil || !ValidPattern(pattern) {
		return ErrInvalidPattern
	}

	cur := t
	for i := 0; i < len(pattern); i++ {
		idx := index(pattern[i])
		if cur.children[idx] == nil {
			cur.children[idx] = New[T]()
		}
		cur = cur.children[idx]
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = pattern
	return nil
}

// Match returns the value of the longest pattern that matches key.
// Keys containing anything but digits match only as far as their leading
// digits go.
func (t *Trie[T]) Match(key string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(key)
	return v, ok
}

// MatchWithPattern is Match that also returns the winning pattern.
func (t *Trie[T]) MatchWithPattern(key string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}

	best := (*Trie[T])(nil)
	bestDepth := 0

	// dfs walks exact before wildcard so an exact digit wins a tie.
	var dfs func(n *Trie[T], depth int)
	dfs = func(n *Trie[T], depth int) {
		if n.hasVal && depth > bestDepth {
			best, bestDepth = n, depth
		}
		if depth >= len(key) || depth >= MaxDepth {
			return
		}
		c := key[depth]
		if c < '0' || c > '9' {
			return
		}
		if next := n.children[c-'0']; next != nil {
			dfs(next, depth+1)
		}
		if next := n.children[wildcard]; next != nil {
			dfs(next, depth+1)
		}
	}
	dfs(t, 0)

	if best == nil {
		return zero, false, ""
	}
	return best.val, true, best.pattern
}

// ValidPattern reports whether p can be inserted: 1..MaxDepth characters,
// each a digit or "*", at least one of them a digit.
func ValidPattern(p string) bool {
	if p == "" || len(p) > MaxDepth {
		return false
	}
	digits := 0
	for i := 0; i < len(p); i++ {
		switch c := p[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '*':
		default:
			return false
		}
	}
	return digits > 0
}

func index(c byte) int {
	if c == '*' {
		return wildcard
	}
	return int(c - '0')
}
