// Copyright 2026 AgriFarm authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nepcal

import (
	"errors"
	"fmt"
	"strings"

	"cloudeng.io/algo/lcs"
)

// ErrEmptyMonth is returned by ParseMonth for empty or all-whitespace
// input.
var ErrEmptyMonth = errors.New("empty month name")

// UnrecognizedMonthError is returned by ParseMonth when none of the
// matching strategies recognize the token. Token is the original input.
type UnrecognizedMonthError struct {
	Token string
}

func (e *UnrecognizedMonthError) Error() string {
	return fmt.Sprintf("unrecognized Nepali month name: %q", e.Token)
}

// aliases maps common alternate and regional spellings to their
// canonical month. Extend the set by adding entries here; the matching
// strategies never change.
var aliases = map[string]Month{
	"asoj":     Ashwin,
	"ashoj":    Ashwin,
	"aswin":    Ashwin,
	"baishakh": Baisakh,
	"baishak":  Baisakh,
	"asar":     Ashad,
	"bhadau":   Bhadra,
	"push":     Poush,
	"fagun":    Falgun,
}

// The matching strategies in the order they are tried, first success
// wins. Exact and curated alias matches take priority so that a bad
// heuristic match can never shadow a known spelling.
var matchers = []func(string) (Month, bool){
	matchExact,
	matchAlias,
	matchClosest,
	matchPrefix,
}

var lowerNames = func() []string {
	l := make([]string, len(monthNames))
	for i, n := range monthNames {
		l[i] = strings.ToLower(n)
	}
	return l
}()

// ParseMonth maps a raw, possibly misspelled month token to its
// canonical month. Matching tries, in order: exact case-insensitive
// comparison, curated alias lookup, the closest canonical name by
// subsequence similarity (accepted at a ratio of 0.5 or above), and a
// three character prefix match.
func ParseMonth(raw string) (Month, error) {
	clean := strings.TrimSpace(raw)
	if clean == "" {
		return 0, ErrEmptyMonth
	}
	lc := strings.ToLower(clean)
	for _, match := range matchers {
		if m, ok := match(lc); ok {
			return m, nil
		}
	}
	return 0, &UnrecognizedMonthError{Token: raw}
}

func matchExact(lc string) (Month, bool) {
	for i, name := range lowerNames {
		if lc == name {
			return Month(i + 1), true
		}
	}
	return 0, false
}

func matchAlias(lc string) (Month, bool) {
	m, ok := aliases[lc]
	return m, ok
}

const minSimilarity = 0.5

func matchClosest(lc string) (Month, bool) {
	best, bestScore := Month(0), 0.0
	for i, name := range lowerNames {
		if s := similarity(lc, name); s > bestScore {
			best, bestScore = Month(i+1), s
		}
	}
	if bestScore >= minSimilarity {
		return best, true
	}
	return 0, false
}

func matchPrefix(lc string) (Month, bool) {
	p := lc
	if len(p) > 3 {
		p = p[:3]
	}
	for i, name := range lowerNames {
		if strings.HasPrefix(name, p) {
			return Month(i + 1), true
		}
	}
	return 0, false
}

// similarity is twice the length of the longest common subsequence of
// a and b over their combined length, in the range 0 to 1.
func similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra)+len(rb) == 0 {
		return 0
	}
	common := lcs.NewMyers(ra, rb).LCS()
	return 2 * float64(len(common)) / float64(len(ra)+len(rb))
}
