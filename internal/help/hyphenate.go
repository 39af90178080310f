// This file is part of go-optparse.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package help

// Hyphenator - Returns the byte offsets at which a word may be split.
// The fragment before the offset is rendered with a trailing hyphen unless it
// already ends with one.
type Hyphenator interface {
	Hyphenate(word string) []int
}

// HyphenatorFunc - Adapter to use an ordinary function as a Hyphenator.
type HyphenatorFunc func(word string) []int

// Hyphenate - Calls f(word).
func (f HyphenatorFunc) Hyphenate(word string) []int {
	return f(word)
}

// CompoundWords - Hyphenator that only splits compound words right after an
// existing hyphen, "output-directory" becomes "output-" and "directory".
// Leading dashes, as in "--output", are never split.
var CompoundWords Hyphenator = HyphenatorFunc(compoundWords)

func compoundWords(word string) []int {
	points := []int{}
	for i := 2; i < len(word); i++ {
		if word[i-1] == '-' && word[i] != '-' && word[i-2] != '-' {
			points = append(points, i)
		}
	}
	return points
}
