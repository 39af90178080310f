// This file is part of go-optparse.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package sliceiterator - Walks an argument vector, allowing to peek at and
// consume the argument that follows the current one.
package sliceiterator

// Iterator - iterator data
type Iterator struct {
	data []string
	idx  int
}

// New - Builds an Iterator whose first call to Next lands on data[start].
func New(data []string, start int) *Iterator {
	if start < 0 {
		start = 0
	}
	return &Iterator{data: data, idx: start - 1}
}

// Size - returns Iterator size
func (a *Iterator) Size() int {
	return len(a.data)
}

// Index - Returns the current index.
// After Next returns false the index equals Size.
func (a *Iterator) Index() int {
	return a.idx
}

// Next - Moves the index forward and indicates if there is a value there.
func (a *Iterator) Next() bool {
	if a.idx < len(a.data) {
		a.idx++
	}
	return a.idx < len(a.data)
}

// Value - Returns the value at the current index or an empty string when the
// iterator is exhausted.
func (a *Iterator) Value() string {
	if a.idx < 0 || a.idx >= len(a.data) {
		return ""
	}
	return a.data[a.idx]
}

// PeekNextValue - Returns the next value and indicates whether or not it exists.
func (a *Iterator) PeekNextValue() (string, bool) {
	if a.idx+1 >= len(a.data) {
		return "", false
	}
	return a.data[a.idx+1], true
}
