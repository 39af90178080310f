// This file is part of go-optparse.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package termwidth - Finds the column width to use when writing to a sink.
package termwidth

import (
	"io"

	"golang.org/x/term"
)

// Default - Width used when the sink is not a terminal or its size can't be read.
const Default = 80

// Overridable for testing.
var (
	isTerminalFn = term.IsTerminal
	getSizeFn    = term.GetSize
)

type fder interface {
	Fd() uintptr
}

// Of - Returns the number of columns of the terminal behind w, or Default.
func Of(w io.Writer) int {
	f, ok := w.(fder)
	if !ok {
		return Default
	}
	fd := int(f.Fd())
	if !isTerminalFn(fd) {
		return Default
	}
	cols, _, err := getSizeFn(fd)
	if err != nil || cols <= 0 {
		return Default
	}
	return cols
}
