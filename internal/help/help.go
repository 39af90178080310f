// This file is part of go-optparse.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package help - Renders option usage text.
package help

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Padding - Indentation applied to every description line.
var Padding = 4

// Arg - Indicates whether an option takes a parameter for rendering purposes.
type Arg int

// Arg kinds
const (
	ArgNone Arg = iota
	ArgOptional
	ArgRequired
)

// Example - Returns the option example line, for example:
//
//	--output-dir=path | -o path
//	--level[=n] | -l [n]
//	--verbose | -v
//
// A shortName of 0 omits the short form segment.
func Example(longName string, shortName rune, valueName string, arg Arg) string {
	long := "--" + longName
	short := ""
	if shortName != 0 {
		short = "-" + string(shortName)
	}
	switch arg {
	case ArgRequired:
		long += "=" + valueName
		if short != "" {
			short += " " + valueName
		}
	case ArgOptional:
		long += "[=" + valueName + "]"
		if short != "" {
			short += " [" + valueName + "]"
		}
	}
	if short == "" {
		return long
	}
	return long + " | " + short
}

// Description - Composes the description paragraph from an optional custom
// description and the requiredness sentence.
func Description(description, requiredness string) string {
	description = strings.TrimSpace(description)
	if description == "" {
		return requiredness
	}
	description = strings.TrimRight(description, ".")
	return fmt.Sprintf("%s. %s", description, requiredness)
}

// Option - Returns the full usage block of a single option: the example line,
// a newline and the description wrapped to width with Padding indentation.
// The block ends with a newline.
func Option(example, description string, width int, h Hyphenator) string {
	return example + "\n" + Wrap(description, width, Padding, h) + "\n"
}

// Wrap - Greedy word wrap of s so that no line, indent included, is longer
// than width runes.
// A width of 0 or less disables wrapping.
// Words longer than a line are split with h when it offers a fitting
// hyphenation point, otherwise they are placed on a line of their own.
func Wrap(s string, width, indent int, h Hyphenator) string {
	prefix := strings.Repeat(" ", indent)
	words := strings.Fields(s)
	if width <= 0 {
		return prefix + strings.Join(words, " ")
	}
	avail := width - indent
	lines := []string{}
	line := ""
	flush := func() {
		if line != "" {
			lines = append(lines, prefix+line)
			line = ""
		}
	}
	for len(words) > 0 {
		word := words[0]
		words = words[1:]
		if line == "" && runeLen(word) <= avail {
			line = word
			continue
		}
		if line != "" && runeLen(line)+1+runeLen(word) <= avail {
			line += " " + word
			continue
		}
		if runeLen(word) <= avail {
			flush()
			line = word
			continue
		}

		// The word doesn't fit even on a line of its own.
		room := avail
		if line != "" {
			room = avail - runeLen(line) - 1
		}
		head, tail, ok := split(word, room, h)
		if !ok && line != "" {
			flush()
			head, tail, ok = split(word, avail, h)
		}
		if !ok {
			flush()
			lines = append(lines, prefix+word)
			continue
		}
		if line != "" {
			line += " " + head
		} else {
			line = head
		}
		flush()
		words = append([]string{tail}, words...)
	}
	flush()
	if len(lines) == 0 {
		return prefix
	}
	return strings.Join(lines, "\n")
}

// split - Splits word at the right-most hyphenation point whose rendered head
// fits in room.
func split(word string, room int, h Hyphenator) (string, string, bool) {
	if h == nil || room <= 0 {
		return "", "", false
	}
	bestHead, bestTail := "", ""
	for _, i := range h.Hyphenate(word) {
		if i <= 0 || i >= len(word) || !utf8.RuneStart(word[i]) {
			continue
		}
		head := word[:i]
		if !strings.HasSuffix(head, "-") {
			head += "-"
		}
		if runeLen(head) > room || runeLen(head) <= runeLen(bestHead) {
			continue
		}
		bestHead, bestTail = head, word[i:]
	}
	return bestHead, bestTail, bestHead != ""
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
