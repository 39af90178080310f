// This file is part of go-optparse.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optparse

import (
	"regexp"
)

type argType int

const (
	argTypeText       argType = iota // Regular cli argument, ends option scanning.
	argTypeTerminator                // --
	argTypeLong                      // --name or --name=arg
	argTypeShort                     // -abc, the letters are resolved by the caller
)

// 1: option
// 2: =arg
var isLongOptionRegex = regexp.MustCompile(`(?s)^--([^=]*)(=.*)?$`)

type optionPair struct {
	Option string
	Arg    string
	HasArg bool
}

/*
isOption - Classifies a cli argument.

For long options it returns the name without leading dashes and the argument
after the first '=', if any.
For short options it returns the bundle of letters without the leading dash.
Whether a letter in the bundle takes the rest of the bundle as its argument
depends on the option declaration, so it is the caller's responsibility.

The terminator `--` and the lonesome dash `-` are not options.
*/
func isOption(s string) (argType, optionPair) {
	switch s {
	case "--":
		return argTypeTerminator, optionPair{Option: "--"}
	case "-":
		return argTypeText, optionPair{}
	}
	if match := isLongOptionRegex.FindStringSubmatch(s); match != nil {
		opt := optionPair{Option: match[1]}
		if match[2] != "" {
			opt.Arg = match[2][1:]
			opt.HasArg = true
		}
		return argTypeLong, opt
	}
	if len(s) > 1 && s[0] == '-' {
		return argTypeShort, optionPair{Option: s[1:]}
	}
	return argTypeText, optionPair{}
}

// looksLikeOption - Indicates the argument can't be consumed as a parameter.
func looksLikeOption(s string) bool {
	t, _ := isOption(s)
	return t != argTypeText
}
