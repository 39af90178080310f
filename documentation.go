// This file is part of go-optparse.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package optparse - Declares command line options, parses an argument vector
against them and renders usage text wrapped to a terminal width.

# Usage

	output, _ := optparse.NewOption("output-dir", 'o', optparse.RequiredParameter, false,
		optparse.Description("Sets the output folder path."), optparse.ValueName("path"))
	verbose, _ := optparse.NewOption("verbose", 'v', optparse.NoParameter, true)

	parser := optparse.New()
	parser.AddOptions(output, verbose)

	next, err := parser.Parse(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		_ = parser.WriteUsage(os.Stderr)
		os.Exit(1)
	}
	dir, _ := output.Value()
	files := os.Args[next:]

# Features

• Long options `--name` and `--name=value`.

• Short options `-n`, `-n value` and `-nvalue`.
Short options without a parameter can be bundled: `-abc` is `-a -b -c`.
Only the last letter of a bundle can take the next argument as its parameter.

• Parameter policies: none (toggle), optional and required.
A parameter is only read from the next argument if it doesn't look like an option.
Parameters starting with a dash can be passed as `--name=-value`.

• Required options, reported after the whole argument vector was scanned.

• Requirement groups: at least one member must be called, or exactly one when
the group is exclusive. Calling a second member of an exclusive group stops
the parse immediately.

• `--` stops option parsing. Parsing also stops at the first non option argument.

• Handlers called as each option is matched.

• Usage text with descriptions wrapped to a column width, optionally hyphenating
long words.

• All user facing strings live in the text package and can be overridden or
translated through golang.org/x/text/message.

# Errors

Parse returns a *ParseError. Use errors.Is with ErrorUnknownOption,
ErrorMissingParameter, ErrorUnexpectedParameter, ErrorMissingRequiredOption,
ErrorGroupRequirementNotMet or ErrorExclusiveGroupConflict to check its kind.

Declaration mistakes, like an empty group or an option in two groups, return
errors wrapping ErrorConfiguration.
*/
package optparse
