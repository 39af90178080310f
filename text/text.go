// This file is part of go-optparse.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
//
// Every string is exposed as a variable so it can be overridden directly, or
// translated through the golang.org/x/text/message catalog by registering a
// translation keyed on the English text:
//
//	message.SetString(language.Spanish, text.UsageRequired, "Obligatorio.")
package text

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Usage strings.
var (
	// UsageRequired - Sentence appended to the description of a required option.
	UsageRequired = "Required."

	// UsageOptional - Sentence appended to the description of an optional option.
	UsageOptional = "Optional."

	// UsageDefaultValueName - Placeholder used in `--name=value` when no value name was provided.
	UsageDefaultValueName = "value"
)

// Parse errors.
var (
	// ErrorUnknownOption - It has a string placeholder '%s' for the option as typed.
	ErrorUnknownOption = "unknown option '%s'"

	// ErrorMissingParameter - It has a string placeholder '%s' for the option as typed.
	ErrorMissingParameter = "missing parameter for option '%s'"

	// ErrorParameterWithDash - Used when the next argument looks like an option.
	// It has string placeholders for the option as typed and the option long name.
	ErrorParameterWithDash = "missing parameter for option '%s'\nIf passing parameters that start with '-' use --%s=-parameter"

	// ErrorUnexpectedParameter - It has string placeholders for the option as typed and the parameter.
	ErrorUnexpectedParameter = "option '%s' doesn't take a parameter, got '%s'"

	// ErrorMissingRequiredOption - It has a string placeholder '%s' for the option long name.
	ErrorMissingRequiredOption = "missing required option '--%s'"

	// ErrorGroupRequirementNotMet - It has a string placeholder '%s' for the list of members.
	ErrorGroupRequirementNotMet = "one of %s is required"

	// ErrorExclusiveGroupConflict - It has string placeholders for the first and second matched members.
	ErrorExclusiveGroupConflict = "options '--%s' and '--%s' can't be used together"
)

// Configuration errors.
var (
	ErrorEmptyLongName      = "option long name can't be empty"
	ErrorLongNameDashes     = "option long name '%s' can't start with '-'"
	ErrorInvalidShortName   = "short name '%c' for option '%s' must be a single printable character"
	ErrorInvalidParameter   = "invalid parameter policy %d for option '%s'"
	ErrorEmptyGroup         = "requirement group needs at least one option"
	ErrorNilGroupMember     = "requirement group member can't be nil"
	ErrorOptionInOtherGroup = "option '--%s' already belongs to another requirement group"
	ErrorUnknownRequirement = "unknown requirement group type %d"
	ErrorAlreadyParsed      = "parser has already been used, options are single use"
	ErrorDefinitionAtIndex  = "definition %d (%s)"
)

// Printer - Returns a message printer for the given language.
// Translations registered in the default x/text catalog take precedence over
// the variables in this package.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}
