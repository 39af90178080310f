// This file is part of go-optparse.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optparse

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/DavidGamba/go-optparse/internal/help"
	"github.com/DavidGamba/go-optparse/text"
)

// ParameterPolicy - Indicates whether an option takes a parameter.
type ParameterPolicy int

// Parameter policies
const (
	NoParameter       ParameterPolicy = iota // Boolean toggle.
	OptionalParameter                        // A parameter may follow the option.
	RequiredParameter                        // Matching fails if no parameter follows the option.
)

// NoShortName - Short name of options that can only be called with their long form.
const NoShortName rune = 0

// UsageKey - Recognized keys of UsageInfo.
type UsageKey int

// Usage info keys
const (
	UsageValueName   UsageKey = iota // Placeholder in `--name=VALUE` and `-n VALUE`. Defaults to "value".
	UsageDescription                 // Human description, followed by the requiredness sentence.
)

// UsageInfo - Already localized strings used to render the option usage.
type UsageInfo map[UsageKey]string

// Handler - Called when the option is matched on the command line.
// hasArgument is false when no parameter was given.
type Handler func(optName string, argument string, hasArgument bool)

// Option - A declared command line option.
//
// The declaration is fixed at construction. The match state is only written
// by Parser.Parse and can be read afterwards with Matched and Value.
// Options are single use: a fresh Option is needed for every parse.
type Option struct {
	longName  string
	shortName rune
	parameter ParameterPolicy
	optional  bool
	handler   Handler
	usage     UsageInfo

	group *Group

	matched  bool
	value    string
	hasValue bool
}

// ModifyFn - Function signature for functions that modify an option at construction.
type ModifyFn func(opt *Option)

// Description - Add a description to an option for use in usage output.
func Description(msg string) ModifyFn {
	return func(opt *Option) {
		opt.usage[UsageDescription] = msg
	}
}

// ValueName - Name of the parameter placeholder used in usage output.
func ValueName(name string) ModifyFn {
	return func(opt *Option) {
		opt.usage[UsageValueName] = name
	}
}

// WithUsageInfo - Sets all the usage strings at once. Unrecognized keys are ignored.
func WithUsageInfo(info UsageInfo) ModifyFn {
	return func(opt *Option) {
		for k, v := range info {
			opt.usage[k] = v
		}
	}
}

// NewOption - Declares an option to be inspected with Matched and Value after
// parsing.
//
// longName is used as `--longName`, shortName as `-s`; pass NoShortName for
// long form only options.
// optional indicates whether the option itself may be absent from the command
// line, independently of its parameter policy.
func NewOption(longName string, shortName rune, parameter ParameterPolicy, optional bool, fns ...ModifyFn) (*Option, error) {
	return NewOptionWithHandler(longName, shortName, parameter, optional, nil, fns...)
}

// NewOptionWithHandler - Same as NewOption but handler is called as soon as
// the option is matched. handler may be nil.
func NewOptionWithHandler(longName string, shortName rune, parameter ParameterPolicy, optional bool, handler Handler, fns ...ModifyFn) (*Option, error) {
	if longName == "" {
		return nil, fmt.Errorf(text.ErrorEmptyLongName+"%w", ErrorConfiguration)
	}
	if strings.HasPrefix(longName, "-") {
		return nil, fmt.Errorf(text.ErrorLongNameDashes+"%w", longName, ErrorConfiguration)
	}
	if shortName != NoShortName && (shortName == '-' || shortName == '=' || unicode.IsSpace(shortName) || !unicode.IsPrint(shortName)) {
		return nil, fmt.Errorf(text.ErrorInvalidShortName+"%w", shortName, longName, ErrorConfiguration)
	}
	switch parameter {
	case NoParameter, OptionalParameter, RequiredParameter:
	default:
		return nil, fmt.Errorf(text.ErrorInvalidParameter+"%w", parameter, longName, ErrorConfiguration)
	}
	opt := &Option{
		longName:  longName,
		shortName: shortName,
		parameter: parameter,
		optional:  optional,
		handler:   handler,
		usage:     UsageInfo{},
	}
	for _, fn := range fns {
		fn(opt)
	}
	return opt, nil
}

// LongName - Name used as `--name`.
func (opt *Option) LongName() string { return opt.longName }

// ShortName - Character used as `-c`, NoShortName if there is none.
func (opt *Option) ShortName() rune { return opt.shortName }

// Parameter - The parameter policy.
func (opt *Option) Parameter() ParameterPolicy { return opt.parameter }

// Optional - Indicates the option may be absent from the command line.
func (opt *Option) Optional() bool { return opt.optional }

// Matched - Indicates if the option was passed on the command line.
func (opt *Option) Matched() bool { return opt.matched }

// Value - Returns the parameter given to the option and whether there was one.
func (opt *Option) Value() (string, bool) { return opt.value, opt.hasValue }

// Group - Returns the requirement group the option belongs to, or nil.
func (opt *Option) Group() *Group { return opt.group }

// UsageInfo - Returns a copy of the usage strings.
func (opt *Option) UsageInfo() UsageInfo {
	info := UsageInfo{}
	for k, v := range opt.usage {
		info[k] = v
	}
	return info
}

// Usage - Returns the usage block of the option: the example line followed by
// the description indented four spaces and wrapped so that no line exceeds
// lineWidth characters. A lineWidth of 0 disables wrapping.
func (opt *Option) Usage(lineWidth int) string {
	return opt.usageText(lineWidth, text.Printer(language.English), help.CompoundWords)
}

func (opt *Option) usageText(lineWidth int, p *message.Printer, h help.Hyphenator) string {
	valueName := opt.usage[UsageValueName]
	if valueName == "" {
		valueName = p.Sprintf(text.UsageDefaultValueName)
	}
	arg := help.ArgNone
	switch opt.parameter {
	case OptionalParameter:
		arg = help.ArgOptional
	case RequiredParameter:
		arg = help.ArgRequired
	}
	requiredness := p.Sprintf(text.UsageRequired)
	if opt.optional {
		requiredness = p.Sprintf(text.UsageOptional)
	}
	example := help.Example(opt.longName, opt.shortName, valueName, arg)
	description := help.Description(opt.usage[UsageDescription], requiredness)
	return help.Option(example, description, lineWidth, h)
}

// matchedWithParameter - Records a match and notifies the group and the handler.
// The caller enforces the parameter policy.
func (opt *Option) matchedWithParameter(parameter string, ok bool) error {
	opt.matched = true
	opt.value, opt.hasValue = parameter, ok
	if opt.group != nil {
		err := opt.group.optionWasMatched(opt)
		if err != nil {
			return err
		}
	}
	if opt.handler != nil {
		opt.handler(opt.longName, opt.value, opt.hasValue)
	}
	return nil
}

func (opt *Option) String() string {
	if opt.shortName == NoShortName {
		return "--" + opt.longName
	}
	return fmt.Sprintf("--%s|-%c", opt.longName, opt.shortName)
}
