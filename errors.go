// This file is part of go-optparse.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optparse

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/DavidGamba/go-optparse/text"
)

// ErrorConfiguration - Indicates the programmer declared options or groups
// that can't work, for example an empty group.
// The message of the wrapping error holds the details.
var ErrorConfiguration = errors.New("")

// Parse error kinds exposed for use with errors.Is.
var (
	ErrorUnknownOption          = errors.New("unknown option")
	ErrorMissingParameter       = errors.New("missing parameter")
	ErrorUnexpectedParameter    = errors.New("unexpected parameter")
	ErrorMissingRequiredOption  = errors.New("missing required option")
	ErrorGroupRequirementNotMet = errors.New("group requirement not met")
	ErrorExclusiveGroupConflict = errors.New("exclusive group conflict")
)

// ErrorKind - Classifies a parse failure.
type ErrorKind int

// Parse error kinds
const (
	UnknownOption ErrorKind = iota + 1
	MissingParameter
	UnexpectedParameter
	MissingRequiredOption
	GroupRequirementNotMet
	ExclusiveGroupConflict
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownOption:
		return "UnknownOption"
	case MissingParameter:
		return "MissingParameter"
	case UnexpectedParameter:
		return "UnexpectedParameter"
	case MissingRequiredOption:
		return "MissingRequiredOption"
	case GroupRequirementNotMet:
		return "GroupRequirementNotMet"
	case ExclusiveGroupConflict:
		return "ExclusiveGroupConflict"
	}
	return "ErrorKind(?)"
}

// Fatal - Indicates the kind stops the argument scan at the offending token.
// The other kinds are only reported after a complete scan.
func (k ErrorKind) Fatal() bool {
	switch k {
	case UnknownOption, MissingParameter, UnexpectedParameter, ExclusiveGroupConflict:
		return true
	}
	return false
}

func (k ErrorKind) sentinel() error {
	switch k {
	case UnknownOption:
		return ErrorUnknownOption
	case MissingParameter:
		return ErrorMissingParameter
	case UnexpectedParameter:
		return ErrorUnexpectedParameter
	case MissingRequiredOption:
		return ErrorMissingRequiredOption
	case GroupRequirementNotMet:
		return ErrorGroupRequirementNotMet
	case ExclusiveGroupConflict:
		return ErrorExclusiveGroupConflict
	}
	return nil
}

// ParseError - Describes why Parse failed.
type ParseError struct {
	Kind ErrorKind

	// Index of the offending argument, -1 for failures found after the scan.
	Index int

	// Token is the option as typed, "--name" or "-n".
	Token string

	// Parameter given to an option that takes none.
	Parameter string

	// Option involved in the failure, nil for UnknownOption and GroupRequirementNotMet.
	// For ExclusiveGroupConflict it is the second member matched.
	Option *Option

	// Conflict is the member that was matched first in an ExclusiveGroupConflict.
	Conflict *Option

	// Group involved in GroupRequirementNotMet and ExclusiveGroupConflict.
	Group *Group

	nextIsOption bool // MissingParameter because the next argument looked like an option
	printer      *message.Printer
}

func (e *ParseError) Error() string {
	p := e.printer
	if p == nil {
		p = text.Printer(language.English)
	}
	switch e.Kind {
	case UnknownOption:
		return p.Sprintf(text.ErrorUnknownOption, e.Token)
	case MissingParameter:
		if e.nextIsOption {
			return p.Sprintf(text.ErrorParameterWithDash, e.Token, e.Option.LongName())
		}
		return p.Sprintf(text.ErrorMissingParameter, e.Token)
	case UnexpectedParameter:
		return p.Sprintf(text.ErrorUnexpectedParameter, e.Token, e.Parameter)
	case MissingRequiredOption:
		return p.Sprintf(text.ErrorMissingRequiredOption, e.Option.LongName())
	case GroupRequirementNotMet:
		return p.Sprintf(text.ErrorGroupRequirementNotMet, memberList(e.Group))
	case ExclusiveGroupConflict:
		return p.Sprintf(text.ErrorExclusiveGroupConflict, e.Conflict.LongName(), e.Option.LongName())
	}
	return e.Kind.String()
}

// Unwrap - Returns the sentinel error of the kind.
func (e *ParseError) Unwrap() error {
	return e.Kind.sentinel()
}

func memberList(g *Group) string {
	names := []string{}
	if g != nil {
		for _, o := range g.options {
			names = append(names, "--"+o.longName)
		}
	}
	return strings.Join(names, ", ")
}
