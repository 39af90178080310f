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

	"github.com/DavidGamba/go-optparse/text"
)

// RequirementType - Rule that satisfies a Group.
type RequirementType int

// Requirement types
const (
	AtLeastOne RequirementType = iota // Satisfied once any member is matched.
	Exclusive                         // Satisfied by exactly one member, a second member fails the parse.
)

func (t RequirementType) String() string {
	switch t {
	case AtLeastOne:
		return "AtLeastOne"
	case Exclusive:
		return "Exclusive"
	}
	return fmt.Sprintf("RequirementType(%d)", int(t))
}

// Group - Options bound by a requirement rule.
//
// Membership replaces the members' own Optional flag during validation: a
// group is satisfied as a whole.
type Group struct {
	options       []*Option
	reqType       RequirementType
	matched       bool
	matchedOption *Option // first member matched
}

// NewGroup - Binds options into a requirement group.
// Duplicated options are only kept once, in the position of their first appearance.
// An option can only belong to one group.
func NewGroup(options []*Option, reqType RequirementType) (*Group, error) {
	switch reqType {
	case AtLeastOne, Exclusive:
	default:
		return nil, fmt.Errorf(text.ErrorUnknownRequirement+"%w", reqType, ErrorConfiguration)
	}
	if len(options) == 0 {
		return nil, fmt.Errorf(text.ErrorEmptyGroup+"%w", ErrorConfiguration)
	}
	g := &Group{reqType: reqType}
	seen := map[*Option]bool{}
	for _, opt := range options {
		if opt == nil {
			return nil, fmt.Errorf(text.ErrorNilGroupMember+"%w", ErrorConfiguration)
		}
		if opt.group != nil {
			return nil, fmt.Errorf(text.ErrorOptionInOtherGroup+"%w", opt.longName, ErrorConfiguration)
		}
		if seen[opt] {
			continue
		}
		seen[opt] = true
		g.options = append(g.options, opt)
	}
	for _, opt := range g.options {
		opt.group = g
	}
	return g, nil
}

// Contains - Indicates if opt is a member of the group.
func (g *Group) Contains(opt *Option) bool {
	for _, o := range g.options {
		if o == opt {
			return true
		}
	}
	return false
}

// Options - Members in declaration order.
func (g *Group) Options() []*Option {
	return append([]*Option{}, g.options...)
}

// Type - The requirement rule of the group.
func (g *Group) Type() RequirementType { return g.reqType }

// Matched - Indicates the group requirement is satisfied.
func (g *Group) Matched() bool { return g.matched }

// optionWasMatched - Called by a member every time it is matched.
// Matching the same Exclusive member again is not a conflict.
func (g *Group) optionWasMatched(opt *Option) error {
	Logger.Printf("group %s: member --%s matched", g.reqType, opt.longName)
	if g.matchedOption == nil {
		g.matchedOption = opt
		g.matched = true
		return nil
	}
	if g.reqType == Exclusive && g.matchedOption != opt {
		return &ParseError{
			Kind:     ExclusiveGroupConflict,
			Index:    -1,
			Option:   opt,
			Conflict: g.matchedOption,
			Group:    g,
		}
	}
	return nil
}
