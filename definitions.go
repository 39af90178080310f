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

// Definition - Declarative form of an option, to build many options at once.
type Definition struct {
	LongName    string
	ShortName   rune
	Parameter   ParameterPolicy
	Optional    bool
	Handler     Handler
	Description string
	ValueName   string
}

// Definitions - List of option definitions.
//
//	options, err := optparse.Definitions{
//		{LongName: "output-dir", ShortName: 'o', Parameter: optparse.RequiredParameter,
//			Description: "Sets the output folder path.", ValueName: "path"},
//		{LongName: "verbose", ShortName: 'v', Optional: true},
//	}.Build()
type Definitions []Definition

// Build - Returns one Option per definition, in order.
// No options are returned if any definition is invalid.
func (defs Definitions) Build() ([]*Option, error) {
	options := make([]*Option, 0, len(defs))
	for i, def := range defs {
		fns := []ModifyFn{}
		if def.Description != "" {
			fns = append(fns, Description(def.Description))
		}
		if def.ValueName != "" {
			fns = append(fns, ValueName(def.ValueName))
		}
		opt, err := NewOptionWithHandler(def.LongName, def.ShortName, def.Parameter, def.Optional, def.Handler, fns...)
		if err != nil {
			return nil, fmt.Errorf(text.ErrorDefinitionAtIndex+": %w", i, def.LongName, err)
		}
		options = append(options, opt)
	}
	return options, nil
}
