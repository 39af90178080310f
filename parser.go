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
	"fmt"
	"io"
	"log"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/DavidGamba/go-optparse/internal/help"
	"github.com/DavidGamba/go-optparse/internal/sliceiterator"
	"github.com/DavidGamba/go-optparse/internal/termwidth"
	"github.com/DavidGamba/go-optparse/text"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Hyphenator - Splits long words when wrapping usage descriptions.
// See CompoundWords.
type Hyphenator = help.Hyphenator

// HyphenatorFunc - Adapter to use an ordinary function as a Hyphenator.
type HyphenatorFunc = help.HyphenatorFunc

// CompoundWords - Default Hyphenator, it only splits after an existing hyphen.
var CompoundWords = help.CompoundWords

// Parser - Option registry and parsing state.
// A Parser, like the options registered in it, is meant to parse a single
// argument vector.
type Parser struct {
	options     []*Option // registration order
	byLongName  map[string]*Option
	byShortName map[rune]*Option
	groups      []*Group

	tag        language.Tag
	printer    *message.Printer
	hyphenator Hyphenator

	parsed bool
}

// New - Returns an empty Parser using English messages and the CompoundWords
// hyphenator.
func New() *Parser {
	return &Parser{
		byLongName:  map[string]*Option{},
		byShortName: map[rune]*Option{},
		tag:         language.English,
		printer:     text.Printer(language.English),
		hyphenator:  help.CompoundWords,
	}
}

// SetLanguage - Language used to look up translations of the strings in the
// text package, both for errors and usage output.
func (p *Parser) SetLanguage(tag language.Tag) *Parser {
	p.tag = tag
	p.printer = text.Printer(tag)
	return p
}

// Language - Returns the language set with SetLanguage.
func (p *Parser) Language() language.Tag {
	return p.tag
}

// SetHyphenator - Hyphenator used to split words longer than a usage line.
// nil disables hyphenation.
func (p *Parser) SetHyphenator(h Hyphenator) *Parser {
	p.hyphenator = h
	return p
}

// AddOption - Adds a single option.
// If an option with the same long name is already present it is replaced,
// along with its short name.
func (p *Parser) AddOption(opt *Option) *Parser {
	if opt == nil {
		return p
	}
	if existing, ok := p.byLongName[opt.longName]; ok {
		if existing == opt {
			return p
		}
		Logger.Printf("replacing option %s with %s", existing, opt)
		if existing.shortName != NoShortName && p.byShortName[existing.shortName] == existing {
			delete(p.byShortName, existing.shortName)
		}
		for i, o := range p.options {
			if o == existing {
				p.options[i] = opt
				break
			}
		}
	} else {
		p.options = append(p.options, opt)
	}
	p.byLongName[opt.longName] = opt
	if opt.shortName != NoShortName {
		if prev, ok := p.byShortName[opt.shortName]; ok && prev != opt {
			Logger.Printf("short name -%c moves from %s to %s", opt.shortName, prev, opt)
		}
		p.byShortName[opt.shortName] = opt
	}
	return p
}

// AddOptions - Adds options in order, with the same replacement rules as AddOption.
func (p *Parser) AddOptions(options ...*Option) *Parser {
	for _, opt := range options {
		p.AddOption(opt)
	}
	return p
}

// AddOptionGroup - Adds every member of the group as with AddOptions and
// validates the group requirement at the end of Parse.
func (p *Parser) AddOptionGroup(g *Group) error {
	if g == nil {
		return fmt.Errorf(text.ErrorEmptyGroup+"%w", ErrorConfiguration)
	}
	p.AddOptions(g.options...)
	if !p.hasGroup(g) {
		p.groups = append(p.groups, g)
	}
	return nil
}

func (p *Parser) hasGroup(g *Group) bool {
	for _, e := range p.groups {
		if e == g {
			return true
		}
	}
	return false
}

// Options - Registered options in registration order.
func (p *Parser) Options() []*Option {
	return append([]*Option{}, p.options...)
}

// Groups - Registered groups in registration order.
func (p *Parser) Groups() []*Group {
	return append([]*Group{}, p.groups...)
}

// Lookup - Finds a registered option by long name.
func (p *Parser) Lookup(longName string) (*Option, bool) {
	opt, ok := p.byLongName[longName]
	return opt, ok
}

// Parse - Matches the argument vector against the registered options.
//
// argv is expected to be os.Args: argv[0] is the program name and is skipped.
// On success it returns the index of the first non option argument, or
// len(argv) if there is none. A `--` argument stops option parsing and is
// skipped.
//
// On failure the error is a *ParseError and the match state of the options
// must not be relied upon.
// Calling Parse a second time returns an ErrorConfiguration error.
func (p *Parser) Parse(argv []string) (int, error) {
	if p.parsed {
		return 0, fmt.Errorf(text.ErrorAlreadyParsed+"%w", ErrorConfiguration)
	}
	p.parsed = true

	iterator := sliceiterator.New(argv, 1)
	next := -1

ARGS_LOOP:
	for iterator.Next() {
		argType, pair := isOption(iterator.Value())
		switch argType {
		case argTypeTerminator:
			next = iterator.Index() + 1
			break ARGS_LOOP
		case argTypeText:
			next = iterator.Index()
			break ARGS_LOOP
		case argTypeLong:
			err := p.resolveLong(iterator, pair)
			if err != nil {
				return iterator.Index(), err
			}
		case argTypeShort:
			err := p.resolveShort(iterator, pair)
			if err != nil {
				return iterator.Index(), err
			}
		}
	}
	if next < 0 {
		next = iterator.Index()
	}
	Logger.Printf("scan done, next argument index: %d", next)

	err := p.validate()
	if err != nil {
		return next, err
	}
	return next, nil
}

func (p *Parser) resolveLong(iterator *sliceiterator.Iterator, pair optionPair) error {
	token := "--" + pair.Option
	opt, ok := p.byLongName[pair.Option]
	if !ok {
		return p.fail(&ParseError{Kind: UnknownOption, Index: iterator.Index(), Token: token})
	}
	Logger.Printf("resolved %s as %s", iterator.Value(), opt)
	if opt.parameter == NoParameter {
		if pair.HasArg {
			return p.fail(&ParseError{Kind: UnexpectedParameter, Index: iterator.Index(), Token: token, Parameter: pair.Arg, Option: opt})
		}
		return p.match(iterator, opt, "", false)
	}
	if pair.HasArg {
		return p.match(iterator, opt, pair.Arg, true)
	}
	return p.nextParameter(iterator, opt, token)
}

// resolveShort - Resolves a bundle of short options letter by letter.
// A letter that takes a parameter consumes the rest of the bundle, or, being
// the last one, the next argument.
func (p *Parser) resolveShort(iterator *sliceiterator.Iterator, pair optionPair) error {
	letters := []rune(pair.Option)
	for i, r := range letters {
		token := "-" + string(r)
		opt, ok := p.byShortName[r]
		if !ok {
			return p.fail(&ParseError{Kind: UnknownOption, Index: iterator.Index(), Token: token})
		}
		Logger.Printf("resolved %s in %s as %s", token, iterator.Value(), opt)
		rest := string(letters[i+1:])
		if opt.parameter == NoParameter {
			if strings.HasPrefix(rest, "=") {
				return p.fail(&ParseError{Kind: UnexpectedParameter, Index: iterator.Index(), Token: token, Parameter: rest[1:], Option: opt})
			}
			err := p.match(iterator, opt, "", false)
			if err != nil {
				return err
			}
			continue
		}
		if rest != "" {
			return p.match(iterator, opt, strings.TrimPrefix(rest, "="), true)
		}
		return p.nextParameter(iterator, opt, token)
	}
	return nil
}

// nextParameter - Consumes the next argument as the parameter of opt unless
// it looks like an option.
func (p *Parser) nextParameter(iterator *sliceiterator.Iterator, opt *Option, token string) error {
	value, ok := iterator.PeekNextValue()
	if ok && !looksLikeOption(value) {
		index := iterator.Index()
		iterator.Next()
		Logger.Printf("%s takes parameter %q", token, value)
		return p.matchAt(index, opt, value, true)
	}
	if opt.parameter == RequiredParameter {
		return p.fail(&ParseError{Kind: MissingParameter, Index: iterator.Index(), Token: token, Option: opt, nextIsOption: ok})
	}
	return p.match(iterator, opt, "", false)
}

func (p *Parser) match(iterator *sliceiterator.Iterator, opt *Option, value string, ok bool) error {
	return p.matchAt(iterator.Index(), opt, value, ok)
}

func (p *Parser) matchAt(index int, opt *Option, value string, ok bool) error {
	err := opt.matchedWithParameter(value, ok)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Index = index
			perr.Token = p.tokenFor(perr.Option)
			return p.fail(perr)
		}
		return err
	}
	return nil
}

func (p *Parser) tokenFor(opt *Option) string {
	if opt == nil {
		return ""
	}
	return "--" + opt.longName
}

// validate - End of parse requirement checks.
// Options are checked before groups, both in registration order.
func (p *Parser) validate() error {
	for _, opt := range p.options {
		if opt.group != nil && p.hasGroup(opt.group) {
			continue
		}
		if !opt.optional && !opt.matched {
			return p.fail(&ParseError{Kind: MissingRequiredOption, Index: -1, Token: p.tokenFor(opt), Option: opt})
		}
	}
	for _, g := range p.groups {
		if !g.matched {
			return p.fail(&ParseError{Kind: GroupRequirementNotMet, Index: -1, Group: g})
		}
	}
	return nil
}

func (p *Parser) fail(err *ParseError) error {
	err.printer = p.printer
	Logger.Printf("parse failed: %s: %s", err.Kind, err)
	return err
}

// Usage - Returns the usage of every registered option in registration order,
// separated by blank lines and wrapped to columnWidth characters.
// A columnWidth of 0 disables wrapping.
func (p *Parser) Usage(columnWidth int) string {
	blocks := []string{}
	for _, opt := range p.options {
		blocks = append(blocks, opt.usageText(columnWidth, p.printer, p.hyphenator))
	}
	return strings.Join(blocks, "\n")
}

// WriteUsage - Writes Usage to w, wrapped to the width of the terminal behind
// w, or to 80 columns when w is not a terminal.
func (p *Parser) WriteUsage(w io.Writer) error {
	_, err := io.WriteString(w, p.Usage(termwidth.Of(w)))
	return err
}
