// This file is part of go-optparse.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optparse

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func checkError(t *testing.T, got, expected error) {
	t.Helper()
	if (got == nil && expected != nil) || (got != nil && expected == nil) || (got != nil && expected != nil && !errors.Is(got, expected)) {
		t.Errorf("wrong error received: got = '%#v', want '%#v'", got, expected)
	}
}

// setupTestLogging - Defines an output for the default Logger and returns a
// function that prints the output if the output is not empty.
//
// Usage:
//
//	logTestOutput := setupTestLogging(t)
//	defer logTestOutput()
func setupTestLogging(t *testing.T) func() {
	s := ""
	buf := bytes.NewBufferString(s)
	Logger.SetOutput(buf)
	return func() {
		if len(buf.String()) > 0 {
			t.Log("\n" + buf.String())
		}
	}
}

// Test helper to compare two string outputs and find the first difference
func firstDiff(got, expected string) string {
	same := ""
	for i, gc := range got {
		if len([]rune(expected)) <= i {
			return fmt.Sprintf("got:\n%s\nIndex: %d | diff: got '%s' - exp '%s'\n", got, len(expected), got, expected)
		}
		if gc != []rune(expected)[i] {
			return fmt.Sprintf("got:\n%s\nIndex: %d | diff: got '%c' - exp '%c'\n%s\n", got, i, gc, []rune(expected)[i], same)
		}
		same += string(gc)
	}
	if len(expected) > len(got) {
		return fmt.Sprintf("got:\n%s\nIndex: %d | diff: got '%s' - exp '%s'\n", got, len(got), got, expected)
	}
	return ""
}

// mustOption - NewOption that fails the test on configuration errors.
func mustOption(t *testing.T, longName string, shortName rune, parameter ParameterPolicy, optional bool, fns ...ModifyFn) *Option {
	t.Helper()
	opt, err := NewOption(longName, shortName, parameter, optional, fns...)
	if err != nil {
		t.Fatalf("NewOption(%q): %s", longName, err)
	}
	return opt
}

func mustGroup(t *testing.T, reqType RequirementType, options ...*Option) *Group {
	t.Helper()
	g, err := NewGroup(options, reqType)
	if err != nil {
		t.Fatalf("NewGroup: %s", err)
	}
	return g
}

// asParseError - Fails the test unless err is a *ParseError of the given kind.
func asParseError(t *testing.T, err error, kind ErrorKind) *ParseError {
	t.Helper()
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %#v", err)
	}
	if perr.Kind != kind {
		t.Fatalf("wrong error kind: got %s, want %s: %s", perr.Kind, kind, perr)
	}
	return perr
}
