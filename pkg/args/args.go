// Package args assembles command-line tokens into the user and system text
// blocks of a prompt, plus the optional service overrides.
package args

import (
	"strconv"
	"strings"
)

// Flag is a recognized command-line flag.
type Flag string

const (
	FlagSystem  Flag = "--system"
	FlagUser    Flag = "--user"
	FlagModel   Flag = "--model"
	FlagURL     Flag = "--url"
	FlagPort    Flag = "--port"
	FlagVerbose Flag = "--verbose"
)

// IsFlag reports whether tok is one of the recognized flags.
func IsFlag(tok string) bool {
	switch Flag(tok) {
	case FlagSystem, FlagUser, FlagModel, FlagURL, FlagPort, FlagVerbose:
		return true
	}
	return false
}

// Mode is the destination of unflagged tokens.
type Mode int

const (
	ModeUser Mode = iota
	ModeSystem
)

// Arguments is the assembled command line. Nil pointers mean the override was
// not supplied.
type Arguments struct {
	User    string
	System  string
	Model   *string
	URL     *string
	Port    *uint16
	Verbose bool
}

// Parse assembles tokens (program name excluded) into Arguments.
//
// Unflagged tokens go to the active mode's list, which starts as ModeUser.
// The token right after --system or --user is taken as text without being
// checked against the flag set.
func Parse(tokens []string) Arguments {
	var (
		a      Arguments
		user   []string
		system []string
		mode   = ModeUser
	)

	appendTo := func(m Mode, tok string) {
		if m == ModeSystem {
			system = append(system, tok)
			return
		}
		user = append(user, tok)
	}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if !IsFlag(tok) {
			appendTo(mode, tok)
			continue
		}

		switch Flag(tok) {
		case FlagSystem, FlagUser:
			mode = ModeUser
			if Flag(tok) == FlagSystem {
				mode = ModeSystem
			}
			if i+1 < len(tokens) {
				i++
				appendTo(mode, tokens[i])
			}

		case FlagModel, FlagURL:
			var v string
			if i+1 < len(tokens) {
				i++
				v = tokens[i]
			}
			if Flag(tok) == FlagModel {
				a.Model = &v
			} else {
				a.URL = &v
			}

		case FlagPort:
			if i+1 < len(tokens) {
				i++
				a.Port = nil
				if p, err := strconv.ParseUint(tokens[i], 10, 16); err == nil {
					port := uint16(p)
					a.Port = &port
				}
			}

		case FlagVerbose:
			a.Verbose = true
		}
	}

	a.User = strings.Join(user, " ")
	a.System = strings.Join(system, " ")

	return a
}
