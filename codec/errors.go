/*
 * errors.go, part of gommtf.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package codec

import (
	"errors"
	"fmt"
)

// Use errors.Is with these to tell what went wrong.
var (
	ErrMalformedHeader  = errors.New("malformed binary field")
	ErrUnsupportedCodec = errors.New("unsupported codec")
)

// Error is the error type returned by this package. Errors are always critical:
// a field that cannot be decoded means the whole file can't.
type Error struct {
	kind    error
	message string
	deco    []string
}

func newError(kind error, message string, caller string) *Error {
	return &Error{kind: kind, message: message, deco: []string{caller}}
}

// Error returns a string with an error message.
func (err *Error) Error() string {
	return fmt.Sprintf("codec: %s: %s", err.kind, err.message)
}

// Unwrap returns the sentinel error describing the kind of failure.
func (err *Error) Unwrap() error { return err.kind }

// Decorate adds dec to the decoration slice of the error and returns the
// resulting slice. An empty string just returns the current slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns whether the error is critical or it can be ignored.
func (err *Error) Critical() bool { return true }

// errDecorate decorates err with the caller's name if it is an *Error,
// and returns it unchanged otherwise.
func errDecorate(err error, caller string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
