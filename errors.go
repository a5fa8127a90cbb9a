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

package mmtf

import (
	"errors"
	"fmt"
)

// Use errors.Is with these to tell what went wrong. Failures in the binary
// fields are reported with codec.ErrMalformedHeader and codec.ErrUnsupportedCodec.
var (
	//ErrInconsistentCount is returned when the counts declared in the file don't
	//match the index tables.
	ErrInconsistentCount = errors.New("inconsistent counts")
	//ErrDuplicateGroup is returned when a group id is repeated within a chain of a model.
	ErrDuplicateGroup = errors.New("repeated group id")
	//ErrMissingTemplate is returned when groupTypeList points outside groupList.
	ErrMissingTemplate = errors.New("missing group template")
	//ErrMissingField is returned when a required field is absent or has the wrong kind.
	ErrMissingField = errors.New("missing or invalid field")
	//ErrInvalidField is returned by Transfer when a value can't be converted.
	ErrInvalidField = errors.New("field can't be converted")
)

// DecodeError is the error type returned by this package. It is always critical:
// no partial DataDict is ever returned.
type DecodeError struct {
	kind    error
	message string
	deco    []string
}

func newError(kind error, caller string, format string, a ...interface{}) *DecodeError {
	return &DecodeError{kind: kind, message: fmt.Sprintf(format, a...), deco: []string{caller}}
}

func (err *DecodeError) Error() string {
	return fmt.Sprintf("mmtf: %s: %s", err.kind, err.message)
}

// Unwrap returns the sentinel error describing the kind of failure.
func (err *DecodeError) Unwrap() error { return err.kind }

// Decorate adds dec to the decoration slice of the error and returns the
// resulting slice. An empty string just returns the current slice.
func (err *DecodeError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns whether the error is critical or it can be ignored.
func (err *DecodeError) Critical() bool { return true }

// errDecorate decorates err with the caller's name if it implements Error,
// and returns it unchanged.
func errDecorate(err error, caller string) error {
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
