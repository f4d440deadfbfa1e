// SPDX-FileCopyrightText: © 2024 Kevin Conway
// SPDX-FileCopyrightText: © 2017 Atlassian Pty Ltd
// SPDX-License-Identifier: Apache-2.0

package rangemap

import "fmt"

// InvalidInterpolateError describes why a set of breakpoints cannot be used
// for interpolation. It is only returned by Interpolate.Validate. Transform
// never reports errors.
type InvalidInterpolateError struct {
	// Field is one of "input", "output", or "easing".
	Field   string
	Message string
}

func (self *InvalidInterpolateError) Error() string {
	return fmt.Sprintf("invalid interpolation %s: %s", self.Field, self.Message)
}

func (self *InvalidInterpolateError) Is(target error) bool {
	_, ok := target.(*InvalidInterpolateError)
	return ok
}

func newInvalidInterpolateError(field string, format string, args ...any) *InvalidInterpolateError {
	return &InvalidInterpolateError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}
