// SPDX-FileCopyrightText: © 2024 Kevin Conway
// SPDX-FileCopyrightText: © 2017 Atlassian Pty Ltd
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
)

// ErrUnknownTransformer is returned when a Set has no transformer with the
// requested name.
var ErrUnknownTransformer = errors.New("unknown transformer") //nolint: gochecknoglobals

// InvalidStageError is returned when a stage of a transformer definition
// cannot be built.
type InvalidStageError struct {
	Transformer string
	// Stage is the zero based index of the stage within the definition.
	Stage   int
	Field   string
	Message string
	// Err is the underlying cause, if any.
	Err error
}

func (self *InvalidStageError) Error() string {
	return fmt.Sprintf("transformer %q stage %d invalid %s: %s", self.Transformer, self.Stage, self.Field, self.Message)
}

func (self *InvalidStageError) Is(target error) bool {
	_, ok := target.(*InvalidStageError)
	return ok
}

func (self *InvalidStageError) Unwrap() error {
	return self.Err
}

func newInvalidStageError(transformer string, stage int, field string, format string, args ...any) *InvalidStageError {
	return &InvalidStageError{
		Transformer: transformer,
		Stage:       stage,
		Field:       field,
		Message:     fmt.Sprintf(format, args...),
	}
}
