// SPDX-FileCopyrightText: © 2024 Kevin Conway
// SPDX-FileCopyrightText: © 2017 Atlassian Pty Ltd
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cast"

	"github.com/kevinconway/rangemap"
)

func buildPipeline(name string, def Definition) (*Pipeline, error) {
	transformers := make([]rangemap.Transformer[float64], 0, len(def.Stages))
	for i, stage := range def.Stages {
		t, err := buildStage(name, i, stage)
		if err != nil {
			return nil, err
		}
		transformers = append(transformers, t)
	}
	p := &Pipeline{
		Name:        name,
		Transformer: rangemap.NewFlow(transformers...),
	}
	if def.Unit != "" {
		p.Formatter = rangemap.NewAppendUnit[float64](def.Unit)
	}
	return p, nil
}

func buildStage(name string, index int, stage Stage) (rangemap.Transformer[float64], error) {
	kinds := 0
	for _, set := range []bool{
		stage.Interpolate != nil,
		stage.Clamp != nil,
		stage.ClampOver != nil,
		stage.ClampUnder != nil,
		stage.Steps != nil,
		stage.Normalize != nil,
	} {
		if set {
			kinds = kinds + 1
		}
	}
	if kinds != 1 {
		return nil, newInvalidStageError(name, index, "stage", "must set exactly one of interpolate, clamp, clampOver, clampUnder, steps, normalize; got %d", kinds)
	}

	switch {
	case stage.Interpolate != nil:
		return buildInterpolate(name, index, stage.Interpolate)
	case stage.Clamp != nil:
		return buildClamp(name, index, stage.Clamp)
	case stage.ClampOver != nil:
		min, err := toFloat(stage.ClampOver)
		if err != nil {
			return nil, wrapStageError(name, index, "clampOver", err)
		}
		return rangemap.NewClampOver(min), nil
	case stage.ClampUnder != nil:
		max, err := toFloat(stage.ClampUnder)
		if err != nil {
			return nil, wrapStageError(name, index, "clampUnder", err)
		}
		return rangemap.NewClampUnder(max), nil
	case stage.Steps != nil:
		return buildSteps(name, index, stage.Steps)
	default:
		return buildNormalize(name, index, stage.Normalize)
	}
}

func buildInterpolate(name string, index int, stage *InterpolateStage) (rangemap.Transformer[float64], error) {
	input, err := toFloats(stage.Input)
	if err != nil {
		return nil, wrapStageError(name, index, "input", err)
	}
	output, err := toFloats(stage.Output)
	if err != nil {
		return nil, wrapStageError(name, index, "output", err)
	}
	var easing []rangemap.Transformer[float64]
	for i, easingName := range stage.Easing {
		e, ok := rangemap.EasingByName(easingName)
		if !ok {
			return nil, newInvalidStageError(name, index, "easing", "easing[%d] has unknown name %q", i, easingName)
		}
		easing = append(easing, e)
	}

	t := rangemap.NewInterpolate(input, output, easing...)
	if err := t.Validate(); err != nil {
		var invalid *rangemap.InvalidInterpolateError
		if errors.As(err, &invalid) {
			return nil, &InvalidStageError{
				Transformer: name,
				Stage:       index,
				Field:       invalid.Field,
				Message:     invalid.Message,
				Err:         err,
			}
		}
		return nil, wrapStageError(name, index, "interpolate", err)
	}
	return t, nil
}

func buildClamp(name string, index int, stage *ClampStage) (rangemap.Transformer[float64], error) {
	min, err := toFloat(stage.Min)
	if err != nil {
		return nil, wrapStageError(name, index, "min", err)
	}
	max, err := toFloat(stage.Max)
	if err != nil {
		return nil, wrapStageError(name, index, "max", err)
	}
	if min > max {
		return nil, newInvalidStageError(name, index, "min", "%v must not be greater than max %v", min, max)
	}
	return rangemap.NewClamp(min, max), nil
}

func buildSteps(name string, index int, stage *StepsStage) (rangemap.Transformer[float64], error) {
	if stage.Count == nil {
		return nil, newInvalidStageError(name, index, "count", "is required")
	}
	count, err := cast.ToIntE(stage.Count)
	if err != nil {
		return nil, wrapStageError(name, index, "count", err)
	}
	if count < 2 {
		return nil, newInvalidStageError(name, index, "count", "must be at least 2, got %d", count)
	}
	min, err := toFloat(stage.Min)
	if err != nil {
		return nil, wrapStageError(name, index, "min", err)
	}
	max, err := toFloat(stage.Max)
	if err != nil {
		return nil, wrapStageError(name, index, "max", err)
	}
	return rangemap.NewSteps(count, min, max), nil
}

func buildNormalize(name string, index int, stage *NormalizeStage) (rangemap.Transformer[float64], error) {
	lower, err := toFloat(stage.Lower)
	if err != nil {
		return nil, wrapStageError(name, index, "lower", err)
	}
	upper, err := toFloat(stage.Upper)
	if err != nil {
		return nil, wrapStageError(name, index, "upper", err)
	}
	if lower >= upper {
		return nil, newInvalidStageError(name, index, "lower", "%v must be less than upper %v", lower, upper)
	}
	exponent := 1.0
	if stage.Exponent != nil {
		exponent, err = toFloat(stage.Exponent)
		if err != nil {
			return nil, wrapStageError(name, index, "exponent", err)
		}
	}
	return rangemap.NewNormalize(lower, upper, exponent), nil
}

func wrapStageError(name string, index int, field string, err error) *InvalidStageError {
	return &InvalidStageError{
		Transformer: name,
		Stage:       index,
		Field:       field,
		Message:     err.Error(),
		Err:         err,
	}
}

var errMissingValue = errors.New("value is required") //nolint: gochecknoglobals

func toFloat(v any) (float64, error) {
	if v == nil {
		return 0, errMissingValue
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, err
	}
	return f, nil
}

func toFloats(vs []any) ([]float64, error) {
	fs := make([]float64, len(vs))
	for i, v := range vs {
		f, err := toFloat(v)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		fs[i] = f
	}
	return fs, nil
}
