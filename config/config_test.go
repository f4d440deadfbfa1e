// SPDX-FileCopyrightText: © 2024 Kevin Conway
// SPDX-FileCopyrightText: © 2017 Atlassian Pty Ltd
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sgostarter/i/l"
	"github.com/stretchr/testify/assert"

	"github.com/kevinconway/rangemap"
)

const exampleDocument = `
transformers:
  opacity:
    stages:
      - interpolate:
          input: [0, 50, 100]
          output: [0, 1, 0]
          easing: [inQuad, linear]
      - clamp: {min: 0, max: 1}
  width:
    unit: px
    stages:
      - clampOver: 0
      - interpolate:
          input: ["0", "1"]
          output: [0, 400]
  level:
    stages:
      - steps: {count: 5, min: 0, max: 100}
  ceiling:
    stages:
      - clampUnder: "10"
  identity:
    stages: []
  load:
    stages:
      - normalize: {lower: 50, upper: 150, exponent: 2}
  share:
    stages:
      - normalize: {lower: 0, upper: 10}
`

func TestParse(t *testing.T) {
	set, err := Parse([]byte(exampleDocument), l.NewConsoleLoggerWrapper())
	assert.Nil(t, err)
	assert.Equal(t, []string{"ceiling", "identity", "level", "load", "opacity", "share", "width"}, set.Names())

	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{name: "opacity", value: -10, want: 0},
		{name: "opacity", value: 25, want: .25},
		{name: "opacity", value: 50, want: 1},
		{name: "opacity", value: 75, want: .5},
		{name: "opacity", value: 150, want: 0},
		{name: "width", value: -3, want: 0},
		{name: "width", value: .5, want: 200},
		{name: "width", value: 2, want: 400},
		{name: "level", value: 30, want: .25},
		{name: "level", value: 40, want: .5},
		{name: "ceiling", value: 12, want: 10},
		{name: "ceiling", value: 8, want: 8},
		{name: "identity", value: 42, want: 42},
		{name: "load", value: 100, want: .25},
		{name: "load", value: 200, want: 1},
		{name: "share", value: 4, want: .4},
	}
	for _, tt := range tests {
		result, err := set.Transform(tt.name, tt.value)
		assert.Nil(t, err)
		assert.InDelta(t, tt.want, result, 1e-9, "%s(%v)", tt.name, tt.value)
	}
}

func TestSet_Format(t *testing.T) {
	set, err := Parse([]byte(exampleDocument), nil)
	assert.Nil(t, err)

	s, err := set.Format("width", .05)
	assert.Nil(t, err)
	assert.Equal(t, "20px", s)

	s, err = set.Format("ceiling", 12.5)
	assert.Nil(t, err)
	assert.Equal(t, "10", s)

	_, err = set.Format("missing", 1)
	assert.True(t, errors.Is(err, ErrUnknownTransformer))

	_, err = set.Transform("missing", 1)
	assert.True(t, errors.Is(err, ErrUnknownTransformer))
}

func TestSet_Transformer(t *testing.T) {
	set, err := Parse([]byte(exampleDocument), nil)
	assert.Nil(t, err)

	tr, ok := set.Transformer("opacity")
	assert.True(t, ok)
	assert.Equal(t, 1.0, tr.Transform(50))

	p, ok := set.Pipeline("width")
	assert.True(t, ok)
	assert.Equal(t, "width", p.Name)
	assert.NotNil(t, p.Formatter)

	p, ok = set.Pipeline("opacity")
	assert.True(t, ok)
	assert.Nil(t, p.Formatter)

	_, ok = set.Transformer("missing")
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transformers.yaml")
	assert.Nil(t, os.WriteFile(path, []byte(exampleDocument), 0600))

	set, err := Load(path, nil)
	assert.Nil(t, err)
	v, err := set.Transform("opacity", 25)
	assert.Nil(t, err)
	assert.InDelta(t, .25, v, 1e-9)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.NotNil(t, err)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		document  string
		wantField string
		wantStage int
	}{
		{
			name: "no kind",
			document: `
transformers:
  broken:
    stages:
      - {}
`,
			wantField: "stage",
		},
		{
			name: "two kinds",
			document: `
transformers:
  broken:
    stages:
      - clampOver: 1
        clampUnder: 2
`,
			wantField: "stage",
		},
		{
			name: "mismatched output",
			document: `
transformers:
  broken:
    stages:
      - clampOver: 0
      - interpolate:
          input: [0, 1, 2]
          output: [0, 1]
`,
			wantField: "output",
			wantStage: 1,
		},
		{
			name: "short input",
			document: `
transformers:
  broken:
    stages:
      - interpolate:
          input: [0]
          output: [0]
`,
			wantField: "input",
		},
		{
			name: "unknown easing",
			document: `
transformers:
  broken:
    stages:
      - interpolate:
          input: [0, 1]
          output: [0, 1]
          easing: [wobble]
`,
			wantField: "easing",
		},
		{
			name: "easing count",
			document: `
transformers:
  broken:
    stages:
      - interpolate:
          input: [0, 1, 2]
          output: [0, 1, 2]
          easing: [linear]
`,
			wantField: "easing",
		},
		{
			name: "not a number",
			document: `
transformers:
  broken:
    stages:
      - interpolate:
          input: [0, one]
          output: [0, 1]
`,
			wantField: "input",
		},
		{
			name: "inverted clamp",
			document: `
transformers:
  broken:
    stages:
      - clamp: {min: 5, max: 1}
`,
			wantField: "min",
		},
		{
			name: "missing clamp bound",
			document: `
transformers:
  broken:
    stages:
      - clamp: {min: 5}
`,
			wantField: "max",
		},
		{
			name: "single step",
			document: `
transformers:
  broken:
    stages:
      - steps: {count: 1, min: 0, max: 1}
`,
			wantField: "count",
		},
		{
			name: "empty normalize range",
			document: `
transformers:
  broken:
    stages:
      - normalize: {lower: 3, upper: 3}
`,
			wantField: "lower",
		},
		{
			name: "missing step count",
			document: `
transformers:
  broken:
    stages:
      - steps: {min: 0, max: 1}
`,
			wantField: "count",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.document), nil)
			assert.True(t, errors.Is(err, &InvalidStageError{}), "unexpected error %v", err)

			var invalid *InvalidStageError
			assert.True(t, errors.As(err, &invalid))
			assert.Equal(t, "broken", invalid.Transformer)
			assert.Equal(t, tt.wantStage, invalid.Stage)
			assert.Equal(t, tt.wantField, invalid.Field)
		})
	}
}

func TestParse_WrapsInterpolateError(t *testing.T) {
	_, err := Parse([]byte(`
transformers:
  broken:
    stages:
      - interpolate:
          input: [1, 0]
          output: [0, 1]
`), nil)
	assert.True(t, errors.Is(err, &rangemap.InvalidInterpolateError{}))
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("transformers: ["), nil)
	assert.NotNil(t, err)
	assert.False(t, errors.Is(err, &InvalidStageError{}))
}
