// SPDX-FileCopyrightText: © 2024 Kevin Conway
// SPDX-FileCopyrightText: © 2017 Atlassian Pty Ltd
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/sgostarter/i/l"
	"gopkg.in/yaml.v3"

	"github.com/kevinconway/rangemap"
)

// Document is the YAML form of a Set.
type Document struct {
	Transformers map[string]Definition `yaml:"transformers"`
}

// Definition describes a single named transformer.
type Definition struct {
	// Unit is optional. When set, the transformer output is formatted with
	// rangemap.AppendUnit.
	Unit   string  `yaml:"unit"`
	Stages []Stage `yaml:"stages"`
}

// Stage is one step of a transformer. Exactly one field must be set.
type Stage struct {
	Interpolate *InterpolateStage `yaml:"interpolate"`
	Clamp       *ClampStage       `yaml:"clamp"`
	ClampOver   any               `yaml:"clampOver"`
	ClampUnder  any               `yaml:"clampUnder"`
	Steps       *StepsStage       `yaml:"steps"`
	Normalize   *NormalizeStage   `yaml:"normalize"`
}

type InterpolateStage struct {
	Input  []any `yaml:"input"`
	Output []any `yaml:"output"`
	// Easing optionally names one easing curve per segment. See
	// rangemap.EasingNames for the accepted values.
	Easing []string `yaml:"easing"`
}

type ClampStage struct {
	Min any `yaml:"min"`
	Max any `yaml:"max"`
}

type StepsStage struct {
	Count any `yaml:"count"`
	Min   any `yaml:"min"`
	Max   any `yaml:"max"`
}

type NormalizeStage struct {
	Lower any `yaml:"lower"`
	Upper any `yaml:"upper"`
	// Exponent defaults to 1 when omitted.
	Exponent any `yaml:"exponent"`
}

// Pipeline is a transformer built from a Definition.
type Pipeline struct {
	Name        string
	Transformer rangemap.Transformer[float64]
	// Formatter is nil when the definition has no unit.
	Formatter rangemap.Formatter[float64]
}

// Set is a collection of named pipelines. A Set is read-only once built and
// is safe for concurrent use.
type Set struct {
	pipelines map[string]*Pipeline
}

// Load reads and parses a YAML document from a file.
func Load(path string, logger l.Wrapper) (*Set, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(d, logger)
}

// Parse builds a Set from the contents of a YAML document.
func Parse(data []byte, logger l.Wrapper) (*Set, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return Build(doc, logger)
}

// Build validates a Document and builds a pipeline for every definition.
func Build(doc Document, logger l.Wrapper) (*Set, error) {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}
	logger = logger.WithFields(l.StringField(l.ClsKey, "config"))

	s := &Set{
		pipelines: make(map[string]*Pipeline, len(doc.Transformers)),
	}
	names := make([]string, 0, len(doc.Transformers))
	for name := range doc.Transformers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		def := doc.Transformers[name]
		p, err := buildPipeline(name, def)
		if err != nil {
			logger.WithFields(l.ErrorField(err), l.StringField("transformer", name)).Error("invalid transformer")
			return nil, err
		}
		logger.WithFields(l.StringField("transformer", name), l.IntField("stages", len(def.Stages))).Debug("built transformer")
		s.pipelines[name] = p
	}
	return s, nil
}

// Names returns the name of every pipeline in sorted order.
func (self *Set) Names() []string {
	names := make([]string, 0, len(self.pipelines))
	for name := range self.pipelines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (self *Set) Pipeline(name string) (*Pipeline, bool) {
	p, ok := self.pipelines[name]
	return p, ok
}

func (self *Set) Transformer(name string) (rangemap.Transformer[float64], bool) {
	p, ok := self.pipelines[name]
	if !ok {
		return nil, false
	}
	return p.Transformer, true
}

// Transform applies the named pipeline to a value.
func (self *Set) Transform(name string, value float64) (float64, error) {
	p, ok := self.pipelines[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownTransformer, name)
	}
	return p.Transformer.Transform(value), nil
}

// Format applies the named pipeline to a value and renders the result with
// the pipeline's unit. Pipelines without a unit render the bare number.
func (self *Set) Format(name string, value float64) (string, error) {
	p, ok := self.pipelines[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTransformer, name)
	}
	f := p.Formatter
	if f == nil {
		f = rangemap.NewAppendUnit[float64]("")
	}
	return f.Format(p.Transformer.Transform(value)), nil
}
