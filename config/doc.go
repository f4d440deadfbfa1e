// SPDX-FileCopyrightText: © 2024 Kevin Conway
// SPDX-FileCopyrightText: © 2017 Atlassian Pty Ltd
// SPDX-License-Identifier: Apache-2.0

// Package config builds named transformer pipelines from YAML documents.
//
// A document lists transformers by name. Each transformer is a series of
// stages that are applied in order and an optional unit used when formatting:
//
//	transformers:
//	  opacity:
//	    stages:
//	      - interpolate:
//	          input: [0, 50, 100]
//	          output: [0, 1, 0]
//	          easing: [inOutQuad, linear]
//	      - clamp: {min: 0, max: 1}
//	  width:
//	    unit: px
//	    stages:
//	      - clampOver: 0
//	      - steps: {count: 5, min: 0, max: 400}
//	  load:
//	    stages:
//	      - normalize: {lower: .5, upper: .9, exponent: 2}
//
// Every stage sets exactly one of interpolate, clamp, clampOver, clampUnder,
// steps, or normalize. Numbers may be written as YAML numbers or as numeric
// strings.
//
// Unlike the transformers in the rangemap package, which accept any input and
// produce undefined results for malformed parameters, building from a document
// validates every stage and reports problems as an *InvalidStageError.
package config
