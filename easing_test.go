// SPDX-FileCopyrightText: © 2024 Kevin Conway
// SPDX-FileCopyrightText: © 2017 Atlassian Pty Ltd
// SPDX-License-Identifier: Apache-2.0

package rangemap

import (
	"sort"
	"testing"
)

func TestEasingByName(t *testing.T) {
	t.Parallel()

	names := EasingNames()
	if len(names) == 0 {
		t.Fatal("expected easing names")
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("expected sorted names but got %v", names)
	}
	for _, name := range names {
		if e, ok := EasingByName(name); !ok || e == nil {
			t.Fatalf("expected easing %q to resolve", name)
		}
	}
	if _, ok := EasingByName("wobble"); ok {
		t.Fatal("expected unknown easing to be missing")
	}
}

func TestEasingByName_Curves(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		progress float64
		want     float64
	}{
		{name: "linear", progress: .3, want: .3},
		{name: "inQuad", progress: .5, want: .25},
		{name: "outQuad", progress: .5, want: .75},
		{name: "inCubic", progress: .5, want: .125},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, _ := EasingByName(tt.name)
			result := e.Transform(tt.progress)
			if result != tt.want {
				t.Errorf("%s.Transform() = %v, want %v", tt.name, result, tt.want)
			}
		})
	}
}
