// SPDX-FileCopyrightText: © 2024 Kevin Conway
// SPDX-FileCopyrightText: © 2017 Atlassian Pty Ltd
// SPDX-License-Identifier: Apache-2.0

package rangemap

import (
	"sort"

	"github.com/fogleman/ease"
)

// Easing adapts an easing function, such as those from the
// github.com/fogleman/ease package, for use as a segment easing in
// Interpolate. For example:
//
//	NewInterpolate(input, output, Easing(ease.InQuad), Easing(ease.OutQuad))
func Easing(fn func(float64) float64) TransformerFN[float64] {
	return TransformerFN[float64](fn)
}

var easings = map[string]func(float64) float64{ //nolint: gochecknoglobals
	"linear":       ease.Linear,
	"inQuad":       ease.InQuad,
	"outQuad":      ease.OutQuad,
	"inOutQuad":    ease.InOutQuad,
	"inCubic":      ease.InCubic,
	"outCubic":     ease.OutCubic,
	"inOutCubic":   ease.InOutCubic,
	"inQuart":      ease.InQuart,
	"outQuart":     ease.OutQuart,
	"inOutQuart":   ease.InOutQuart,
	"inQuint":      ease.InQuint,
	"outQuint":     ease.OutQuint,
	"inOutQuint":   ease.InOutQuint,
	"inSine":       ease.InSine,
	"outSine":      ease.OutSine,
	"inOutSine":    ease.InOutSine,
	"inExpo":       ease.InExpo,
	"outExpo":      ease.OutExpo,
	"inOutExpo":    ease.InOutExpo,
	"inCirc":       ease.InCirc,
	"outCirc":      ease.OutCirc,
	"inOutCirc":    ease.InOutCirc,
	"inElastic":    ease.InElastic,
	"outElastic":   ease.OutElastic,
	"inOutElastic": ease.InOutElastic,
	"inBack":       ease.InBack,
	"outBack":      ease.OutBack,
	"inOutBack":    ease.InOutBack,
	"inBounce":     ease.InBounce,
	"outBounce":    ease.OutBounce,
	"inOutBounce":  ease.InOutBounce,
}

// EasingByName looks up one of the named easing curves. Names follow the
// lowerCamel form of the curve, such as "linear", "inQuad", or "inOutBack".
func EasingByName(name string) (Transformer[float64], bool) {
	fn, ok := easings[name]
	if !ok {
		return nil, false
	}
	return Easing(fn), true
}

// EasingNames returns all names accepted by EasingByName in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
