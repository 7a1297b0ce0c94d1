// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 clips x to [-1, 1] and scales it by 32767, rounding half away
// from zero. Saturates instead of wrapping, so the result is always in
// [-32767, 32767]. +Inf and -Inf clip to the bounds and NaN maps to 0.
func Float32ToInt16(x float32) int16 {
	switch {
	case x != x: // NaN
		return 0
	case x >= 1:
		return math.MaxInt16
	case x <= -1:
		return -math.MaxInt16
	}

	return int16(math.Round(float64(x) * math.MaxInt16))
}
