// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package skin

import (
	"github.com/gviegas/raster/linear"
)

// bracket locates the keyframe segment surrounding t, returning the
// two bracketing indices and the interpolation factor α between
// them. ok is false when the track is empty.
func bracket[T any](keys []Keyframe[T], t float32) (lo, hi int, alpha float32, ok bool) {
	n := len(keys)
	if n == 0 {
		return 0, 0, 0, false
	}
	if t <= keys[0].Time {
		return 0, 0, 0, true
	}
	if t >= keys[n-1].Time {
		return n - 1, n - 1, 0, true
	}
	for i := 0; i < n-1; i++ {
		if t >= keys[i].Time && t <= keys[i+1].Time {
			span := keys[i+1].Time - keys[i].Time
			a := float32(0)
			if span > 0 {
				a = (t - keys[i].Time) / span
			}
			return i, i + 1, a, true
		}
	}
	return n - 1, n - 1, 0, true
}

// evalTranslation returns the track's translation value at t, or the
// zero vector if the track is empty.
func evalTranslation(track Track[linear.V3], t float32) linear.V3 {
	lo, hi, a, ok := bracket(track.Keys, t)
	if !ok {
		return linear.V3{}
	}
	return linear.LerpV3(track.Keys[lo].Value, track.Keys[hi].Value, a)
}

// evalRotation returns the track's rotation value at t, or the
// identity quaternion if the track is empty.
func evalRotation(track Track[linear.Q], t float32) linear.Q {
	lo, hi, a, ok := bracket(track.Keys, t)
	if !ok {
		return linear.IdentityQ()
	}
	return linear.Slerp(track.Keys[lo].Value, track.Keys[hi].Value, a)
}

// evalScale returns the track's scale value at t, or unit scale if
// the track is empty.
func evalScale(track Track[linear.V3], t float32) linear.V3 {
	lo, hi, a, ok := bracket(track.Keys, t)
	if !ok {
		return linear.V3{1, 1, 1}
	}
	return linear.LerpV3(track.Keys[lo].Value, track.Keys[hi].Value, a)
}
