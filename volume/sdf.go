// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package volume

import (
	"cogentcore.org/core/math32"
	"github.com/deadsy/sdfx/sdf"
)

// BoxFromSDF3 returns the bounding box of the given signed distance
// field solid, for use as the box of a volume sampled from it.
func BoxFromSDF3(s sdf.SDF3) math32.Box3 {
	bb := s.BoundingBox()
	return math32.B3(float32(bb.Min.X), float32(bb.Min.Y), float32(bb.Min.Z),
		float32(bb.Max.X), float32(bb.Max.Y), float32(bb.Max.Z))
}

// SetBoxFromSDF3 sets the box of the volume to the bounding box of the solid.
func (rc *Raycast) SetBoxFromSDF3(s sdf.SDF3) {
	rc.SetBox(BoxFromSDF3(s))
}
