// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Light is a light that is bound to a [Shader] slot.
//
// The Position is homogeneous: W = 1 for a positional (point) light and
// W = 0 for a directional light. If Followed is nil the light is attached
// to the camera, and its Position is in camera coordinates. If Followed is
// set, the light moves with that transform and its Position is relative to it.
type Light struct {

	// Name is the name of the light.
	Name string

	// On is whether the light is turned on. A light that is off does not
	// occupy its shader slot.
	On bool

	// Color is the color of the light at full intensity.
	Color color.RGBA

	// Position is the homogeneous position of the light.
	Position math32.Vector4

	// Followed is the transform the light follows, or nil to follow the camera.
	Followed *Transform
}

// NewLight returns a new white light that is on, at the camera
// position (the origin of camera space).
func NewLight(name string) *Light {
	return &Light{Name: name, On: true, Color: color.RGBA{255, 255, 255, 255}, Position: math32.Vec4(0, 0, 0, 1)}
}

// SetPosition sets the homogeneous position.
func (lt *Light) SetPosition(x, y, z, w float32) *Light {
	lt.Position.Set(x, y, z, w)
	return lt
}

// SetFollowed sets the transform the light follows; nil follows the camera.
func (lt *Light) SetFollowed(tr *Transform) *Light {
	lt.Followed = tr
	return lt
}

// WorldPosition returns the light position in world coordinates.
// A light following a transform has its position (taken as a point)
// transformed by that transform's world matrix. A camera light has its
// homogeneous position transformed by the inverse view matrix.
func (lt *Light) WorldPosition(cam *Camera) math32.Vector3 {
	if lt.Followed != nil {
		return math32.Vector3FromVector4(lt.Position).MulMatrix4(&lt.Followed.WorldMatrix)
	}
	return math32.Vector3FromVector4(lt.Position.MulMatrix4(&cam.InverseViewMatrix))
}
