// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/core/math32"
)

// Transform contains the full specification of position, orientation and
// scale of an element relative to its Parent, and the resulting world
// matrix. Actors and lights refer to Transforms by pointer, so a light can
// follow a moving object by sharing that object's Transform.
type Transform struct {

	// Parent is the transform this one is relative to; nil for the scene root.
	Parent *Transform

	// Pos is the position (relative to parent).
	Pos math32.Vector3

	// Scale is the scale (relative to parent).
	Scale math32.Vector3

	// Quat is the rotation (relative to parent).
	Quat math32.Quat

	// Matrix is the local matrix, computed from Pos, Quat and Scale by [Transform.UpdateMatrix].
	Matrix math32.Matrix4

	// WorldMatrix contains all absolute position, rotation and scale information,
	// computed by [Transform.UpdateWorldMatrix].
	WorldMatrix math32.Matrix4
}

// NewTransform returns a new identity Transform with the given parent.
func NewTransform(parent *Transform) *Transform {
	tr := &Transform{Parent: parent}
	tr.Defaults()
	tr.UpdateWorldMatrix()
	return tr
}

// Defaults sets Scale and Quat to identity values if they are still zero.
func (tr *Transform) Defaults() {
	if tr.Scale == (math32.Vector3{}) {
		tr.Scale.Set(1, 1, 1)
	}
	if tr.Quat == (math32.Quat{}) {
		tr.Quat.SetIdentity()
	}
}

// UpdateMatrix updates the local matrix from Pos, Quat and Scale.
func (tr *Transform) UpdateMatrix() {
	tr.Defaults()
	tr.Matrix.SetTransform(tr.Pos, tr.Quat, tr.Scale)
}

// UpdateWorldMatrix updates the local matrix and then the world matrix,
// walking up through all parents first so the result is current.
func (tr *Transform) UpdateWorldMatrix() {
	tr.UpdateMatrix()
	if tr.Parent == nil {
		tr.WorldMatrix = tr.Matrix
		return
	}
	tr.Parent.UpdateWorldMatrix()
	tr.WorldMatrix.MulMatrices(&tr.Parent.WorldMatrix, &tr.Matrix)
}

// SetPos sets the position.
func (tr *Transform) SetPos(x, y, z float32) *Transform {
	tr.Pos.Set(x, y, z)
	return tr
}

// SetScale sets the scale.
func (tr *Transform) SetScale(x, y, z float32) *Transform {
	tr.Scale.Set(x, y, z)
	return tr
}

// SetAxisRotation sets rotation from local axis and angle in degrees.
func (tr *Transform) SetAxisRotation(x, y, z, angle float32) *Transform {
	tr.Quat = math32.NewQuatAxisAngle(math32.Vec3(x, y, z).Normal(), math32.DegToRad(angle))
	return tr
}

// InverseWorldMatrix returns the inverse of the world matrix, which takes world
// coordinates into the local object space. A singular world matrix (e.g., a zero
// scale) cannot be inverted, in which case the identity and the error are returned.
func (tr *Transform) InverseWorldMatrix() (math32.Matrix4, error) {
	inv, err := tr.WorldMatrix.Inverse()
	if err != nil {
		return *math32.Identity4(), err
	}
	return *inv, nil
}
