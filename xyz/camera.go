// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// Camera defines the view onto the scene. Its Pose is the camera's placement
// in world space, so the Pose matrix is the inverse view matrix: it takes
// camera-centered coordinates into world coordinates. In its unrotated state
// the camera looks down the -Z axis with +Y up.
type Camera struct {

	// Pose is the position and orientation of the camera in world space.
	Pose Transform

	// Target is where the camera is pointing, as set by [Camera.LookAt].
	Target math32.Vector3

	// UpDir is the up direction of the camera, as set by [Camera.LookAt].
	UpDir math32.Vector3

	// ViewMatrix transforms world into camera-centered coordinates
	// (the inverse of the Pose matrix).
	ViewMatrix math32.Matrix4 `display:"-"`

	// InverseViewMatrix transforms camera-centered coordinates into world
	// coordinates; its translation column is the camera position.
	InverseViewMatrix math32.Matrix4 `display:"-"`
}

// NewCamera returns a camera at 0,0,10 looking at the origin with +Y up.
func NewCamera() *Camera {
	cm := &Camera{}
	cm.Defaults()
	return cm
}

// Defaults resets the camera pose to look at the origin from 0,0,10, with up Y axis.
func (cm *Camera) Defaults() {
	cm.Pose.Defaults()
	cm.Pose.Pos.Set(0, 0, 10)
	cm.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
}

// LookAt points the camera at the given target location using the given up
// direction, and updates the view matrices.
func (cm *Camera) LookAt(target, upDir math32.Vector3) {
	if upDir == (math32.Vector3{}) {
		upDir = math32.Vec3(0, 1, 0)
	}
	cm.Target = target
	cm.UpDir = upDir
	cm.Pose.Quat.SetFromRotationMatrix(math32.NewLookAt(cm.Pose.Pos, target, upDir))
	cm.UpdateMatrix()
}

// SetEye moves the camera to the given world position and re-aims it at the
// current Target.
func (cm *Camera) SetEye(eye math32.Vector3) {
	cm.Pose.Pos = eye
	cm.LookAt(cm.Target, cm.UpDir)
}

// UpdateMatrix updates the view matrices from the current Pose.
func (cm *Camera) UpdateMatrix() {
	cm.Pose.UpdateMatrix()
	cm.Pose.WorldMatrix = cm.Pose.Matrix
	cm.SetInverseViewMatrix(&cm.Pose.Matrix)
}

// SetInverseViewMatrix sets the camera placement directly from a
// camera-to-world matrix, and derives the view matrix from it.
func (cm *Camera) SetInverseViewMatrix(m *math32.Matrix4) {
	cm.InverseViewMatrix = *m
	view, err := m.Inverse()
	if errors.Log(err) != nil {
		cm.ViewMatrix = *math32.Identity4()
		return
	}
	cm.ViewMatrix = *view
}

// EyePosition returns the camera position in world coordinates, which is
// the translation column of the inverse view matrix.
func (cm *Camera) EyePosition() math32.Vector3 {
	m := &cm.InverseViewMatrix
	return math32.Vec3(m[12], m[13], m[14])
}

// EyeLook returns the direction the camera looks in, in world coordinates:
// the negated Z basis vector of the inverse view matrix.
func (cm *Camera) EyeLook() math32.Vector3 {
	m := &cm.InverseViewMatrix
	return math32.Vec3(-m[8], -m[9], -m[10])
}
