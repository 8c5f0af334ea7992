// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/raycast/shader"
	"cogentcore.org/raycast/volume"
	"cogentcore.org/raycast/xyz"
)

// Names of the uniforms set by the viewer in addition to the
// standard raycasting ones.
const (
	ModelName        = "model"
	BoxMinName       = "box_min"
	BoxMaxName       = "box_max"
	VertexOriginName = "vertex_origin"
	TexOriginName    = "tex_origin"
	TexScaleName     = "tex_scale"
	TimeName         = "time"
	StepsName        = "steps"
	OrthographicName = "orthographic"
)

// loadStage opens the scene of the config and builds a stage for it
// drawing with the given program.
func loadStage(c *Config, prog shader.Program) (*volume.Stage, error) {
	sc, err := volume.OpenScene(c.Scene)
	if err != nil {
		return nil, err
	}
	return buildStage(c, sc, prog)
}

// buildStage builds a stage for the scene, with the viewer uniforms.
func buildStage(c *Config, sc *volume.Scene, prog shader.Program) (*volume.Stage, error) {
	st, err := sc.Build(prog)
	if err != nil {
		return nil, err
	}
	st.Raycast.OnUpdate = func(rc *volume.Raycast, ac *xyz.Actor, time float64, cam *xyz.Camera, rend xyz.Renderable, sh *xyz.Shader) {
		updateViewUniforms(c, rc, ac, time)
	}
	return st, nil
}

// updateViewUniforms sets the uniforms the viewer shader needs beyond
// the standard ones: the model matrix, the object space box, and the
// affine map from object space to texture space.
func updateViewUniforms(c *Config, rc *volume.Raycast, ac *xyz.Actor, time float64) {
	if ac.Transform != nil {
		ac.Uniform(ModelName).SetMatrix4(&ac.Transform.WorldMatrix)
	} else {
		ac.Uniform(ModelName).SetMatrix4(math32.Identity4())
	}
	bb := rc.Mesh().MeshBBox()
	ac.Uniform(BoxMinName).SetVector3(bb.Min)
	ac.Uniform(BoxMaxName).SetVector3(bb.Max)

	org, scale := texMap(rc.Mesh())
	ac.Uniform(VertexOriginName).SetVector3(rc.Mesh().Vertices()[0])
	ac.Uniform(TexOriginName).SetVector3(org)
	ac.Uniform(TexScaleName).SetVector3(scale)

	ac.Uniform(TimeName).SetFloat32(float32(time))
	ac.Uniform(StepsName).SetInt32s(int32(max(c.Steps, 1)))
	ac.Uniform(OrthographicName).SetBools(c.Orthographic)
}

// texMap returns the texture coordinate of corner 0 of the mesh and the
// per axis change in texture coordinate per unit of object space, so
// that tex(p) = origin + scale * (p - vertex 0). Corner 1 differs from
// corner 0 in x, corner 3 in y and corner 4 in z. A flat axis maps to 0.
func texMap(ms *volume.BoxMesh) (origin, scale math32.Vector3) {
	v := ms.Vertices()
	tc := ms.TexCoords()
	ratio := func(dt, dv float32) float32 {
		if dv == 0 {
			return 0
		}
		return dt / dv
	}
	scale.X = ratio(tc[1].X-tc[0].X, v[1].X-v[0].X)
	scale.Y = ratio(tc[3].Y-tc[0].Y, v[3].Y-v[0].Y)
	scale.Z = ratio(tc[4].Z-tc[0].Z, v[4].Z-v[0].Z)
	return tc[0], scale
}
