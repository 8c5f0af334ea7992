// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package volume

import (
	"strings"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/raycast/shader"
	"cogentcore.org/raycast/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1.0e-5

// stubProgram declares a set of uniforms and counts writes.
type stubProgram struct {
	declared map[string]bool
	writes   []*shader.Uniform
}

func newStubProgram(names ...string) *stubProgram {
	sp := &stubProgram{declared: map[string]bool{}}
	for _, nm := range names {
		sp.declared[nm] = true
	}
	return sp
}

func allUniforms() *stubProgram {
	return newStubProgram(LightPositionName, LightEnableName, EyePositionName, EyeLookName)
}

func (sp *stubProgram) HasUniform(name string) bool { return sp.declared[name] }

func (sp *stubProgram) SetUniform(u *shader.Uniform) { sp.writes = append(sp.writes, u.Clone()) }

func assertVector3(t *testing.T, expected, actual math32.Vector3) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, tol, "X")
	assert.InDelta(t, expected.Y, actual.Y, tol, "Y")
	assert.InDelta(t, expected.Z, actual.Z, tol, "Z")
}

// setup returns a volume bound to an actor drawn with the given program,
// and a camera at 0,0,10 looking down -Z.
func setup(prog shader.Program, tr *xyz.Transform) (*Raycast, *xyz.Actor, *xyz.Camera, *xyz.Shader) {
	rc := New()
	sh := xyz.NewShader("raycast", prog)
	ac := xyz.NewActor("volume", nil, sh, tr)
	rc.BindActor(ac)
	return rc, ac, xyz.NewCamera(), sh
}

func TestBindActor(t *testing.T) {
	rc, ac, _, _ := setup(nil, nil)
	other := New()
	other.BindActor(ac)
	rc.BindActor(ac)
	rc.BindActor(ac)

	cbs := ac.RenderCallbacks()
	require.Len(t, cbs, 2)
	assert.Same(t, other, cbs[0])
	assert.Same(t, rc, cbs[1])
	assert.Equal(t, xyz.Renderable(rc.Mesh()), ac.LOD(0))

	assert.True(t, rc.UnbindActor(ac))
	assert.False(t, rc.UnbindActor(ac))
	assert.Equal(t, []xyz.RenderCallback{other}, ac.RenderCallbacks())
	assert.Nil(t, ac.LOD(0))

	// LOD 0 is kept when it holds another mesh
	other.BindActor(ac)
	rc.BindActor(ac)
	other.BindActor(ac)
	assert.True(t, rc.UnbindActor(ac))
	assert.Equal(t, xyz.Renderable(other.Mesh()), ac.LOD(0))
	assert.True(t, other.UnbindActor(ac))
	assert.Empty(t, ac.RenderCallbacks())
}

func TestNoLights(t *testing.T) {
	_, ac, cam, sh := setup(allUniforms(), nil)
	ac.RenderStarted(0, cam, ac.LOD(0), sh, 0)

	en := ac.Uniforms.ByName(LightEnableName)
	require.NotNil(t, en)
	assert.Equal(t, NumLights, en.Count)
	assert.Equal(t, []int32{0, 0, 0, 0}, en.Ints)

	pos := ac.Uniforms.ByName(LightPositionName)
	require.NotNil(t, pos)
	assert.Equal(t, NumLights, pos.Count)
	assert.Equal(t, make([]float32, 3*NumLights), pos.Floats)
}

func TestMissingUniforms(t *testing.T) {
	prog := newStubProgram(EyePositionName, LightPositionName)
	_, ac, cam, sh := setup(prog, nil)
	sh.AddLight(xyz.NewLight("head"))
	ac.RenderStarted(0, cam, ac.LOD(0), sh, 0)

	// light uniforms need both names declared
	assert.False(t, ac.Uniforms.Has(LightPositionName))
	assert.False(t, ac.Uniforms.Has(LightEnableName))
	assert.False(t, ac.Uniforms.Has(EyeLookName))
	assert.True(t, ac.Uniforms.Has(EyePositionName))

	n := ac.Uniforms.Apply(prog)
	assert.Equal(t, 1, n)
	require.Len(t, prog.writes, 1)
	assert.Equal(t, EyePositionName, prog.writes[0].Name)

	none := newStubProgram()
	_, ac2, cam2, sh2 := setup(none, nil)
	ac2.RenderStarted(0, cam2, ac2.LOD(0), sh2, 0)
	assert.Equal(t, 0, ac2.Uniforms.Len())
	assert.Equal(t, 0, ac2.Uniforms.Apply(none))
	assert.Empty(t, none.writes)
}

func TestEyeIdentity(t *testing.T) {
	for _, tr := range []*xyz.Transform{nil, xyz.NewTransform(nil)} {
		_, ac, cam, sh := setup(allUniforms(), tr)
		cam.Pose.Pos.Set(3, 4, 5)
		cam.LookAt(math32.Vec3(0, 1, 0), math32.Vec3(0, 1, 0))
		ac.RenderStarted(0, cam, ac.LOD(0), sh, 0)

		assertVector3(t, cam.EyePosition(), ac.Uniforms.ByName(EyePositionName).Vector3(0))
		assertVector3(t, cam.EyeLook(), ac.Uniforms.ByName(EyeLookName).Vector3(0))
		assertVector3(t, math32.Vec3(3, 4, 5), ac.Uniforms.ByName(EyePositionName).Vector3(0))
		assertVector3(t, math32.Vec3(-3, -3, -5).Normal(), ac.Uniforms.ByName(EyeLookName).Vector3(0))
	}
}

func TestObjectSpace(t *testing.T) {
	tr := xyz.NewTransform(nil).SetPos(1, 0, 0).SetScale(2, 1, 1)
	tr.UpdateWorldMatrix()
	_, ac, cam, sh := setup(allUniforms(), tr)
	cam.Pose.Pos.Set(9, 0, 0)
	cam.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))

	head := xyz.NewLight("head")
	moving := xyz.NewTransform(nil).SetPos(5, 2, 0)
	moving.UpdateWorldMatrix()
	follow := xyz.NewLight("follow").SetFollowed(moving)
	sh.SetLight(0, head)
	sh.SetLight(2, follow)
	ac.RenderStarted(0, cam, ac.LOD(0), sh, 0)

	pos := ac.Uniforms.ByName(LightPositionName)
	en := ac.Uniforms.ByName(LightEnableName)
	assert.Equal(t, []int32{1, 0, 1, 0}, en.Ints)
	// world (9,0,0) -> object ((9-1)/2, 0, 0)
	assertVector3(t, math32.Vec3(4, 0, 0), pos.Vector3(0))
	assertVector3(t, math32.Vector3{}, pos.Vector3(1))
	// world (5,2,0) -> object (2, 2, 0)
	assertVector3(t, math32.Vec3(2, 2, 0), pos.Vector3(2))
	assertVector3(t, math32.Vector3{}, pos.Vector3(3))

	assertVector3(t, math32.Vec3(4, 0, 0), ac.Uniforms.ByName(EyePositionName).Vector3(0))
	// look (-1,0,0) through the inverse transpose: x scaled by 1/2, no translation
	assertVector3(t, math32.Vec3(-0.5, 0, 0), ac.Uniforms.ByName(EyeLookName).Vector3(0))
}

func TestLookDirectionNonUniformScale(t *testing.T) {
	tr := xyz.NewTransform(nil).SetScale(4, 1, 1).SetAxisRotation(0, 0, 1, 90)
	tr.UpdateWorldMatrix()
	_, ac, cam, sh := setup(allUniforms(), tr)
	cam.Pose.Pos.Set(0, 0, 10)
	cam.LookAt(math32.Vec3(1, 0, 10), math32.Vec3(0, 1, 0))
	assertVector3(t, math32.Vec3(1, 0, 0), cam.EyeLook())

	ac.RenderStarted(0, cam, ac.LOD(0), sh, 0)
	// world = R(90 about z) * S(4,1,1); (W^-1)^T = R * S^-1, so
	// (1,0,0) -> S^-1 gives (0.25,0,0) -> R gives (0,0.25,0)
	assertVector3(t, math32.Vec3(0, 0.25, 0), ac.Uniforms.ByName(EyeLookName).Vector3(0))
	// while the eye position uses W^-1 = S^-1 * R^T: (0,0,10) -> (0,0,10)
	assertVector3(t, math32.Vec3(0, 0, 10), ac.Uniforms.ByName(EyePositionName).Vector3(0))
}

func TestSingularTransform(t *testing.T) {
	buf := captureLog(t)
	tr := xyz.NewTransform(nil)
	tr.Scale.Set(0, 1, 1)
	tr.UpdateWorldMatrix()
	_, ac, cam, sh := setup(allUniforms(), tr)
	ac.RenderStarted(0, cam, ac.LOD(0), sh, 0)
	assert.Contains(t, buf.String(), "world matrix")
	// falls back to the identity
	assertVector3(t, cam.EyePosition(), ac.Uniforms.ByName(EyePositionName).Vector3(0))
}

func TestSingularTransformLoggedOnce(t *testing.T) {
	buf := captureLog(t)
	tr := xyz.NewTransform(nil)
	tr.Scale.Set(0, 1, 1)
	tr.UpdateWorldMatrix()
	_, ac, cam, sh := setup(allUniforms(), tr)
	for range 60 {
		ac.RenderStarted(0, cam, ac.LOD(0), sh, 0)
	}
	assert.Equal(t, 1, strings.Count(buf.String(), "world matrix"))

	// a different singular matrix is reported again
	tr.Scale.Set(1, 0, 1)
	tr.UpdateWorldMatrix()
	ac.RenderStarted(0, cam, ac.LOD(0), sh, 0)
	ac.RenderStarted(0, cam, ac.LOD(0), sh, 0)
	assert.Equal(t, 2, strings.Count(buf.String(), "world matrix"))

	// and so is the same one after the transform was invertible in between
	tr.Scale.Set(1, 1, 1)
	tr.UpdateWorldMatrix()
	ac.RenderStarted(0, cam, ac.LOD(0), sh, 0)
	tr.Scale.Set(1, 0, 1)
	tr.UpdateWorldMatrix()
	ac.RenderStarted(0, cam, ac.LOD(0), sh, 0)
	assert.Equal(t, 3, strings.Count(buf.String(), "world matrix"))
}

func TestLaterPassesIgnored(t *testing.T) {
	_, ac, cam, sh := setup(allUniforms(), nil)
	ac.RenderStarted(0, cam, ac.LOD(0), sh, 0)
	before := ac.Uniforms.ByName(EyePositionName).Clone()

	cam.Pose.Pos.Set(1, 2, 3)
	cam.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
	sh.AddLight(xyz.NewLight("late"))
	for pass := 1; pass < 4; pass++ {
		ac.RenderStarted(0, cam, ac.LOD(0), sh, pass)
	}
	assert.True(t, before.Equal(ac.Uniforms.ByName(EyePositionName)))
	assert.Equal(t, []int32{0, 0, 0, 0}, ac.Uniforms.ByName(LightEnableName).Ints)

	ac.RenderStarted(0, cam, ac.LOD(0), sh, 0)
	assertVector3(t, math32.Vec3(1, 2, 3), ac.Uniforms.ByName(EyePositionName).Vector3(0))
}

func TestNoProgram(t *testing.T) {
	rc, ac, cam, sh := setup(nil, nil)
	ac.RenderStarted(0, cam, ac.LOD(0), sh, 0)
	assert.Equal(t, 0, ac.Uniforms.Len())
	assert.Panics(t, func() { rc.UpdateUniforms(ac, 0, cam, ac.LOD(0), sh) })
}

func TestIdempotent(t *testing.T) {
	tr := xyz.NewTransform(nil).SetPos(0.5, -1, 2).SetAxisRotation(1, 1, 0, 30)
	tr.UpdateWorldMatrix()
	rc, ac, cam, sh := setup(allUniforms(), tr)
	sh.AddLight(xyz.NewLight("head").SetPosition(1, 1, 0, 1))
	sh.AddLight(xyz.NewLight("sun").SetPosition(0, 1, 0, 0))

	rc.UpdateUniforms(ac, 0, cam, ac.LOD(0), sh)
	var first []*shader.Uniform
	for _, kv := range ac.Uniforms.Values.Order {
		first = append(first, kv.Value.Clone())
	}
	rc.UpdateUniforms(ac, 1, cam, ac.LOD(0), sh)
	require.Equal(t, len(first), ac.Uniforms.Len())
	for i, kv := range ac.Uniforms.Values.Order {
		assert.True(t, first[i].Equal(kv.Value), kv.Key)
	}
}

func TestOnUpdate(t *testing.T) {
	rc, ac, cam, sh := setup(allUniforms(), nil)
	calls := 0
	rc.OnUpdate = func(rc *Raycast, ac *xyz.Actor, time float64, cam *xyz.Camera, rend xyz.Renderable, sh *xyz.Shader) {
		calls++
		ac.Uniform("time").SetFloat32(float32(time))
	}
	ac.RenderStarted(2.5, cam, ac.LOD(0), sh, 0)
	ac.RenderStarted(2.5, cam, ac.LOD(0), sh, 1)
	assert.Equal(t, 1, calls)
	assert.Equal(t, []float32{2.5}, ac.Uniforms.ByName("time").Floats)
}

func TestRenderer(t *testing.T) {
	prog := allUniforms()
	_, ac, cam, _ := setup(prog, nil)
	draws := 0
	rn := xyz.NewRenderer(cam, func(a *xyz.Actor, rend xyz.Renderable, s *xyz.Shader, pass int) {
		draws++
		// uniforms are in the program before the first draw
		assert.Len(t, prog.writes, 4)
		nv, ni := rend.MeshSize()
		assert.Equal(t, NumVertex, nv)
		assert.Equal(t, NumIndex, ni)
	})
	rn.Render(0, ac)
	assert.Equal(t, 1, draws)
}
