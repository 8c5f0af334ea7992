// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package volume

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/raycast/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScene = `
[box]
min = [-1.0, -1.0, -1.0]
max = [1.0, 1.0, 1.0]

[volume]
resolution = [4, 4, 2]

[camera]
eye = [0.0, 0.0, 5.0]
target = [0.0, 0.0, 0.0]

[actor]
position = [2.0, 0.0, 0.0]

[[lights]]
name = "head"
position = [0.0, 0.0, 0.0, 1.0]

[[lights]]
position = [0.0, 3.0, 0.0, 1.0]
follow_actor = true

[[lights]]
name = "spare"
off = true
`

func TestReadSceneDefaults(t *testing.T) {
	sc, err := ReadScene(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, NewScene(), sc)
	assert.Equal(t, math32.B3(0, 0, 0, 1, 1, 1), sc.BoxValue())
	assert.Equal(t, math32.Vector3i{}, sc.Resolution())

	st, err := sc.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultTexCoords(), st.Raycast.Mesh().TexCoords())
	assertVector3(t, math32.Vec3(0.5, 0.5, 3), st.Camera.EyePosition())
	assertVector3(t, math32.Vec3(0, 0, -1), st.Camera.EyeLook())
}

func TestReadScene(t *testing.T) {
	sc, err := ReadScene(strings.NewReader(testScene))
	require.NoError(t, err)
	assert.Equal(t, math32.B3(-1, -1, -1, 1, 1, 1), sc.BoxValue())
	assert.Equal(t, math32.Vec3i(4, 4, 2), sc.Resolution())
	// up was not given, so it keeps its default
	assert.Equal(t, [3]float32{0, 1, 0}, sc.Camera.Up)
	assert.Equal(t, [3]float32{1, 1, 1}, sc.Actor.Scale)
	require.Len(t, sc.Lights, 3)
	assert.True(t, sc.Lights[1].FollowActor)
	assert.True(t, sc.Lights[2].Off)

	prog := allUniforms()
	st, err := sc.Build(prog)
	require.NoError(t, err)
	assert.Same(t, prog, st.Shader.Program)
	assert.Equal(t, []xyz.RenderCallback{st.Raycast}, st.Actor.RenderCallbacks())
	assert.Equal(t, "head", st.Shader.Light(0).Name)
	assert.Equal(t, "light1", st.Shader.Light(1).Name)
	assert.Nil(t, st.Shader.Light(2))

	tc := st.Raycast.Mesh().TexCoords()
	assertVector3(t, math32.Vec3(0.125, 0.125, 0.75), tc[0])

	passes := []int{}
	st.Render(1, 2, func(ac *xyz.Actor, rend xyz.Renderable, sh *xyz.Shader, pass int) {
		passes = append(passes, pass)
	})
	assert.Equal(t, []int{0, 1}, passes)
	assert.Len(t, prog.writes, 8)

	u := st.Actor.Uniforms
	assert.Equal(t, []int32{1, 1, 0, 0}, u.ByName(LightEnableName).Ints)
	pos := u.ByName(LightPositionName)
	// head light at the eye (0,0,5), actor at x = 2
	assertVector3(t, math32.Vec3(-2, 0, 5), pos.Vector3(0))
	// followed light is relative to the actor already
	assertVector3(t, math32.Vec3(0, 3, 0), pos.Vector3(1))
	assertVector3(t, math32.Vec3(-2, 0, 5), u.ByName(EyePositionName).Vector3(0))
	assertVector3(t, math32.Vec3(0, 0, -1), u.ByName(EyeLookName).Vector3(0))
}

func TestReadSceneErrors(t *testing.T) {
	_, err := ReadScene(strings.NewReader("[box]\nsize = [1.0, 2.0, 3.0]\n"))
	assert.Error(t, err)

	_, err = ReadScene(strings.NewReader("[volume\n"))
	assert.Error(t, err)

	buf := captureLog(t)
	sc, err := ReadScene(strings.NewReader("[volume]\nresolution = [16, 0, 16]\n"))
	require.NoError(t, err)
	_, err = sc.Build(nil)
	assert.Error(t, err)
	assert.Contains(t, buf.String(), "does not represent a 3D image")

	sc = NewScene()
	for range xyz.MaxLights + 1 {
		sc.Lights = append(sc.Lights, LightConfig{Position: [4]float32{0, 0, 0, 1}})
	}
	_, err = sc.Build(nil)
	assert.ErrorContains(t, err, "more than")
}

func TestOpenScene(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(fn, []byte(testScene), 0o644))
	sc, err := OpenScene(fn)
	require.NoError(t, err)
	assert.Len(t, sc.Lights, 3)

	_, err = OpenScene(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("camera = 1\n"), 0o644))
	_, err = OpenScene(bad)
	assert.ErrorContains(t, err, "bad.toml")
}

func TestSceneTransform(t *testing.T) {
	sc := NewScene()
	sc.Actor.Position = [3]float32{1, 2, 3}
	sc.Actor.Scale = [3]float32{2, 2, 2}
	sc.Actor.Axis = [3]float32{0, 0, 1}
	sc.Actor.Angle = 90
	tr := xyz.NewTransform(nil)
	sc.UpdateTransform(tr)
	p := math32.Vector4FromVector3(math32.Vec3(1, 0, 0), 1).MulMatrix4(&tr.WorldMatrix)
	assertVector3(t, math32.Vec3(1, 4, 3), math32.Vec3(p.X, p.Y, p.Z))

	sc.Actor.Angle = 0
	sc.UpdateTransform(tr)
	p = math32.Vector4FromVector3(math32.Vec3(1, 0, 0), 1).MulMatrix4(&tr.WorldMatrix)
	assertVector3(t, math32.Vec3(3, 2, 3), math32.Vec3(p.X, p.Y, p.Z))
}

const testSceneYAML = `
box:
  min: [-1, -1, -1]
  max: [1, 1, 1]
volume:
  resolution: [4, 4, 2]
lights:
  - name: head
    position: [0, 0, 0, 1]
  - position: [0, 3, 0, 1]
    follow_actor: true
`

func TestReadSceneYAML(t *testing.T) {
	sc, err := ReadSceneYAML(strings.NewReader(testSceneYAML))
	require.NoError(t, err)
	assert.Equal(t, math32.B3(-1, -1, -1, 1, 1, 1), sc.BoxValue())
	assert.Equal(t, math32.Vec3i(4, 4, 2), sc.Resolution())
	assert.Equal(t, NewScene().Camera, sc.Camera)
	require.Len(t, sc.Lights, 2)
	assert.Equal(t, "head", sc.Lights[0].Name)
	assert.True(t, sc.Lights[1].FollowActor)

	sc, err = ReadSceneYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, NewScene(), sc)

	_, err = ReadSceneYAML(strings.NewReader("box:\n  size: [1, 2, 3]\n"))
	assert.Error(t, err)

	fn := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(fn, []byte(testSceneYAML), 0o644))
	sc, err = OpenScene(fn)
	require.NoError(t, err)
	assert.Len(t, sc.Lights, 2)
}

func TestSceneClone(t *testing.T) {
	sc, err := ReadScene(strings.NewReader(testScene))
	require.NoError(t, err)
	cp := sc.Clone()
	assert.Equal(t, sc, cp)

	cp.Lights[0].Name = "changed"
	cp.Box.Max[0] = 10
	assert.Equal(t, "head", sc.Lights[0].Name)
	assert.Equal(t, float32(1), sc.Box.Max[0])

	st, err := sc.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, sc, st.Scene)
	assert.NotSame(t, sc, st.Scene)
}
