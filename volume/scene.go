// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package volume

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/math32"
	"cogentcore.org/raycast/shader"
	"cogentcore.org/raycast/xyz"
	"github.com/jinzhu/copier"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Scene is a TOML description of a raycast volume and the view onto it,
// used by tools to set up a [Raycast] without writing code:
//
//	[box]
//	min = [0, 0, 0]
//	max = [1, 1, 1]
//
//	[volume]
//	resolution = [256, 256, 128]
//
//	[camera]
//	eye = [0.5, 0.5, 3]
//	target = [0.5, 0.5, 0.5]
//
//	[[lights]]
//	position = [0, 0, 0, 1]
//
// Sections that are missing keep the values of [NewScene].
// Files with a .yaml or .yml extension are read as YAML with the same keys.
type Scene struct {

	// Box is the object space box of the volume.
	Box BoxConfig `toml:"box" yaml:"box"`

	// Volume has the properties of the volume data.
	Volume VolumeConfig `toml:"volume" yaml:"volume"`

	// Camera places the camera in world space.
	Camera CameraConfig `toml:"camera" yaml:"camera"`

	// Actor places the volume in world space.
	Actor ActorConfig `toml:"actor" yaml:"actor"`

	// Lights are bound to the shader in order, up to [xyz.MaxLights].
	Lights []LightConfig `toml:"lights" yaml:"lights"`
}

// BoxConfig is the box of a [Scene].
type BoxConfig struct {
	Min [3]float32 `toml:"min" yaml:"min"`
	Max [3]float32 `toml:"max" yaml:"max"`
}

// VolumeConfig describes the volume data of a [Scene].
type VolumeConfig struct {

	// Resolution is the number of voxels along each axis. If all zero,
	// the default texture coordinates are used, without inset.
	Resolution [3]int32 `toml:"resolution" yaml:"resolution"`
}

// CameraConfig is the camera of a [Scene].
type CameraConfig struct {
	Eye    [3]float32 `toml:"eye" yaml:"eye"`
	Target [3]float32 `toml:"target" yaml:"target"`
	Up     [3]float32 `toml:"up" yaml:"up"`
}

// ActorConfig is the world placement of the volume in a [Scene].
type ActorConfig struct {
	Position [3]float32 `toml:"position" yaml:"position"`
	Scale    [3]float32 `toml:"scale" yaml:"scale"`

	// Axis and Angle (in degrees) give the rotation.
	Axis  [3]float32 `toml:"axis" yaml:"axis"`
	Angle float32    `toml:"angle" yaml:"angle"`
}

// LightConfig is a light of a [Scene].
type LightConfig struct {
	Name string `toml:"name" yaml:"name"`

	// Position is homogeneous: w = 0 for a directional light. It is in camera
	// coordinates, or relative to the volume if FollowActor is set.
	Position [4]float32 `toml:"position" yaml:"position"`

	// FollowActor makes the light move with the volume instead of the camera.
	FollowActor bool `toml:"follow_actor" yaml:"follow_actor"`

	// Off turns the light off, leaving its slot empty.
	Off bool `toml:"off" yaml:"off"`
}

// NewScene returns a scene with the unit box, default texture coordinates,
// and the camera 2.5 units in front of the box center, with no lights.
func NewScene() *Scene {
	return &Scene{
		Box:    BoxConfig{Max: [3]float32{1, 1, 1}},
		Camera: CameraConfig{Eye: [3]float32{0.5, 0.5, 3}, Target: [3]float32{0.5, 0.5, 0.5}, Up: [3]float32{0, 1, 0}},
		Actor:  ActorConfig{Scale: [3]float32{1, 1, 1}, Axis: [3]float32{0, 1, 0}},
	}
}

// OpenScene reads a scene from the given file, which is YAML if it has
// a .yaml or .yml extension, and TOML otherwise.
func OpenScene(filename string) (*Scene, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	read := ReadScene
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		read = ReadSceneYAML
	}
	sc, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("volume.OpenScene %q: %w", filename, err)
	}
	return sc, nil
}

// ReadScene reads a scene in TOML format, starting from [NewScene] values.
func ReadScene(r io.Reader) (*Scene, error) {
	sc := NewScene()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(sc); err != nil {
		return nil, err
	}
	return sc, nil
}

// ReadSceneYAML reads a scene in YAML format, starting from [NewScene] values.
func ReadSceneYAML(r io.Reader) (*Scene, error) {
	sc := NewScene()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(sc); err != nil && err != io.EOF {
		return nil, err
	}
	return sc, nil
}

// Clone returns a deep copy of the scene.
func (sc *Scene) Clone() *Scene {
	cp := &Scene{}
	err := copier.CopyWithOption(cp, sc, copier.Option{CaseSensitive: true, DeepCopy: true})
	if err != nil {
		slog.Error("volume.Scene.Clone", "err", err)
	}
	return cp
}

// BoxValue returns the box as a [math32.Box3].
func (sc *Scene) BoxValue() math32.Box3 {
	mn, mx := sc.Box.Min, sc.Box.Max
	return math32.B3(mn[0], mn[1], mn[2], mx[0], mx[1], mx[2])
}

// Resolution returns the volume resolution as a [math32.Vector3i].
func (sc *Scene) Resolution() math32.Vector3i {
	r := sc.Volume.Resolution
	return math32.Vec3i(r[0], r[1], r[2])
}

// Apply sets the box and texture coordinates of the given Raycast.
// The box is always applied; an invalid resolution is returned as an error
// and leaves the texture coordinates unchanged.
func (sc *Scene) Apply(rc *Raycast) error {
	rc.SetBox(sc.BoxValue())
	if sc.Resolution() == (math32.Vector3i{}) {
		rc.ResetTextureCoordinates()
		return nil
	}
	return rc.GenerateTextureCoordinates(sc.Resolution())
}

// UpdateTransform sets the given transform from the actor placement.
func (sc *Scene) UpdateTransform(tr *xyz.Transform) {
	a := &sc.Actor
	tr.SetPos(a.Position[0], a.Position[1], a.Position[2])
	tr.SetScale(a.Scale[0], a.Scale[1], a.Scale[2])
	if a.Angle != 0 {
		tr.SetAxisRotation(a.Axis[0], a.Axis[1], a.Axis[2], a.Angle)
	} else {
		tr.Quat.SetIdentity()
	}
	tr.UpdateWorldMatrix()
}

// UpdateCamera places the camera.
func (sc *Scene) UpdateCamera(cam *xyz.Camera) {
	c := &sc.Camera
	cam.Pose.Pos = vec3(c.Eye)
	cam.LookAt(vec3(c.Target), vec3(c.Up))
}

// Stage holds everything needed to render a [Scene].
type Stage struct {

	// Scene is a copy of the scene the stage was built from.
	Scene *Scene

	Raycast *Raycast
	Actor   *xyz.Actor
	Camera  *xyz.Camera
	Shader  *xyz.Shader
}

// Build makes a new [Stage] for the scene, drawing with the given program,
// which may be nil if no program is compiled yet.
func (sc *Scene) Build(prog shader.Program) (*Stage, error) {
	st := &Stage{Scene: sc.Clone(), Raycast: New(), Camera: xyz.NewCamera(), Shader: xyz.NewShader("raycast", prog)}
	if err := sc.Apply(st.Raycast); err != nil {
		return nil, err
	}
	sc.UpdateCamera(st.Camera)
	tr := xyz.NewTransform(nil)
	sc.UpdateTransform(tr)
	st.Actor = xyz.NewActor("volume", nil, st.Shader, tr)
	for i, lc := range sc.Lights {
		name := lc.Name
		if name == "" {
			name = fmt.Sprintf("light%d", i)
		}
		p := lc.Position
		lt := xyz.NewLight(name).SetPosition(p[0], p[1], p[2], p[3])
		lt.On = !lc.Off
		if lc.FollowActor {
			lt.SetFollowed(tr)
		}
		if st.Shader.AddLight(lt) < 0 {
			return nil, fmt.Errorf("volume.Scene Build: more than %d lights", xyz.MaxLights)
		}
	}
	st.Raycast.BindActor(st.Actor)
	return st, nil
}

// Render runs one frame of the stage with the given renderer settings:
// all render callbacks of the actor, then the uniforms, then draw.
func (st *Stage) Render(time float64, passes int, draw xyz.DrawFunc) {
	rn := xyz.NewRenderer(st.Camera, draw)
	rn.Passes = passes
	rn.Render(time, st.Actor)
}

func vec3(a [3]float32) math32.Vector3 {
	return math32.Vec3(a[0], a[1], a[2])
}
