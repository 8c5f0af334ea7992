// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package volume

import (
	"fmt"

	"cogentcore.org/core/math32"
)

const (
	// NumVertex is the number of box corners.
	NumVertex = 8

	// NumIndex is the number of quad indices: 6 faces of 4 corners.
	NumIndex = 24
)

// boxIndex is the quad topology of the box, returned by [BoxIndex].
var boxIndex = [NumIndex]uint32{
	0, 1, 2, 3, // +Z
	1, 5, 6, 2, // +X
	5, 4, 7, 6, // -Z
	4, 0, 3, 7, // -X
	3, 2, 6, 7, // +Y
	4, 5, 1, 0, // -Y
}

// defaultTexCoords are returned by [DefaultTexCoords].
var defaultTexCoords = [NumVertex]math32.Vector3{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}

// BoxIndex returns the quad topology of the box: 6 faces of 4 corner indices,
// counter-clockwise when seen from outside the box.
// Corners 0-3 are the z = max face and 4-7 the z = min face, each starting
// at (min x, min y) and going counter-clockwise when seen from +Z.
func BoxIndex() [NumIndex]uint32 {
	return boxIndex
}

// DefaultTexCoords returns the texture coordinates of a new [BoxMesh]: the raw
// corners of the unit cube. Note that these put corners 0-3 at texture
// z = 0, the opposite of the box vertex order, whereas
// [BoxMesh.SetVoxelTexCoords] puts corners 0-3 at the high z end.
func DefaultTexCoords() [NumVertex]math32.Vector3 {
	return defaultTexCoords
}

// BoxMesh is the bounding box geometry of a volume: 8 corner vertices with
// 3D texture coordinates, drawn as 6 quads using [BoxIndex]. Only the
// vertex positions and texture coordinates ever change.
type BoxMesh struct {

	// Name is the name of the mesh.
	Name string

	vertex      [NumVertex]math32.Vector3
	texCoord    [NumVertex]math32.Vector3
	bbox        math32.Box3
	boundsDirty bool
}

// NewBoxMesh returns a new unit box mesh with default texture coordinates.
func NewBoxMesh(name string) *BoxMesh {
	ms := &BoxMesh{Name: name}
	ms.SetBox(math32.B3(0, 0, 0, 1, 1, 1))
	ms.texCoord = defaultTexCoords
	return ms
}

// SetBox sets the vertex positions to the corners of the given box,
// and marks the bounds as stale. A box with min > max on some axis
// gives an inverted mesh.
func (ms *BoxMesh) SetBox(box math32.Box3) {
	x0, y0, z0 := box.Min.X, box.Min.Y, box.Min.Z
	x1, y1, z1 := box.Max.X, box.Max.Y, box.Max.Z
	ms.vertex = [NumVertex]math32.Vector3{
		{x0, y0, z1}, {x1, y0, z1}, {x1, y1, z1}, {x0, y1, z1},
		{x0, y0, z0}, {x1, y0, z0}, {x1, y1, z0}, {x0, y1, z0},
	}
	ms.boundsDirty = true
}

// SetVoxelTexCoords sets the texture coordinates inset by half a voxel on each
// axis, for a volume of the given number of voxels (dx = 0.5 / size.X, etc),
// so that sampling at the box faces hits voxel centers. All components of
// size must be positive; this is not checked here.
func (ms *BoxMesh) SetVoxelTexCoords(size math32.Vector3i) {
	dx := 0.5 / float32(size.X)
	dy := 0.5 / float32(size.Y)
	dz := 0.5 / float32(size.Z)
	x0, x1 := dx, 1-dx
	y0, y1 := dy, 1-dy
	z0, z1 := dz, 1-dz
	ms.texCoord = [NumVertex]math32.Vector3{
		{x0, y0, z1}, {x1, y0, z1}, {x1, y1, z1}, {x0, y1, z1},
		{x0, y0, z0}, {x1, y0, z0}, {x1, y1, z0}, {x0, y1, z0},
	}
}

// ResetTexCoords restores [DefaultTexCoords].
func (ms *BoxMesh) ResetTexCoords() {
	ms.texCoord = defaultTexCoords
}

// Vertices returns the 8 vertex positions.
func (ms *BoxMesh) Vertices() [NumVertex]math32.Vector3 {
	return ms.vertex
}

// TexCoords returns the 8 texture coordinates.
func (ms *BoxMesh) TexCoords() [NumVertex]math32.Vector3 {
	return ms.texCoord
}

// BoundsDirty returns true if the vertices changed since the bounds were last computed.
func (ms *BoxMesh) BoundsDirty() bool {
	return ms.boundsDirty
}

// MeshSize returns [NumVertex] and [NumIndex].
func (ms *BoxMesh) MeshSize() (numVertex, numIndex int) {
	return NumVertex, NumIndex
}

// MeshBBox returns the bounding box of the vertices, recomputing it if stale.
func (ms *BoxMesh) MeshBBox() math32.Box3 {
	if ms.boundsDirty {
		ms.bbox.SetFromPoints(ms.vertex[:])
		ms.boundsDirty = false
	}
	return ms.bbox
}

// Set copies the mesh data into the given buffers, which must hold exactly
// 3 * [NumVertex] floats each for vertex and texcoord, and [NumIndex] indices.
// Any other size is a programming error and panics.
func (ms *BoxMesh) Set(vertex, texcoord []float32, index []uint32) {
	if len(vertex) != 3*NumVertex || len(texcoord) != 3*NumVertex || len(index) != NumIndex {
		panic(fmt.Sprintf("volume.BoxMesh Set: buffer sizes %d, %d, %d do not match %d, %d, %d",
			len(vertex), len(texcoord), len(index), 3*NumVertex, 3*NumVertex, NumIndex))
	}
	for i := range NumVertex {
		v := ms.vertex[i]
		tc := ms.texCoord[i]
		vertex[3*i], vertex[3*i+1], vertex[3*i+2] = v.X, v.Y, v.Z
		texcoord[3*i], texcoord[3*i+1], texcoord[3*i+2] = tc.X, tc.Y, tc.Z
	}
	copy(index, boxIndex[:])
}

// TriangleIndex returns the quads of [BoxIndex] split into 12 triangles
// (36 indices) with the same winding, for back ends that only draw triangles.
func TriangleIndex() []uint32 {
	idx := make([]uint32, 0, 36)
	for f := 0; f < NumIndex; f += 4 {
		a, b, c, d := boxIndex[f], boxIndex[f+1], boxIndex[f+2], boxIndex[f+3]
		idx = append(idx, a, b, c, a, c, d)
	}
	return idx
}
