// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// TerrainVertexShader is the vertex shader for terrain rendering.
//
//go:embed terrain.vert
var TerrainVertexShader string

// TerrainFragmentShader is the fragment shader for terrain rendering.
//
//go:embed terrain.frag
var TerrainFragmentShader string

// WaterVertexShader is the vertex shader for the water plane.
//
//go:embed water.vert
var WaterVertexShader string

// WaterFragmentShader is the fragment shader for the water plane.
//
//go:embed water.frag
var WaterFragmentShader string

// InstanceVertexShader is the vertex shader for instanced vegetation.
//
//go:embed instance.vert
var InstanceVertexShader string

// InstanceFragmentShader is the fragment shader for instanced vegetation.
//
//go:embed instance.frag
var InstanceFragmentShader string

// TreeVertexShader is the vertex shader for tree branch segments.
//
//go:embed tree.vert
var TreeVertexShader string

// TreeFragmentShader is the fragment shader for tree branch segments.
//
//go:embed tree.frag
var TreeFragmentShader string

// LeafVertexShader is the vertex shader for instanced leaf clusters.
//
//go:embed leaf.vert
var LeafVertexShader string

// LeafFragmentShader is the fragment shader for instanced leaf clusters.
//
//go:embed leaf.frag
var LeafFragmentShader string
