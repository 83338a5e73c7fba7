// Package arc provides 2D geometric utilities for flat vertex buffers.
//
// # Overview
//
// arc works on caller-owned []Vertex slices of the kind a real-time renderer
// consumes: every Vertex carries a position, a colour and a texture
// coordinate. Four consecutive vertices form a quad, addressed by a quad index
// (base vertex index = id*4), with corners ordered top-left, top-right,
// bottom-right, bottom-left.
//
// The package never allocates or resizes a buffer. Builders write corner
// positions, transforms mutate positions in place, and the caller hands the
// buffer to the renderer.
//
// # Quick Start
//
//	vertices := make([]arc.Vertex, 4*64)
//
//	// 8x8 grid of 32px cells starting at (16, 16) with 4px padding
//	arc.MakeGrid(vertices, 0, arc.GridSpec{
//	    Cols: 8, Rows: 8,
//	    CellSize: arc.V(32, 32),
//	    Position: arc.V(16, 16),
//	    Padding:  arc.V(4, 4),
//	})
//
//	// spin quad 9 about its own centre and tint it
//	arc.RotateQuad(vertices, 9, 45)
//	arc.SetQuadColor(vertices, 9, arc.Red)
//
// # Angles and pivots
//
// All public angles are in degrees. Transforms that take a center rotate,
// scale, shear or reflect about that point; pass Vec2{} for the origin.
// Range transforms never compute a centroid on their own. The quad-level
// helpers (RotateQuad, ScaleQuad, ShearQuad, TransformQuad) default to the
// quad's current centre.
//
// # Numeric policy
//
// Nothing validates its inputs: NaN and Inf propagate, and interpolation
// parameters are not clamped. Colour interpolation outside [0, 1] wraps
// channel values modulo 256.
//
// # Sub-packages
//
//   - random: self-seeded random sampling (uniform, Gaussian, Bernoulli, points)
//   - resource: lazily loaded, memoised resource registry with texture and font loaders
//   - atlas: packs several images into one texture on a regular grid
//   - render: headless rasteriser for vertex buffers
//   - integration/atlascanvas: uploads an atlas to a gpucontext device
//   - integration/ebitenarc: draws vertex buffers with Ebitengine
//
// # Concurrency
//
// Nothing in arc is safe for concurrent mutation of overlapping buffer
// ranges. SetLogger and Logger are the only concurrency-safe entry points.
package arc
