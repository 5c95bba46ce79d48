// Package quarkgl is a deterministic Q24.8 fixed-point wireframe engine for
// boards without an FPU.
//
// QuarkGL draws line and point models: no polygons, no depth buffer. Distance
// is shown by colour and alpha falloff instead.
//
// Pipeline (fixed):
//
//	Scene → Cull → Transform → Near clip → Project → Rasterize → Frame output.
//
// The renderer draws into a raster.Framebuffer it owns for the duration of a
// frame and avoids allocations in the render hot path. Per-object scratch
// comes from a TransformArena.
//
// All scalars are fx.Fixed. Angles are radians in the same format, reduced
// to [-Pi, Pi]. Floating point is used only when a projection matrix is
// rebuilt.
package quarkgl
