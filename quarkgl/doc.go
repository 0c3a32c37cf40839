// Package quarkgl is a small software 3D renderer for plots.
//
// It draws world-space points (as shaded discs) and lines into a caller
// provided Target under a perspective or orthographic Camera. Drawing is
// immediate mode:
//
//	r.Begin(target, cam) → DrawLine3D / DrawPoint3D … → r.End()
//
// Each point is projected on its own; there are no meshes, lights or
// clipping beyond a per-point depth range check. Scalars are float32.
package quarkgl
