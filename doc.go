// Package cvd implements real-time simulation and correction of color
// vision deficiencies for screen content.
//
// # Overview
//
// The screen is divided into up to four independently configured zones
// (fullscreen, axis splits, quadrants, or a circle/rectangle around the
// pointer). Each zone either passes pixels through, simulates how a CVD
// viewer perceives them, or corrects them so lost color differences become
// distinguishable again. Corrections include per-channel gradient LUT
// remapping, Daltonization, hue rotation and CIELAB opponent-axis
// remapping, optionally weighted per pixel by the simulated color loss.
//
// # Quick Start
//
//	e := cvd.New()
//	defer e.Close()
//
//	z := e.Zone(0)
//	z.Mode = cvd.ModeSimulation
//	z.Filter = cvd.FilterProtanopia
//	e.SetZone(0, z)
//
//	dst := cvd.NewPixmap(src.Width(), src.Height())
//	e.Process(src, dst, pointerX, pointerY)
//
// For GPU hosts, package kernel exposes the packed parameter block, the
// LUT texture encoding and a ready WGSL compute shader reproducing the
// same per-pixel transform.
//
// # Concurrency
//
// Configuration mutation is single-writer; [Engine.Snapshot] publishes
// immutable generations that any number of readers may evaluate
// concurrently. LUT tables are never mutated in place, only swapped.
package cvd
