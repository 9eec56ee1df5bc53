// Package uilens computes a fidelity score and an actionable diff between a
// declarative UI design and a rendered implementation.
//
// # Overview
//
// uilens is a pure comparison core: it takes a tree of intended design nodes,
// a flat snapshot of rendered implementation elements, and optionally a pair
// of equal-size RGBA screenshots, and produces a ComparisonResult describing
// how faithfully the build matches the design. It never renders, never talks
// to a network or process, and never persists state.
//
// # Quick Start
//
//	import "github.com/uilens/uilens"
//
//	// Resolve a raw design document into absolute-positioned nodes.
//	layout, err := uilens.LayoutDocument(doc, "light")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Compare against an implementation snapshot.
//	result, err := uilens.Compare(layout, elements)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Summary)
//
// # Pipeline
//
// A comparison runs in fixed stages: element matching (five ordered passes,
// each excluding entities claimed by earlier passes), per-property comparison
// of every matched pair, an optional pixel-level diff with connected-region
// extraction, cascade suppression of derivative mismatches, and finally a
// weighted score with a letter grade.
//
// # Inputs
//
// Design nodes come either from LayoutDocument, which resolves variables,
// expands reusable components and solves constraint sizing, or from any
// adapter that produces a DesignNode tree. Implementation elements come from
// an external inspector that walks the live UI; uilens never opens a
// connection itself. Screenshots are raw RGBA bitmaps; decoding image files
// is the imageio package's job, not the core's.
//
// # Coordinate System
//
// Uses standard screen coordinates: origin (0,0) at top-left, X increases
// right, Y increases down. All bounds are axis-aligned.
package uilens
