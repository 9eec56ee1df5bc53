package uilens

import (
	"fmt"
	"math"
)

// ExtractRegions groups the differing pixels of a comparison into
// 4-connected components and returns one DiffRegion per component, each
// with a bounding box, pixel count, severity and the perceptual distance
// between the region's mean colors in the two bitmaps. Components smaller
// than the minimum area are discarded as noise.
func ExtractRegions(d *PixelDiff, expected, actual *Bitmap, th Thresholds) []DiffRegion {
	if d == nil || d.DiffPixels == 0 {
		return nil
	}
	w, h := d.width, d.height
	visited := make([]bool, len(d.mask))
	var regions []DiffRegion

	for start := range d.mask {
		if !d.mask[start] || visited[start] {
			continue
		}
		minX, minY := w, h
		maxX, maxY := 0, 0
		count := 0
		var sumER, sumEG, sumEB float64
		var sumAR, sumAG, sumAB float64

		// Iterative flood fill; recursion would blow the stack on a
		// full-screen region.
		stack := []int{start}
		visited[start] = true
		for len(stack) > 0 {
			i := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			x, y := i%w, i/w

			count++
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
			er, eg, eb, _ := expected.RGBA(x, y)
			ar, ag, ab, _ := actual.RGBA(x, y)
			sumER += float64(er)
			sumEG += float64(eg)
			sumEB += float64(eb)
			sumAR += float64(ar)
			sumAG += float64(ag)
			sumAB += float64(ab)

			for _, nb := range [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
				nx, ny := x+nb[0], y+nb[1]
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				ni := ny*w + nx
				if visited[ni] || !d.mask[ni] {
					continue
				}
				visited[ni] = true
				stack = append(stack, ni)
			}
		}

		if count < th.MinRegionArea {
			continue
		}

		n := float64(count)
		meanE := Color{R: sumER / n / 255, G: sumEG / n / 255, B: sumEB / n / 255}
		meanA := Color{R: sumAR / n / 255, G: sumAG / n / 255, B: sumAB / n / 255}
		deltaE := DeltaE00(meanE.ToLab(), meanA.ToLab())

		bounds := B(float64(minX), float64(minY), float64(maxX-minX+1), float64(maxY-minY+1))
		frac := float64(count) / float64(d.TotalPixels)
		regions = append(regions, DiffRegion{
			Bounds:     bounds,
			PixelCount: count,
			Severity:   th.pixelSeverity(frac),
			Category:   regionCategory(deltaE, th),
			Description: fmt.Sprintf("%d differing pixels at (%.0f,%.0f) %dx%d",
				count, bounds.X, bounds.Y, maxX-minX+1, maxY-minY+1),
			DeltaE: deltaE,
		})
	}
	return regions
}

// regionCategory buckets a region by what most likely caused it: a strong
// mean-color shift points at a wrong color, a weak one at moved content.
func regionCategory(deltaE float64, th Thresholds) string {
	if deltaE >= th.ColorFailDeltaE {
		return "color"
	}
	return "content"
}

// attributeRegions assigns each region to the smallest element whose
// bounds contain the region's center, when any does.
func attributeRegions(regions []DiffRegion, elements []*Element) {
	for i := range regions {
		cx, cy := regions[i].Bounds.CenterX(), regions[i].Bounds.CenterY()
		bestArea := math.Inf(1)
		for _, e := range elements {
			if a := e.Bounds.Area(); a > 0 && a < bestArea && e.Bounds.ContainsPoint(cx, cy) {
				bestArea = a
				regions[i].ElementID = e.DisplayID()
			}
		}
	}
}
