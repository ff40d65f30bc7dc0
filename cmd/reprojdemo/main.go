// Command reprojdemo reprojects a synthetic checkerboard tile through each
// registered scenario and writes the composited result as a PNG.
// Run from the reproj module root directory.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"seehuhn.de/go/reproj"
	"seehuhn.de/go/reproj/testcases"
)

func main() {
	if err := os.MkdirAll("testdata/demo", 0o755); err != nil {
		panic(err)
	}

	for _, sc := range testcases.All {
		if err := renderScenario(sc); err != nil {
			panic(fmt.Errorf("%s: %w", sc.Name, err))
		}
	}
}

func renderScenario(sc testcases.Scenario) error {
	domain := sc.SourceProj.Extent
	if !sc.SourceProj.HasExtent {
		domain = sc.TargetExtent
	}

	mesh := sc.Triangulator().BuildMesh(sc.TargetExtent)

	w := int((sc.TargetExtent.URx - sc.TargetExtent.LLx) / sc.TargetRes)
	h := int((sc.TargetExtent.URy - sc.TargetExtent.LLy) / sc.TargetRes)
	if w <= 0 || h <= 0 {
		return fmt.Errorf("degenerate target extent %v", sc.TargetExtent)
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))

	tile := testcases.Checkerboard(64, 64, 8, color.RGBA{R: 200, G: 200, B: 255, A: 255}, color.RGBA{R: 40, G: 40, B: 80, A: 255})

	r := &reproj.Renderer{
		SourceResolution: (domain.URx - domain.LLx) / 64,
		SourceDomain:     sc.SourceProj.Extent,
		HasSourceDomain:  sc.SourceProj.HasExtent,
		TargetResolution: sc.TargetRes,
		TargetExtent:     sc.TargetExtent,
		DebugColor:       color.RGBA{R: 255, A: 255},
	}
	r.Render(dst, mesh, []reproj.Source{{Extent: domain, Image: tile}})

	f, err := os.Create(fmt.Sprintf("testdata/demo/%s.png", sc.Name))
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, dst)
}
