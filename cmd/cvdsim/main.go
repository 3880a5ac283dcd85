// Command cvdsim applies CVD simulation or correction to a PNG image.
package main

import (
	"flag"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/cvd"
)

func main() {
	var (
		input   = flag.String("input", "", "input PNG file")
		output  = flag.String("output", "out.png", "output PNG file")
		filter  = flag.Int("filter", int(cvd.FilterDeuteranopia), "CVD filter type (0-8)")
		model   = flag.Int("model", int(cvd.ModelLMS), "simulation model (0 matrix, 1 LMS)")
		correct = flag.Bool("correct", false, "daltonize instead of simulating")
		split   = flag.Bool("split", false, "vertical split: original left, processed right")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		cvd.SetLogger(slog.Default())
	}

	f, err := os.Open(*input)
	if err != nil {
		log.Fatalf("open input: %v", err)
	}
	img, err := png.Decode(f)
	f.Close()
	if err != nil {
		log.Fatalf("decode input: %v", err)
	}

	src := cvd.FromImage(img)
	dst := cvd.NewPixmap(src.Width(), src.Height())

	e := cvd.New()
	defer e.Close()

	z := e.Zone(0)
	z.Model = cvd.Model(*model)
	z.Filter = cvd.Filter(*filter)
	if *correct {
		z.Mode = cvd.ModeCorrection
		z.Algorithm = cvd.AlgorithmDaltonize
		z.Strength = 1
	} else {
		z.Mode = cvd.ModeSimulation
	}
	z.Intensity = 1
	e.SetZone(0, z)

	if *split {
		t := e.Topology()
		t.Mode = cvd.SplitVertical
		t.SplitX = 0.5
		e.SetTopology(t)
		// Zone 0 is the left half, zone 1 the right.
		e.SetZone(1, z)
		z.Mode = cvd.ModeOriginal
		e.SetZone(0, z)
	}

	if err := e.Process(src, dst, 0, 0); err != nil {
		log.Fatalf("process: %v", err)
	}

	out, err := os.Create(*output)
	if err != nil {
		log.Fatalf("create output: %v", err)
	}
	defer out.Close()
	if err := png.Encode(out, dst.ToImage()); err != nil {
		log.Fatalf("encode output: %v", err)
	}
	log.Printf("wrote %s (%dx%d)", *output, dst.Width(), dst.Height())
}
