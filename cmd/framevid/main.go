package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"life-frames/internal/core"
	"life-frames/internal/report"
	"life-frames/internal/sim"
	"life-frames/internal/video"
)

func main() {
	dir := flag.String("dir", "images", "directory of frames")
	ext := flag.String("ext", ".pbm", "frame file extension")
	out := flag.String("o", "life.avi", "output AVI path")
	chartPath := flag.String("chart", "", "also plot population, births and deaths of the frames to this PNG")
	opts := video.DefaultOptions()
	flag.IntVar(&opts.FPS, "fps", opts.FPS, "frames per second")
	flag.IntVar(&opts.Scale, "scale", opts.Scale, "pixels per cell")
	flag.IntVar(&opts.Quality, "quality", opts.Quality, "JPEG quality (1-100)")
	flag.Parse()

	opts.Logger = log.New(os.Stderr, "framevid: ", log.LstdFlags)
	n, err := video.AssembleDir(*dir, *ext, *out, opts)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s: %d frames at %d fps\n", *out, n, opts.FPS)

	if *chartPath == "" {
		return
	}
	history, err := replay(*dir, *ext)
	if err != nil {
		log.Fatal(err)
	}
	if err := report.WriteFiles("", *chartPath, *dir, history); err != nil {
		log.Fatalf("chart: %v", err)
	}
	fmt.Printf("wrote %s\n", *chartPath)
}

// replay recovers per-generation statistics from the frames on disk.
func replay(dir, ext string) ([]core.StepStats, error) {
	p, err := sim.NewPlayback(dir, ext)
	if err != nil {
		return nil, err
	}
	history := []core.StepStats{{Population: p.Current().Population()}}
	for !p.Done() {
		c, err := p.Step()
		if err != nil {
			return nil, err
		}
		history = append(history, core.StepStats{
			Generation: p.Generation(),
			Population: p.Current().Population(),
			Births:     c.Births,
			Deaths:     c.Deaths,
		})
	}
	return history, nil
}
