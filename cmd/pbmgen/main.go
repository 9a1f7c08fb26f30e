package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"life-frames/internal/core"
	"life-frames/internal/pbm"
	"life-frames/pkg/pattern"
)

func main() {
	width := flag.Int("w", 1920, "bitmap width")
	height := flag.Int("h", 1080, "bitmap height")
	density := flag.Float64("density", 0.5, "fraction of live cells for a random fill (0 leaves the bitmap empty)")
	seed := flag.Int64("seed", 42, "seed for the random fill")
	name := flag.String("pattern", "", "centre a named pattern instead of filling randomly: "+strings.Join(pattern.Names(), ", "))
	out := flag.String("o", "image_init.pbm", "output path")
	flag.Parse()

	g, err := core.NewGrid(*width, *height, core.Clipped)
	if err != nil {
		log.Fatalf("grid: %v", err)
	}
	if *name != "" {
		p, err := pattern.Lookup(*name)
		if err != nil {
			log.Fatal(err)
		}
		if p.W > g.W || p.H > g.H {
			log.Fatalf("pattern %s is %dx%d, larger than the %dx%d bitmap", p.Name, p.W, p.H, g.W, g.H)
		}
		p.Centre(g)
	} else if *density > 0 {
		pattern.NewRNG(*seed).Fill(g, *density)
	}

	if err := pbm.WriteFile(*out, g); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s: %dx%d, %d live cells\n", *out, g.W, g.H, g.Population())
}
