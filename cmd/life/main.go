package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"life-frames/internal/report"
	"life-frames/internal/sim"
)

func main() {
	configPath := flag.String("config", "", "JSON run configuration; explicit flags override it")
	reportDir := flag.String("report", "", "directory for stats.csv and population.png (implies -stats)")
	quiet := flag.Bool("quiet", false, "suppress progress logging")
	cfg := sim.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if *configPath != "" {
		loaded, err := sim.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		set := map[string]string{}
		flag.Visit(func(f *flag.Flag) { set[f.Name] = f.Value.String() })
		cfg = loaded.Merge(set)
	}
	if *reportDir != "" {
		cfg.Stats = true
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Fatalf("output directory: %v", err)
	}

	var logger *log.Logger
	if !*quiet {
		logger = log.New(os.Stderr, "life: ", log.LstdFlags)
	}
	sum, err := sim.NewDriver(cfg, nil, logger).Run()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%dx%d, %d generations, %d frames in %s, final population %d\n",
		sum.Width, sum.Height, sum.Generations, sum.Frames, cfg.OutputDir, sum.Population)

	if *reportDir == "" {
		return
	}
	if err := os.MkdirAll(*reportDir, 0o755); err != nil {
		log.Fatalf("report directory: %v", err)
	}
	title := fmt.Sprintf("%s (%dx%d, %s/%s)", filepath.Base(cfg.Input), sum.Width, sum.Height, cfg.Kernel, cfg.Boundary)
	csvPath := filepath.Join(*reportDir, "stats.csv")
	chartPath := filepath.Join(*reportDir, "population.png")
	if len(sum.History) < 2 {
		chartPath = "" // a single generation has nothing to plot
	}
	if err := report.WriteFiles(csvPath, chartPath, title, sum.History); err != nil {
		log.Fatalf("report: %v", err)
	}
	fmt.Printf("wrote report to %s\n", *reportDir)
}
