// Package report writes per-generation statistics of a run as CSV and as a
// PNG line chart.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"life-frames/internal/core"
)

// WriteCSV writes a header and one row per generation.
func WriteCSV(w io.Writer, history []core.StepStats) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"generation", "population", "births", "deaths"}); err != nil {
		return err
	}
	for _, s := range history {
		rec := []string{
			strconv.Itoa(s.Generation),
			strconv.Itoa(s.Population),
			strconv.Itoa(s.Births),
			strconv.Itoa(s.Deaths),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteChart renders population, births and deaths against generation.
// At least two generations are required to draw a line.
func WriteChart(w io.Writer, title string, history []core.StepStats) error {
	if len(history) < 2 {
		return fmt.Errorf("chart needs at least 2 generations, have %d", len(history))
	}
	xs := make([]float64, len(history))
	pop := make([]float64, len(history))
	births := make([]float64, len(history))
	deaths := make([]float64, len(history))
	top := 1.0
	for i, s := range history {
		xs[i] = float64(s.Generation)
		pop[i] = float64(s.Population)
		births[i] = float64(s.Births)
		deaths[i] = float64(s.Deaths)
		top = max(top, pop[i], births[i], deaths[i])
	}

	graph := chart.Chart{
		Title:  title,
		Width:  960,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Name:  "generation",
			Style: chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return strconv.Itoa(int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "cells",
			Style: chart.Style{FontSize: 10.0},
			// A fixed range keeps flat series (e.g. an all-dead run) renderable.
			Range: &chart.ContinuousRange{Min: 0, Max: top * 1.05},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "population",
				XValues: xs,
				YValues: pop,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "births",
				XValues: xs,
				YValues: births,
				Style:   chart.Style{StrokeColor: chart.ColorGreen, StrokeWidth: 1.5},
			},
			chart.ContinuousSeries{
				Name:    "deaths",
				XValues: xs,
				YValues: deaths,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 220, G: 60, B: 60, A: 255}, StrokeWidth: 1.5},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph.Render(chart.PNG, w)
}

// WriteFiles writes the CSV and the chart to the given paths. An empty path
// skips that output.
func WriteFiles(csvPath, chartPath, title string, history []core.StepStats) error {
	if csvPath != "" {
		if err := writeFile(csvPath, func(w io.Writer) error { return WriteCSV(w, history) }); err != nil {
			return err
		}
	}
	if chartPath != "" {
		if err := writeFile(chartPath, func(w io.Writer) error { return WriteChart(w, title, history) }); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrFileOpen, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
