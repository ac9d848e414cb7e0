package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/antsim/internal/langton"
	"github.com/san-kum/antsim/internal/sim"
)

// Report is the JSON summary of a finished run.
type Report struct {
	Rules       string             `json:"rules"`
	Size        int                `json:"size"`
	Seed        int64              `json:"seed"`
	Ticks       int                `json:"ticks"`
	Painted     int                `json:"painted"`
	Checksum    string             `json:"checksum"`
	Metrics     map[string]float64 `json:"metrics"`
	SampleEvery int                `json:"sample_every"`
	Coverage    []float64          `json:"coverage"`
	Ants        []AntReport        `json:"ants"`
}

type AntReport struct {
	Heading string `json:"heading"`
	Row     int    `json:"row"`
	Col     int    `json:"col"`
}

func NewReport(c *langton.Colony, seed int64, sampleEvery int, result *sim.Result) Report {
	r := Report{
		Rules:       c.Rules().String(),
		Size:        c.Size(),
		Seed:        seed,
		Ticks:       c.Ticks(),
		Painted:     result.Count,
		Checksum:    fmt.Sprintf("%016x", result.Checksum),
		Metrics:     result.Metrics,
		SampleEvery: sampleEvery,
		Coverage:    result.Coverage,
		Ants:        make([]AntReport, len(result.Ants)),
	}
	for i, a := range result.Ants {
		r.Ants[i] = AntReport{Heading: a.Heading.String(), Row: a.Row, Col: a.Col}
	}
	return r
}

func WriteJSON(w io.Writer, r Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// WriteCoverageCSV writes one "tick,coverage" row per sample.
func WriteCoverageCSV(w io.Writer, sampleEvery int, coverage []float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"tick", "coverage"}); err != nil {
		return err
	}
	for i, v := range coverage {
		row := []string{strconv.Itoa(i * sampleEvery), strconv.FormatFloat(v, 'f', 6, 64)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
