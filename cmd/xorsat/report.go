package main

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/gitrdm/gokanxor/pkg/xorsat"
)

type report struct {
	File        string      `yaml:"file"`
	Satisfiable bool        `yaml:"satisfiable"`
	Count       int         `yaml:"count"`
	Example     string      `yaml:"example,omitempty"`
	Verified    bool        `yaml:"verified,omitempty"`
	Stats       statsReport `yaml:"stats"`
}

type statsReport struct {
	SourceEquations int    `yaml:"source_equations"`
	Derived         int    `yaml:"derived"`
	Discarded       int    `yaml:"discarded"`
	Fallbacks       int    `yaml:"fallbacks"`
	Constants       int    `yaml:"constants"`
	Equations       int    `yaml:"equations"`
	FreeVariables   int    `yaml:"free_variables"`
	Nodes           int    `yaml:"nodes"`
	Pruned          int    `yaml:"pruned"`
	MaxDepth        int    `yaml:"max_depth"`
	ExtractTime     string `yaml:"extract_time"`
	SearchTime      string `yaml:"search_time"`
}

func newReport(oc outcome) report {
	s := oc.result.Stats
	return report{
		File:        oc.path,
		Satisfiable: oc.result.Count > 0,
		Count:       oc.result.Count,
		Example:     oc.result.Example,
		Verified:    oc.verified,
		Stats:       newStatsReport(s),
	}
}

func newStatsReport(s xorsat.Stats) statsReport {
	return statsReport{
		SourceEquations: s.SourceEquations,
		Derived:         s.Derived,
		Discarded:       s.Discarded,
		Fallbacks:       s.Fallbacks,
		Constants:       s.Constants,
		Equations:       s.Equations,
		FreeVariables:   s.FreeVariables,
		Nodes:           s.NodesExplored,
		Pruned:          s.Pruned,
		MaxDepth:        s.MaxDepth,
		ExtractTime:     s.ExtractTime.String(),
		SearchTime:      s.SearchTime.String(),
	}
}

func writeYAML(out io.Writer, outcomes []outcome) error {
	reports := make([]report, len(outcomes))
	for i, oc := range outcomes {
		reports[i] = newReport(oc)
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(reports); err != nil {
		return err
	}
	return enc.Close()
}
