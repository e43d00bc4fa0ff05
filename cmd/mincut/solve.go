package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/mincut/bfs"
	"github.com/katalvlaran/mincut/edgelist"
	"github.com/katalvlaran/mincut/stoerwagner"
)

type solveCmd struct {
	File   string  `arg:"" optional:"" type:"existingfile" help:"Graph file; stdin when omitted"`
	Format *string `help:"Input format: adjacency or triples (default from config)"`
	Start  string  `help:"Start node reused by every phase (default: smallest label)"`
	Edges  bool    `help:"List the edges crossing the cut" default:"true" negatable:""`
}

func (c *solveCmd) Run(a *app) error {
	formatName := a.cfg.Input.Format
	if c.Format != nil {
		formatName = *c.Format
	}
	format, err := edgelist.ParseFormat(formatName)
	if err != nil {
		return err
	}

	var in io.Reader = a.stdin
	if c.File != "" {
		fd, err := os.Open(c.File)
		if err != nil {
			return err
		}
		defer fd.Close()
		in = fd
	}

	edges, err := edgelist.Parse(in, format)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	g, err := edgelist.Build(edges)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	comps, err := bfs.Components(g)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	log := a.log.With("input", inputName(c.File))
	log.Info("graph loaded",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"total_weight", g.TotalWeight(),
		"components", len(comps))
	if len(comps) > 1 {
		log.Warn("graph is disconnected, minimum cut is 0", "components", len(comps))
	}

	opts := []stoerwagner.Option[string]{
		stoerwagner.WithPhaseHook(func(s stoerwagner.PhaseStats[string]) {
			log.Debug("phase",
				"phase", s.Phase,
				"nodes", s.NodeCount,
				"cut_of_phase", s.CutWeight,
				"best", s.BestWeight,
				"s", s.SecondLast,
				"t", s.Last)
		}),
	}
	if c.Start != "" {
		opts = append(opts, stoerwagner.WithStart(c.Start))
	}

	// MinimumCut contracts its input; keep g intact for the crossing edges.
	res, err := stoerwagner.MinimumCut(g.Clone(), opts...)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	log.Info("minimum cut found", "weight", res.CutWeight, "phases", res.Phases)

	fmt.Fprintf(a.stdout, "cut weight: %d\n", res.CutWeight)
	fmt.Fprintf(a.stdout, "partition: %d x %d = %d\n", res.PartitionSizeA, res.PartitionSizeB, res.Product())
	if !c.Edges {
		return nil
	}

	side := make(map[string]bool, len(res.SideA))
	for _, v := range res.SideA {
		side[v] = true
	}
	crossing := g.CrossingEdges(side)
	fmt.Fprintf(a.stdout, "crossing edges: %d\n", len(crossing))
	for _, e := range crossing {
		fmt.Fprintf(a.stdout, "  %s %s %d\n", e.U, e.V, e.Weight)
	}

	return nil
}

func inputName(file string) string {
	if file == "" {
		return "stdin"
	}

	return file
}
