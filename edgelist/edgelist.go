package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/mincut/core"
)

// Sentinel errors for parsing.
var (
	// ErrSyntax indicates a line that does not match the selected format.
	ErrSyntax = errors.New("edgelist: syntax error")

	// ErrBadWeight indicates a weight that is not an integer >= 1.
	ErrBadWeight = errors.New("edgelist: bad weight")

	// ErrUnknownFormat indicates an unsupported format name.
	ErrUnknownFormat = errors.New("edgelist: unknown format")
)

// Format names an input format.
type Format string

// Supported formats.
const (
	FormatAdjacency Format = "adjacency"
	FormatTriples   Format = "triples"
)

// Edge is the parsed edge type.
type Edge = core.Edge[string]

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatAdjacency, FormatTriples:
		return f, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// Parse reads r in format f.
func Parse(r io.Reader, f Format) ([]Edge, error) {
	switch f {
	case FormatAdjacency:
		return ParseAdjacency(r)
	case FormatTriples:
		return ParseTriples(r)
	default:
		return nil, fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}
}

// ParseAdjacency reads "node: n1 n2 …" lines into unit-weight edges, in
// input order.
func ParseAdjacency(r io.Reader) ([]Edge, error) {
	var edges []Edge
	err := scanLines(r, func(n int, line string) error {
		head, tail, ok := strings.Cut(line, ":")
		head = strings.TrimSpace(head)
		if !ok || head == "" || strings.ContainsAny(head, " \t") {
			return fmt.Errorf("line %d: %q: want \"node: neighbours...\": %w", n, line, ErrSyntax)
		}
		for _, nbr := range strings.Fields(tail) {
			edges = append(edges, Edge{U: head, V: nbr, Weight: 1})
		}

		return nil
	})

	return edges, err
}

// ParseTriples reads "u v [w]" lines, in input order.
func ParseTriples(r io.Reader) ([]Edge, error) {
	var edges []Edge
	err := scanLines(r, func(n int, line string) error {
		fields := strings.Fields(line)
		if len(fields) < 2 || len(fields) > 3 {
			return fmt.Errorf("line %d: %q: want \"u v [w]\": %w", n, line, ErrSyntax)
		}
		e := Edge{U: fields[0], V: fields[1], Weight: 1}
		if len(fields) == 3 {
			w, err := strconv.ParseInt(fields[2], 10, 64)
			if err != nil || w < 1 {
				return fmt.Errorf("line %d: weight %q: %w", n, fields[2], ErrBadWeight)
			}
			e.Weight = w
		}
		edges = append(edges, e)

		return nil
	})

	return edges, err
}

// scanLines calls fn for every non-blank, non-comment line with its 1-based number.
func scanLines(r io.Reader, fn func(n int, line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := fn(n, line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("edgelist: read: %w", err)
	}

	return nil
}

// Build inserts edges into a new graph.
func Build(edges []Edge) (*core.WeightedGraph[string], error) {
	g, err := core.FromEdges(edges)
	if err != nil {
		return nil, fmt.Errorf("edgelist: build: %w", err)
	}

	return g, nil
}

// Write emits edges as triples, one per line.
func Write(w io.Writer, edges []Edge) error {
	bw := bufio.NewWriter(w)
	for _, e := range edges {
		if _, err := fmt.Fprintf(bw, "%s %s %d\n", e.U, e.V, e.Weight); err != nil {
			return err
		}
	}

	return bw.Flush()
}
