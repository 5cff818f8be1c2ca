package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/redpath/core"
)

// Sentinel errors for malformed instance files.
var (
	// ErrTooShort is returned when the file lacks the header or the
	// source/target line.
	ErrTooShort = errors.New("graphio: file too short, need header and endpoint lines")

	// ErrBadHeader is returned when the first line is not "n m r".
	ErrBadHeader = errors.New("graphio: header line must be: n m r")

	// ErrBadEndpoints is returned when the second line does not carry
	// two vertex names.
	ErrBadEndpoints = errors.New("graphio: endpoint line must contain source and target names")

	// ErrMissingVertices is returned when fewer than n vertex lines follow.
	ErrMissingVertices = errors.New("graphio: fewer vertex lines than the header declares")

	// ErrMissingEdges is returned when fewer than m edge lines follow.
	ErrMissingEdges = errors.New("graphio: fewer edge lines than the header declares")

	// ErrBadEdge is returned for an edge line that matches neither
	// "u -- v" nor "u -> v".
	ErrBadEdge = errors.New("graphio: edge line must be 'u -- v' or 'u -> v'")
)

// edgeRe accepts "u -- v" and "u -> v" with optional surrounding space.
var edgeRe = regexp.MustCompile(`^\s*([_a-zA-Z0-9]+)\s*(->|--)\s*([_a-zA-Z0-9]+)\s*$`)

// Instance is one parsed query: the graph plus the requested endpoints.
type Instance struct {
	Graph  *core.Graph
	Source string
	Target string

	// DeclaredRed is the header's r field. It may disagree with the
	// number of '*'-marked vertices; callers who care can compare it
	// against Graph.RedIndices.
	DeclaredRed int
}

// Parse reads one instance from r. Blank lines are ignored; extra
// trailing lines beyond the declared edge count are ignored too, as
// the original data files occasionally carry them.
func Parse(r io.Reader) (*Instance, error) {
	lines, err := nonBlankLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) < 2 {
		return nil, ErrTooShort
	}

	// 1) Header: n m r.
	n, m, reds, err := parseHeader(lines[0])
	if err != nil {
		return nil, err
	}

	// 2) Endpoints.
	st := strings.Fields(lines[1])
	if len(st) < 2 {
		return nil, ErrBadEndpoints
	}

	// 3) Vertex names; "name*" and "name *" both mark red.
	if len(lines) < 2+n {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrMissingVertices, n, len(lines)-2)
	}
	g := core.NewGraph()
	for _, vl := range lines[2 : 2+n] {
		id, red := vl, false
		if strings.HasSuffix(id, "*") {
			id = strings.TrimSpace(strings.TrimSuffix(id, "*"))
			red = true
		}
		if _, err = g.AddVertex(id, red); err != nil {
			return nil, err
		}
	}

	// 4) Edge lines.
	edgeLines := lines[2+n:]
	if len(edgeLines) < m {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrMissingEdges, m, len(edgeLines))
	}
	for _, el := range edgeLines[:m] {
		mo := edgeRe.FindStringSubmatch(el)
		if mo == nil {
			return nil, fmt.Errorf("%w: %q", ErrBadEdge, el)
		}
		if err = g.AddEdge(mo[1], mo[3], mo[2] == "->"); err != nil {
			return nil, err
		}
	}

	return &Instance{Graph: g, Source: st[0], Target: st[1], DeclaredRed: reds}, nil
}

// parseHeader splits and converts the "n m r" line.
func parseHeader(line string) (n, m, reds int, err error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return 0, 0, 0, ErrBadHeader
	}
	if n, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrBadHeader, line)
	}
	if m, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrBadHeader, line)
	}
	if reds, err = strconv.Atoi(fields[2]); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrBadHeader, line)
	}
	if n < 0 || m < 0 || reds < 0 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrBadHeader, line)
	}

	return n, m, reds, nil
}

// nonBlankLines reads all lines, trims them, and drops the blank ones.
func nonBlankLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var lines []string
	for sc.Scan() {
		if ln := strings.TrimSpace(sc.Text()); ln != "" {
			lines = append(lines, ln)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read: %w", err)
	}

	return lines, nil
}
