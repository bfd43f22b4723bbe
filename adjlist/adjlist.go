// SPDX-License-Identifier: MIT

package adjlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/mincut/core"
)

// ErrSyntax is wrapped by every ParseError.
var ErrSyntax = errors.New("adjlist: syntax error")

// ParseError reports a token that is not a decimal integer.
type ParseError struct {
	Line   int // 1-based
	Column int // 1-based field index within the line
	Token  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("adjlist: line %d field %d: bad token %q: %v", e.Line, e.Column, e.Token, e.Err)
}

// Unwrap lets errors.Is match both ErrSyntax and the strconv cause.
func (e *ParseError) Unwrap() []error { return []error{ErrSyntax, e.Err} }

// Parse reads rows from r. Blank lines are skipped.
//
// Complexity: O(size of input).
func Parse(r io.Reader) ([]core.Row, error) {
	var rows []core.Row
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		nums := make([]int, len(fields))
		for i, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, &ParseError{Line: line, Column: i + 1, Token: f, Err: err}
			}
			nums[i] = n
		}
		rows = append(rows, core.Row{Vertex: nums[0], Neighbors: nums[1:]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("adjlist: read: %w", err)
	}

	return rows, nil
}

// ReadFile opens path and parses it.
func ReadFile(path string) ([]core.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Write renders g as one line per vertex, ascending by value, with every
// edge listed once under its From vertex. Parse(Write(g)) rebuilds g.
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	for _, row := range g.Rows() {
		bw.WriteString(strconv.Itoa(row.Vertex))
		for _, nb := range row.Neighbors {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(nb))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
