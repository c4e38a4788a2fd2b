package xorsat

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseProblem reads the line format
//
//	N M
//	k a1 a2 ... ak    (one line per variable 1..N)
//
// The first token of each variable line is a count and is ignored; the
// remaining tokens are the 1-based indices of the scripts that reference the
// variable. A blank variable line references no script. Lines after the N-th
// variable line are ignored.
func ParseProblem(r io.Reader) (*Problem, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 0
	var header []string
	for sc.Scan() {
		line++
		header = strings.Fields(sc.Text())
		if len(header) > 0 {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read header")
	}
	if len(header) < 2 {
		return nil, errors.Errorf("line %d: header must hold variable and script counts", line)
	}
	n, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, errors.Wrapf(err, "line %d: variable count", line)
	}
	m, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, errors.Wrapf(err, "line %d: script count", line)
	}
	if n < 0 || m < 0 {
		return nil, errors.Errorf("line %d: negative counts %d %d", line, n, m)
	}

	refs := make([][]int, 0, n)
	for len(refs) < n && sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		var scripts []int
		for i, f := range fields {
			if i == 0 {
				continue
			}
			a, err := strconv.Atoi(f)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: script index", line)
			}
			if a < 1 || a > m {
				return nil, errors.Errorf("line %d: script index %d outside 1..%d", line, a, m)
			}
			scripts = append(scripts, a)
		}
		refs = append(refs, scripts)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "read line %d", line+1)
	}
	if len(refs) < n {
		return nil, errors.Errorf("expected %d variable lines, got %d", n, len(refs))
	}

	return NewProblem(n, m, refs)
}
