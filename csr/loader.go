package csr

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Load reads a plain-text edge list: an optional first line "vcount N",
// followed by one "u v" pair per line (0-indexed). Supplying only one
// direction of an edge is fine; New mirrors it automatically. Blank lines
// and lines starting with '#' are ignored.
func Load(r io.Reader) (*Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	vCount := -1
	var edges [][2]int
	maxSeen := -1

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 2 && strings.EqualFold(fields[0], "vcount") {
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("%w: bad vcount line %q: %v", ErrMalformedGraph, line, err)
			}
			vCount = n
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: expected \"u v\", got %q", ErrMalformedGraph, line)
		}
		u, err1 := strconv.Atoi(fields[0])
		v, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("%w: non-integer endpoint in %q", ErrMalformedGraph, line)
		}
		edges = append(edges, [2]int{u, v})
		if u > maxSeen {
			maxSeen = u
		}
		if v > maxSeen {
			maxSeen = v
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("csr: reading edge list: %w", err)
	}
	if vCount < 0 {
		vCount = maxSeen + 1
	}
	return New(vCount, edges)
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csr: opening %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}
