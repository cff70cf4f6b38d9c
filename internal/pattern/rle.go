package pattern

import (
	"bufio"
	"io"
	"strings"

	"lifegrid/internal/core"
)

// maxRun caps a single run count so a corrupt file cannot request an
// unbounded allocation.
const maxRun = 1 << 16

// decodeRLE reads the run-length subset: digits build a run count (default
// 1), 'b' skips dead cells, 'o' emits live cells and '$' moves to the next
// row, dropping any pending count. Every other character, including the '!'
// terminator, is ignored. A pending count is consumed by the next tag and
// never carries across lines.
func decodeRLE(r io.Reader, opts Options) ([]core.Point, error) {
	var cells []core.Point
	x, y := opts.Offset.X, opts.Offset.Y
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || isHeader(line) {
			continue
		}
		run, pending := 0, false
		take := func() int {
			n := 1
			if pending {
				n = run
			}
			run, pending = 0, false
			return n
		}
		for _, c := range line {
			switch {
			case c >= '0' && c <= '9':
				run = run*10 + int(c-'0')
				if run > maxRun {
					run = maxRun
				}
				pending = true
			case c == 'b':
				x += take()
			case c == 'o':
				n := take()
				for i := 0; i < n; i++ {
					cells = append(cells, core.Point{X: x + i, Y: y})
				}
				x += n
			case c == '$':
				take()
				y++
				x = opts.Offset.X
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return cells, nil
}

// isHeader matches the "x = 3, y = 3, rule = B3/S23" line of standard RLE files.
func isHeader(line string) bool {
	return line[0] == 'x' && strings.Contains(line, "=")
}

func init() {
	Register(FormatRLE, ".rle", decodeRLE)
}
