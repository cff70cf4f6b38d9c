package pattern

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"lifegrid/internal/core"
)

// decodeCoordinates reads one "a b" pair per line. Comment lines start with
// '#'. Any line that is not exactly two integers is skipped.
func decodeCoordinates(r io.Reader, opts Options) ([]core.Point, error) {
	var cells []core.Point
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		a, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		b, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}
		if opts.Order == OrderYX {
			a, b = b, a
		}
		cells = append(cells, core.Point{X: a, Y: b})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return cells, nil
}

func init() {
	Register(FormatCoordinates, ".txt", decodeCoordinates)
}
