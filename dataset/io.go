package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadExamples parses "x,y,label" lines, one example per line. Blank lines
// are skipped. On a malformed line it returns the examples parsed so far
// along with the error.
func ReadExamples(r io.Reader) ([]Example, error) {
	scanner := bufio.NewScanner(r)
	var examples []Example
	var lineNum int
	for scanner.Scan() {
		lineNum++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		splits := strings.Split(text, ",")
		if len(splits) != 3 {
			return examples, errInvalidLine{
				lineNum:  lineNum,
				splits:   len(splits),
				expected: 3,
			}
		}
		var vals [3]float64
		for i, split := range splits {
			num, err := strconv.ParseFloat(strings.TrimSpace(split), 64)
			if err != nil {
				return examples, fmt.Errorf("parsing line %d: %w", lineNum, err)
			}
			vals[i] = num
		}
		examples = append(examples, Example{X: vals[0], Y: vals[1], Label: vals[2]})
	}
	if err := scanner.Err(); err != nil {
		return examples, fmt.Errorf("reading examples: %w", err)
	}
	return examples, nil
}

type errInvalidLine struct {
	lineNum  int
	splits   int
	expected int
}

func (e errInvalidLine) Error() string {
	return fmt.Sprintf("at line %d, expected %d values, got %d",
		e.lineNum, e.expected, e.splits)
}

// WriteExamples emits examples in the same x,y,label form ReadExamples
// parses.
func WriteExamples(w io.Writer, examples []Example) error {
	for _, ex := range examples {
		_, err := fmt.Fprintf(w, "%s,%s,%s\n",
			strconv.FormatFloat(ex.X, 'f', -1, 64),
			strconv.FormatFloat(ex.Y, 'f', -1, 64),
			strconv.FormatFloat(ex.Label, 'f', -1, 64))
		if err != nil {
			return fmt.Errorf("writing example: %w", err)
		}
	}
	return nil
}
