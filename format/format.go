// Package format reads and writes the plain-text grid format: a "height width"
// header line followed by height rows of width whitespace-separated tokens,
// each 0 (dead), 1 (alive) or X (obstacle). Records in a history log are
// separated by a blank line.
package format

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/model"
)

const (
	tokenDead     = "0"
	tokenAlive    = "1"
	tokenObstacle = "X"
)

// Reader decodes successive grid records from a stream. Lines have no length
// limit, so any record the writer produces can be read back.
type Reader struct {
	br   *bufio.Reader
	line int
}

// NewReader returns a Reader consuming r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// nextLine returns the next trimmed line, or io.EOF once the stream is drained.
func (r *Reader) nextLine() (string, error) {
	line, err := r.br.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	r.line++
	return strings.TrimSpace(line), nil
}

// Next reads one record. It returns io.EOF when only blank lines remain.
func (r *Reader) Next() (model.InitialGrid, error) {
	var header string
	for {
		line, err := r.nextLine()
		if errors.Is(err, io.EOF) {
			return model.InitialGrid{}, io.EOF
		}
		if err != nil {
			return model.InitialGrid{}, errors.Wrap(err, "[Reader.Next] failed to read header")
		}
		if line != "" {
			header = line
			break
		}
	}

	height, width, err := parseHeader(header)
	if err != nil {
		return model.InitialGrid{}, errors.Wrapf(err, "[Reader.Next] line %d", r.line)
	}

	cells := make([]model.CellState, 0, height*width)
	for row := range height {
		line, err := r.nextLine()
		if errors.Is(err, io.EOF) {
			return model.InitialGrid{}, errors.Wrapf(model.ErrInvalidDimensions,
				"[Reader.Next] expected %d rows, got %d", height, row)
		}
		if err != nil {
			return model.InitialGrid{}, errors.Wrapf(err, "[Reader.Next] failed to read row %d", row)
		}
		tokens := strings.Fields(line)
		if len(tokens) != width {
			return model.InitialGrid{}, errors.Wrapf(model.ErrInvalidDimensions,
				"[Reader.Next] line %d: expected %d tokens, got %d", r.line, width, len(tokens))
		}
		for _, tok := range tokens {
			state, err := parseToken(tok)
			if err != nil {
				return model.InitialGrid{}, errors.Wrapf(err, "[Reader.Next] line %d", r.line)
			}
			cells = append(cells, state)
		}
	}
	return model.InitialGrid{Height: height, Width: width, Cells: cells}, nil
}

func parseHeader(line string) (height, width int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, errors.Wrapf(model.ErrInvalidDimensions, "malformed header %q", line)
	}
	if height, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, errors.Wrapf(model.ErrInvalidDimensions, "bad height %q", fields[0])
	}
	if width, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, errors.Wrapf(model.ErrInvalidDimensions, "bad width %q", fields[1])
	}
	if height <= 0 || width <= 0 {
		return 0, 0, errors.Wrapf(model.ErrInvalidDimensions, "non-positive size %dx%d", height, width)
	}
	return height, width, nil
}

func parseToken(tok string) (model.CellState, error) {
	switch tok {
	case tokenDead:
		return model.Dead, nil
	case tokenAlive:
		return model.Alive, nil
	case tokenObstacle, "x":
		return model.Obstacle, nil
	}
	return model.Dead, errors.Wrapf(model.ErrInvalidDimensions, "unknown cell token %q", tok)
}

// ReadInitialGrid reads exactly one record from r.
func ReadInitialGrid(r io.Reader) (model.InitialGrid, error) {
	initial, err := NewReader(r).Next()
	if errors.Is(err, io.EOF) {
		return model.InitialGrid{}, errors.Wrap(model.ErrInvalidDimensions, "[ReadInitialGrid] empty source")
	}
	return initial, err
}

// ReadAll reads every record of a history log in order.
func ReadAll(r io.Reader) ([]model.InitialGrid, error) {
	var (
		reader  = NewReader(r)
		records []model.InitialGrid
	)
	for {
		initial, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records = append(records, initial)
	}
}

// LoadFile reads the first record of the file at path.
func LoadFile(path string) (model.InitialGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.InitialGrid{}, errors.Wrapf(model.ErrInvalidDimensions, "[LoadFile] failed to open %s: %v", path, err)
	}
	defer f.Close()

	return ReadInitialGrid(f)
}

// WriteRecord writes one record for initial followed by a blank separator line.
func WriteRecord(w io.Writer, initial model.InitialGrid) error {
	if initial.Height <= 0 || initial.Width <= 0 || len(initial.Cells) != initial.Height*initial.Width {
		return errors.Wrapf(model.ErrInvalidDimensions,
			"[WriteRecord] declared %dx%d but got %d cells", initial.Height, initial.Width, len(initial.Cells))
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", initial.Height, initial.Width)
	for row := range initial.Height {
		for col := range initial.Width {
			if col > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(initial.Cells[row*initial.Width+col].String())
		}
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
	return bw.Flush()
}
