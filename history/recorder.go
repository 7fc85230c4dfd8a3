// Package history appends grid snapshots to a write-forward sink.
package history

import (
	"io"
	"os"

	"github.com/sheikhrachel/go-gol/format"
	"github.com/sheikhrachel/go-gol/model"
)

// Recorder appends one record per call to its sink. It never reads back or
// truncates what is already there.
type Recorder struct {
	sink  io.Writer
	count int
}

// NewRecorder wraps an already opened sink.
func NewRecorder(sink io.Writer) *Recorder {
	return &Recorder{sink: sink}
}

// OpenFile opens path in append mode, creating it if needed.
func OpenFile(path string) (*Recorder, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, model.NewIOError("open "+path, err)
	}
	return NewRecorder(f), nil
}

// Record writes the grid's current state. The grid is only read.
func (r *Recorder) Record(g *model.Grid) error {
	if err := format.WriteRecord(r.sink, g.InitialGrid()); err != nil {
		return model.NewIOError("write record", err)
	}
	r.count++
	return nil
}

// Count returns the number of records successfully written.
func (r *Recorder) Count() int {
	return r.count
}

// Close closes the sink if it is closable.
func (r *Recorder) Close() error {
	c, ok := r.sink.(io.Closer)
	if !ok {
		return nil
	}
	if err := c.Close(); err != nil {
		return model.NewIOError("close", err)
	}
	return nil
}
