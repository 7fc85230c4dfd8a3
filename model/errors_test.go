package model

import (
	"os"
	"testing"

	"github.com/pkg/errors"
)

func TestIOErrorMatching(t *testing.T) {
	err := NewIOError("write record", os.ErrPermission)
	if !errors.Is(err, ErrIO) {
		t.Fatalf("%v does not match ErrIO", err)
	}
	if !errors.Is(err, os.ErrPermission) {
		t.Fatalf("%v lost its cause", err)
	}
	if errors.Is(err, ErrOutOfBounds) {
		t.Fatal("IOError matched the wrong kind")
	}
	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Op != "write record" {
		t.Fatalf("errors.As = %+v", ioErr)
	}
}
