package multi

import (
	"context"
	"errors"
	"testing"

	"github.com/GuralTOO/ai-chaperone/internal/model"
)

// recorder is a test output that records writes and can fail on demand.
type recorder struct {
	writes int
	closes int
	err    error
}

func (r *recorder) Write(_ context.Context, _ model.Report) error {
	r.writes++
	return r.err
}

func (r *recorder) Close() error {
	r.closes++
	return r.err
}

func TestWriteFansOut(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	m := New(a, b)

	if err := m.Write(context.Background(), model.Report{}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if a.writes != 1 || b.writes != 1 {
		t.Fatalf("expected both outputs written once, got %d and %d", a.writes, b.writes)
	}
}

func TestWriteFailureDoesNotStopDelivery(t *testing.T) {
	bad := &recorder{err: errors.New("boom")}
	good := &recorder{}
	m := New(bad, good)

	err := m.Write(context.Background(), model.Report{})
	if err == nil {
		t.Fatal("expected joined error")
	}
	if good.writes != 1 {
		t.Fatal("expected delivery to continue past the failing output")
	}
}

func TestCloseClosesAll(t *testing.T) {
	a, b := &recorder{}, &recorder{err: errors.New("close failed")}
	m := New(a, b)

	if err := m.Close(); err == nil {
		t.Fatal("expected close error propagated")
	}
	if a.closes != 1 || b.closes != 1 {
		t.Fatal("expected every output closed")
	}
}
