package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MrSnakeDoc/linkshelf/internal/logger"
	"github.com/MrSnakeDoc/linkshelf/internal/metrics"
)

type fakeCounter struct {
	calls  atomic.Int32
	counts map[string]int
	err    error
}

func (f *fakeCounter) CountPreferences(context.Context) (map[string]int, error) {
	f.calls.Add(1)
	return f.counts, f.err
}

func TestPreferenceAuditorAudit(t *testing.T) {
	counter := &fakeCounter{counts: map[string]int{"dark": 3, "light": 1}}
	pa := NewPreferenceAuditor(counter, metrics.New(), logger.Nop(), time.Hour)

	if err := pa.Audit(context.Background()); err != nil {
		t.Fatalf("Audit() error: %v", err)
	}
	if counter.calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", counter.calls.Load())
	}
}

func TestPreferenceAuditorAuditError(t *testing.T) {
	counter := &fakeCounter{err: errors.New("redis down")}
	pa := NewPreferenceAuditor(counter, nil, logger.Nop(), time.Hour)

	if err := pa.Audit(context.Background()); err == nil {
		t.Fatal("Audit() should surface counter errors")
	}
}

func TestPreferenceAuditorDefaultInterval(t *testing.T) {
	pa := NewPreferenceAuditor(&fakeCounter{}, nil, logger.Nop(), 0)
	if pa.interval != DefaultAuditInterval {
		t.Errorf("interval = %v, want %v", pa.interval, DefaultAuditInterval)
	}
}

func TestPreferenceAuditorStart(t *testing.T) {
	counter := &fakeCounter{counts: map[string]int{}}
	pa := NewPreferenceAuditor(counter, nil, logger.Nop(), 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pa.Start(ctx)
	defer pa.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for counter.calls.Load() < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("auditor ran %d times, want at least 3", counter.calls.Load())
		}
		time.Sleep(5 * time.Millisecond)
	}
}
