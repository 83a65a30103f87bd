package genpool

import (
	"sync/atomic"
	"testing"
)

func TestRunVisitsEveryIndexExactlyOnce(t *testing.T) {
	const n = 200
	var seen [n]int32

	stats := Run(n, Options{Workers: 4}, func(idx int, stats *Stats) {
		atomic.AddInt32(&seen[idx], 1)
		stats.RecordSuccess()
	})

	for i, c := range seen {
		if c != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, c)
		}
	}
	attempted, succeeded, _ := stats.Snapshot()
	if attempted != n || succeeded != n {
		t.Errorf("attempted=%d succeeded=%d, want both %d", attempted, succeeded, n)
	}
}

func TestRunRecordsInconsistentJobs(t *testing.T) {
	stats := Run(10, Options{Workers: 2}, func(idx int, stats *Stats) {
		if idx%2 == 0 {
			stats.RecordInconsistent()
			return
		}
		stats.RecordSuccess()
	})

	attempted, succeeded, inconsistent := stats.Snapshot()
	if attempted != 10 || succeeded != 5 || inconsistent != 5 {
		t.Errorf("got attempted=%d succeeded=%d inconsistent=%d, want 10/5/5", attempted, succeeded, inconsistent)
	}
}
