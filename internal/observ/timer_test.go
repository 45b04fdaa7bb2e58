package observ

import (
	"strings"
	"testing"
	"time"
)

func fakeClock(step time.Duration) func() time.Time {
	cur := time.Unix(0, 0)
	return func() time.Time {
		cur = cur.Add(step)
		return cur
	}
}

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	tm.now = fakeClock(2 * time.Millisecond)

	parse := tm.Begin("parse")
	tm.End(parse, "3 lines")
	sema := tm.Begin("sema")
	tm.End(sema, "")
	tm.End(42, "ignored")

	r := tm.Report()
	if len(r.Phases) != 2 {
		t.Fatalf("phases = %+v", r.Phases)
	}
	if r.Phases[0].DurationMS != 2 || r.Phases[0].Note != "3 lines" || r.TotalMS != 4 {
		t.Fatalf("report = %+v", r)
	}

	sum := tm.Summary()
	if !strings.Contains(sum, "parse") || !strings.Contains(sum, "// 3 lines") || !strings.Contains(sum, "total            4.00 ms") {
		t.Fatalf("summary = %q", sum)
	}

	tm.Reset()
	if len(tm.Phases()) != 0 {
		t.Fatal("reset must drop phases")
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.End(tm.Begin("x"), "")
	if tm.Phases() != nil || len(tm.Report().Phases) != 0 {
		t.Fatal("nil timer must record nothing")
	}
}
