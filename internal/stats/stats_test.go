package stats

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		ms   int64
		want Quality
	}{
		{0, Perfect},
		{150, Perfect},
		{199, Perfect},
		{200, Fast},
		{399, Fast},
		{400, Normal},
		{2999, Normal},
		{100000, Normal},
	}
	for _, tt := range tests {
		if got := Classify(tt.ms); got != tt.want {
			t.Errorf("Classify(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestClassify_PartitionsRange(t *testing.T) {
	prev := Classify(0)
	changes := 0
	for ms := int64(1); ms < 1000; ms++ {
		q := Classify(ms)
		if q != prev {
			changes++
			if ms != PerfectUnderMs && ms != FastUnderMs {
				t.Errorf("class changed at %dms", ms)
			}
		}
		prev = q
	}
	if changes != 2 {
		t.Errorf("class changes = %d, want 2", changes)
	}
}

func TestAverage(t *testing.T) {
	if got := Average(nil); got != 0 {
		t.Errorf("Average(nil) = %d, want 0", got)
	}
	if got := Average([]int64{100, 201}); got != 151 {
		t.Errorf("Average = %d, want 151 (rounded from 150.5)", got)
	}
	if got := Average([]int64{100, 200, 300}); got != 200 {
		t.Errorf("Average = %d, want 200", got)
	}
}

func TestBest(t *testing.T) {
	if Best(nil) != nil {
		t.Error("Best(nil) should be nil")
	}
	b := Best([]int64{420, 180, 300})
	if b == nil || *b != 180 {
		t.Errorf("Best = %v, want 180", b)
	}
}

func TestAccuracy(t *testing.T) {
	tests := []struct {
		hits, clicks, shapes int
		want                 int
	}{
		{0, 0, 0, 100},
		{5, 0, 0, 100},
		{0, 3, 0, 0},
		{1, 1, 1, 33},
		{2, 1, 0, 67},
		{1, 0, 1, 50},
		{199, 1, 0, 100}, // 99.5 rounds up even with a miss
	}
	for _, tt := range tests {
		got := Accuracy(tt.hits, tt.clicks, tt.shapes)
		if got != tt.want {
			t.Errorf("Accuracy(%d, %d, %d) = %d, want %d", tt.hits, tt.clicks, tt.shapes, got, tt.want)
		}
		if got < 0 || got > 100 {
			t.Errorf("Accuracy(%d, %d, %d) = %d out of range", tt.hits, tt.clicks, tt.shapes, got)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := map[int]string{
		300: "05:00",
		299: "04:59",
		61:  "01:01",
		9:   "00:09",
		0:   "00:00",
		-3:  "00:00",
	}
	for sec, want := range tests {
		if got := FormatClock(sec); got != want {
			t.Errorf("FormatClock(%d) = %q, want %q", sec, got, want)
		}
	}
}

func TestCompute(t *testing.T) {
	samples := []int64{150, 250, 450}
	c := Counters{CurrentStreak: 2, LongestStreak: 3, TotalHits: 3, MissedShapes: 1, MissedClicks: 0}

	s := Compute(samples, c, 125)

	if s.AvgReactionMs != 283 {
		t.Errorf("AvgReactionMs = %d, want 283", s.AvgReactionMs)
	}
	if s.BestReactionMs == nil || *s.BestReactionMs != 150 {
		t.Errorf("BestReactionMs = %v, want 150", s.BestReactionMs)
	}
	if s.AccuracyPct != 75 {
		t.Errorf("AccuracyPct = %d, want 75", s.AccuracyPct)
	}
	if s.PerfectHits != 1 || s.FastHits != 1 || s.NormalHits != 1 {
		t.Errorf("quality split = %d/%d/%d, want 1/1/1", s.PerfectHits, s.FastHits, s.NormalHits)
	}
	if s.Clock != "02:05" {
		t.Errorf("Clock = %q, want %q", s.Clock, "02:05")
	}
	if s.CurrentStreak != 2 || s.LongestStreak != 3 {
		t.Errorf("streaks = %d/%d, want 2/3", s.CurrentStreak, s.LongestStreak)
	}
}

func TestCompute_Empty(t *testing.T) {
	s := Compute(nil, Counters{}, 300)
	if s.AvgReactionMs != 0 || s.BestReactionMs != nil || s.AccuracyPct != 100 {
		t.Errorf("empty stats = %+v", s)
	}
}
