package stats

import (
	"fmt"
	"math"
)

// Counters are the tallies the session state machine maintains itself.
type Counters struct {
	CurrentStreak int
	LongestStreak int
	TotalHits     int
	MissedShapes  int
	MissedClicks  int
}

type SessionStats struct {
	CurrentStreak    int    `json:"currentStreak"`
	LongestStreak    int    `json:"longestStreak"`
	TotalHits        int    `json:"totalHits"`
	MissedShapes     int    `json:"missedShapes"`
	MissedClicks     int    `json:"missedClicks"`
	AvgReactionMs    int64  `json:"avgReactionMs"`
	BestReactionMs   *int64 `json:"bestReactionMs"`
	AccuracyPct      int    `json:"accuracyPct"`
	PerfectHits      int    `json:"perfectHits"`
	FastHits         int    `json:"fastHits"`
	NormalHits       int    `json:"normalHits"`
	TimeRemainingSec int    `json:"timeRemainingSec"`
	Clock            string `json:"clock"`
}

// Compute derives the full statistics from the reaction samples and counters.
// Nothing is cached between calls.
func Compute(samples []int64, c Counters, timeRemainingSec int) SessionStats {
	s := SessionStats{
		CurrentStreak:    c.CurrentStreak,
		LongestStreak:    c.LongestStreak,
		TotalHits:        c.TotalHits,
		MissedShapes:     c.MissedShapes,
		MissedClicks:     c.MissedClicks,
		AvgReactionMs:    Average(samples),
		BestReactionMs:   Best(samples),
		AccuracyPct:      Accuracy(c.TotalHits, c.MissedClicks, c.MissedShapes),
		TimeRemainingSec: timeRemainingSec,
		Clock:            FormatClock(timeRemainingSec),
	}
	for _, ms := range samples {
		switch Classify(ms) {
		case Perfect:
			s.PerfectHits++
		case Fast:
			s.FastHits++
		default:
			s.NormalHits++
		}
	}
	return s
}

// Average is the rounded mean of samples, 0 when empty.
func Average(samples []int64) int64 {
	if len(samples) == 0 {
		return 0
	}
	var sum int64
	for _, ms := range samples {
		sum += ms
	}
	return int64(math.Round(float64(sum) / float64(len(samples))))
}

// Best is the fastest sample, nil when empty.
func Best(samples []int64) *int64 {
	if len(samples) == 0 {
		return nil
	}
	best := samples[0]
	for _, ms := range samples[1:] {
		if ms < best {
			best = ms
		}
	}
	return &best
}

// Accuracy is the rounded hit percentage, 100 when nothing has been attempted.
func Accuracy(hits, missedClicks, missedShapes int) int {
	total := hits + missedClicks + missedShapes
	if total == 0 {
		return 100
	}
	return int(math.Round(100 * float64(hits) / float64(total)))
}

// FormatClock renders seconds as mm:ss.
func FormatClock(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%02d:%02d", sec/60, sec%60)
}
