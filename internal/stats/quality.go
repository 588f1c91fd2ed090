package stats

type Quality string

const (
	Perfect = Quality("perfect")
	Fast    = Quality("fast")
	Normal  = Quality("normal")
)

const (
	PerfectUnderMs = 200
	FastUnderMs    = 400
)

// Classify buckets a reaction time. Lower bounds are inclusive.
func Classify(reactionMs int64) Quality {
	switch {
	case reactionMs < PerfectUnderMs:
		return Perfect
	case reactionMs < FastUnderMs:
		return Fast
	default:
		return Normal
	}
}
