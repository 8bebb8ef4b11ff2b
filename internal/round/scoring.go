package round

// Star tiers, highest first. Each tier gates on accuracy and on the score
// relative to the maximum attainable score.
var starTiers = []struct {
	stars int
	pct   int
}{
	{3, 90},
	{2, 70},
	{1, 50},
}

// StarRating computes the 0-3 rating for a finished round. Comparisons are
// done in integer arithmetic so tier boundaries are exact.
func StarRating(correct, total, score, rewardPerCorrect int) int {
	if total <= 0 {
		return 0
	}
	maxScore := total * rewardPerCorrect
	for _, tier := range starTiers {
		if correct*100 >= tier.pct*total && score*100 >= tier.pct*maxScore {
			return tier.stars
		}
	}
	return 0
}

// applyDelta adds delta to score, flooring the result at zero. It returns the
// new score and the change actually applied.
func applyDelta(score, delta int) (int, int) {
	next := score + delta
	if next < 0 {
		next = 0
	}
	return next, next - score
}
