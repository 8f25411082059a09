package router

import (
	"context"
	"strings"
)

// Classify scores every category and returns the winner, or IntentGeneralChat when
// nothing reaches GeneralChatThreshold.
func (r *KeywordRouter) Classify(ctx context.Context, message string) RouterOutput {
	lower := strings.ToLower(message)

	scores := make(map[Intent]float64, len(r.categories))
	best := -1
	bestScore := 0.0
	for i, c := range r.categories {
		score := Score(lower, c.Keywords)
		scores[c.Intent] = score
		// Strictly greater keeps the earlier category on ties.
		if best < 0 || score > bestScore {
			best = i
			bestScore = score
		}
	}

	if best < 0 || bestScore < GeneralChatThreshold {
		r.l.Debugf(ctx, "%s: general chat (best score %.3f)", LogPrefixClassify, bestScore)
		return RouterOutput{
			Intent:     IntentGeneralChat,
			Confidence: bestScore,
			Scores:     scores,
		}
	}

	winner := r.categories[best]
	out := RouterOutput{
		Intent:     winner.Intent,
		Confidence: bestScore,
		Scores:     scores,
	}
	if winner.Extract != nil {
		out.Fields = winner.Extract(message)
	}

	r.l.Debugf(ctx, "%s: classified as %s (score %.3f)", LogPrefixClassify, out.Intent, out.Confidence)
	return out
}

// Score computes the weighted keyword score of an already lower-cased message.
// A keyword matches when it appears anywhere in the message.
func Score(lower string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}

	total := 0.0
	matched := 0
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			total += keywordWeight(k)
			matched++
		}
	}
	if matched == 0 {
		return 0
	}

	base := total / float64(len(keywords))
	boost := min(float64(matched)/matchesForFullBoost, maxBoost)
	return max(0, min(base*boost, 1))
}

func keywordWeight(k string) float64 {
	switch n := len(k); {
	case n >= longKeywordLen:
		return longKeywordWeight
	case n >= mediumKeywordLen:
		return mediumKeywordWeight
	default:
		return shortKeywordWeight
	}
}
