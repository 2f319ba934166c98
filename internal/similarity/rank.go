package similarity

import (
	"sort"

	"github.com/hyperjump/vekta/internal/models"
)

// Label buckets a score into a qualitative band for display.
func Label(score float64) string {
	switch {
	case score > 0.8:
		return "High"
	case score > 0.6:
		return "Medium"
	case score > 0.4:
		return "Low"
	default:
		return "Very Low"
	}
}

// Rank scores every candidate against subject and returns results sorted by
// descending score. The subject is excluded from its own ranking by id. The
// sort is stable: candidates with equal scores keep their input order, so
// recomputation never reshuffles the displayed list.
func Rank(subject *models.TextVector, candidates []*models.TextVector, m Metric) []*models.SimilarityResult {
	if subject == nil {
		return nil
	}
	results := make([]*models.SimilarityResult, 0, len(candidates))
	for _, c := range candidates {
		if c == nil || c.ID == subject.ID {
			continue
		}
		score := Score(subject.Vector, c.Vector, m)
		results = append(results, &models.SimilarityResult{
			Subject:     subject.ID,
			Other:       c.ID,
			SubjectText: subject.Text,
			OtherText:   c.Text,
			Score:       score,
			Label:       Label(score),
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}
