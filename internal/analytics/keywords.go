package analytics

import (
	"strings"

	"github.com/dvergara/Household-Finance-Backend/internal/model"
)

// KeywordBucket groups expenses whose description or category contains any
// of its keywords. Keywords are matched lowercase; a trailing space ("dia ",
// "bp ") keeps short brand names from matching inside longer words.
type KeywordBucket struct {
	Name     string
	Keywords []string
}

// DefaultBuckets are the recurring household cost groups shown on the
// dashboard.
var DefaultBuckets = []KeywordBucket{
	{
		Name:     "Supermercado",
		Keywords: []string{"supermercado", "mercadona", "carrefour", "lidl", "dia ", "alcampo", "eroski", "consum"},
	},
	{
		Name:     "Gasoil",
		Keywords: []string{"gasoil", "gasolina", "combustible", "repsol", "cepsa", "bp ", "galp", "petrol"},
	},
	{
		Name:     "Comunidad",
		Keywords: []string{"comunidad"},
	},
}

// KeywordAverages computes, for each bucket, the average expense per active
// month: total matched spend divided by the number of distinct months with
// at least one match. Buckets with no matches report a zero average.
func KeywordAverages(records []model.Transaction, buckets []KeywordBucket) []model.KeywordAverage {
	out := make([]model.KeywordAverage, 0, len(buckets))
	for _, bucket := range buckets {
		var total float64
		months := make(map[string]bool)
		for _, r := range records {
			if r.Kind != model.KindExpense || !matchesAny(matchText(r), bucket.Keywords) {
				continue
			}
			total += r.AbsAmount
			months[r.MonthKey] = true
		}

		avg := 0.0
		if len(months) > 0 {
			avg = total / float64(len(months))
		}
		out = append(out, model.KeywordAverage{Name: bucket.Name, MonthlyAverage: avg})
	}
	return out
}

// matchText is the searchable projection of a record: description and both
// category fields, so a keyword carried only by the category (an opaque card
// description under "Supermercado") still counts.
func matchText(r model.Transaction) string {
	return r.Description + " " + r.Category + " " + r.Subcategory
}

func matchesAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
