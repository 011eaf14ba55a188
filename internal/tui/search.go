package tui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/shopfront/internal/model"
)

// maxSearchDistance rejects fuzzy matches whose normalized edit distance
// exceeds this fraction of the longer string.
const maxSearchDistance = 0.4

// searchProducts filters and ranks products against query. Substring
// hits on title or category rank first, then fuzzy title matches by
// normalized levenshtein distance. An empty query returns everything in
// server order.
func searchProducts(products []model.Product, query string) []model.Product {
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" {
		return products
	}

	type scored struct {
		p     model.Product
		score float64
	}
	var out []scored
	for _, p := range products {
		title := strings.ToUpper(p.Title)
		category := strings.ToUpper(p.Category)
		switch {
		case strings.Contains(title, q) || strings.Contains(category, q):
			out = append(out, scored{p: p, score: 0})
		default:
			dist := levenshtein.ComputeDistance(title, q)
			maxlen := len(title)
			if len(q) > maxlen {
				maxlen = len(q)
			}
			if maxlen == 0 {
				continue
			}
			norm := float64(dist) / float64(maxlen)
			if norm < maxSearchDistance {
				out = append(out, scored{p: p, score: norm})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].score < out[j].score })
	result := make([]model.Product, len(out))
	for i, s := range out {
		result[i] = s.p
	}
	return result
}
