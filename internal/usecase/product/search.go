package product

import (
	"sort"
	"strconv"
	"strings"

	"github.com/wcoetsee/pricescout/internal/domain"
)

// Tokenize splits a free-text query on whitespace, discarding empty tokens.
func Tokenize(query string) []string {
	return strings.Fields(query)
}

// Rank filters the catalog to products where at least one token appears,
// case-insensitively, in any searched field, and orders the survivors by
// descending match count. Ties keep the catalog order.
func Rank(products []*domain.Product, tokens []string) []*domain.Product {
	type scored struct {
		product *domain.Product
		score   int
	}

	ranked := make([]scored, 0, len(products))
	for _, p := range products {
		if score := matchScore(p, tokens); score > 0 {
			ranked = append(ranked, scored{product: p, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	result := make([]*domain.Product, len(ranked))
	for i, s := range ranked {
		result[i] = s.product
	}
	return result
}

// matchScore counts the (token, field) pairs that match across all five
// searched fields: name, description, unit name, quantity and variant.
func matchScore(p *domain.Product, tokens []string) int {
	unitName := ""
	if p.UnitOfMeasure != nil {
		unitName = p.UnitOfMeasure.Name
	}

	fields := []string{
		p.Name,
		p.Description,
		unitName,
		strconv.FormatFloat(p.Quantity, 'f', -1, 64),
		p.Variant,
	}

	score := 0
	for _, token := range tokens {
		lowered := strings.ToLower(token)
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field), lowered) {
				score++
			}
		}
	}
	return score
}
