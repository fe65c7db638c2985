package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stayhub/models"
)

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "Pondichéry", want: "pondichery"},
		{input: "  GOA  ", want: "goa"},
		{input: "Café Résidence", want: "cafe residence"},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeQuery(tt.input), "input %q", tt.input)
	}
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("goa", "goa"))
	assert.Equal(t, 1.0, Similarity("", ""))
	assert.Equal(t, 0.0, Similarity("abc", "xyz"))

	near := Similarity("seaside resort", "seaside resrt")
	assert.Greater(t, near, 0.9)

	far := Similarity("seaside resort", "mountain lodge")
	assert.Less(t, far, 0.4)
}

func TestExtractStarRating(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{query: "4 star hotel goa", want: 4},
		{query: "5star resort", want: 5},
		{query: "hotel near beach", want: -1},
		{query: "star hotel", want: -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractStarRating(tt.query), "query %q", tt.query)
	}
}

func TestUniqueCities(t *testing.T) {
	properties := []models.Property{
		{Name: "A", City: "Goa"},
		{Name: "B", City: "goa"},
		{Name: "C", City: "Pondichéry"},
		{Name: "D", City: ""},
	}

	cities := UniqueCities(properties)
	assert.Len(t, cities, 2)
	assert.Contains(t, cities, "goa")
	assert.Contains(t, cities, "pondichery")
}

func TestScorePropertyRanking(t *testing.T) {
	properties := []models.Property{
		{Name: "Seaside Resort", City: "Goa", StarRating: 4},
		{Name: "Mountain Lodge", City: "Manali", StarRating: 3},
		{Name: "City Business Hotel", City: "Mumbai", StarRating: 4},
	}

	matcher := NewMatcher(UniqueCities(properties))
	query := NormalizeQuery("4 star seaside resort goa")

	scores := make([]int, len(properties))
	for i, p := range properties {
		scores[i] = ScoreProperty(query, p, matcher)
	}

	assert.Greater(t, scores[0], scores[1], "goa resort should outrank manali lodge")
	assert.Greater(t, scores[0], scores[2], "goa resort should outrank mumbai hotel")
}

func TestScorePropertyNilMatcher(t *testing.T) {
	p := models.Property{Name: "Seaside Resort", City: "Goa", StarRating: 4}
	score := ScoreProperty(NormalizeQuery("seaside resort"), p, nil)
	assert.Equal(t, 25, score)
}
