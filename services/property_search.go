package services

import (
	"regexp"
	"strconv"
	"strings"

	"stayhub/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// NormalizeQuery lowercases and strips accents so "Pondichéry" and
// "pondichery" match the same rows.
func NormalizeQuery(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

// NewMatcher builds a closest-match index over the given keywords.
func NewMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Similarity is 1 − normalized Levenshtein distance between a and b.
func Similarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

var starRe = regexp.MustCompile(`(\d+)\s*star`)

// ExtractStarRating pulls an explicit star rating out of a free-text
// query ("4 star hotel goa"), or -1 when none is present.
func ExtractStarRating(query string) int {
	match := starRe.FindStringSubmatch(query)
	if len(match) < 2 {
		return -1
	}

	rating, err := strconv.Atoi(match[1])
	if err != nil {
		return -1
	}
	return rating
}

// UniqueCities collects the normalized distinct city names of the
// properties, for the closest-match index.
func UniqueCities(properties []models.Property) []string {
	seen := make(map[string]bool)
	for _, p := range properties {
		if p.City != "" {
			seen[NormalizeQuery(p.City)] = true
		}
	}

	cities := make([]string, 0, len(seen))
	for city := range seen {
		cities = append(cities, city)
	}
	return cities
}

// ScoreProperty ranks a property against a normalized free-text query.
// Star rating mentions, city matches and name similarity each
// contribute; higher is better.
func ScoreProperty(query string, p models.Property, cities *closestmatch.ClosestMatch) int {
	score := 0

	if rating := ExtractStarRating(query); rating != -1 && p.StarRating == rating {
		score += 15
	}

	if p.City != "" && cities != nil {
		city := NormalizeQuery(p.City)
		if closest := cities.Closest(query); closest == city && strings.Contains(query, closest) {
			score += 20
		} else if strings.Contains(query, city) {
			score += 20
		}
	}

	name := NormalizeQuery(p.Name)
	if strings.Contains(query, name) || strings.Contains(name, query) {
		score += 25
	} else if Similarity(query, name) > 0.6 {
		score += 10
	}

	return score
}
