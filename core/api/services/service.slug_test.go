package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorySlug(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Game Top-ups", "game-top-ups"},
		{"Gift Cards & Vouchers", "gift-cards-and-vouchers"},
		{"STREAMING", "streaming"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CategorySlug(tc.input), "input: %q", tc.input)
	}
}

func TestBlogSlug(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"How to Top Up PUBG UC", "how-to-top-up-pubg-uc"},
		{"Is Netflix Worth It?", "is-netflix-worth-it"},
		{"New Arrivals!", "new-arrivals"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, BlogSlug(tc.input), "input: %q", tc.input)
	}
}
