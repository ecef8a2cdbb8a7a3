package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"studytracker/internal/modules/progress/domain"
)

func TestResolveRankTiers(t *testing.T) {
	want := map[int]string{
		0: "Novice", 1: "Novice",
		2: "Apprentice", 3: "Apprentice",
		4: "Dedicated Student", 5: "Dedicated Student",
		6: "Scholar", 7: "Scholar",
		8: "Master of Knowledge", 9: "Master of Knowledge", 1000: "Master of Knowledge",
	}
	for n, title := range want {
		assert.Equal(t, title, domain.ResolveRank(n), "unlocked=%d", n)
	}
}

func TestResolveRankIsMonotonic(t *testing.T) {
	tierOf := make(map[string]int, len(domain.Tiers))
	for i, tier := range domain.Tiers {
		tierOf[tier.Title] = i
	}
	prev := 0
	for n := 0; n <= 50; n++ {
		idx, ok := tierOf[domain.ResolveRank(n)]
		if assert.True(t, ok, "unlocked=%d maps to no tier", n) {
			assert.GreaterOrEqual(t, idx, prev)
			prev = idx
		}
	}
}

func TestNextRank(t *testing.T) {
	title, needed, ok := domain.NextRank(0)
	assert.True(t, ok)
	assert.Equal(t, "Apprentice", title)
	assert.Equal(t, 2, needed)

	title, needed, ok = domain.NextRank(5)
	assert.True(t, ok)
	assert.Equal(t, "Scholar", title)
	assert.Equal(t, 6, needed)

	_, _, ok = domain.NextRank(8)
	assert.False(t, ok)
}
