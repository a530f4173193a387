package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrowthPercentage(t *testing.T) {
	cases := []struct {
		name     string
		value    float64
		previous float64
		want     float64
	}{
		{"ten percent", 1100, 1000, 10},
		{"zero previous", 50, 0, 0},
		{"decline", 900, 1000, -10},
		{"flat", 700, 700, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, GrowthPercentage(tc.value, tc.previous), 1e-9)
		})
	}
}

func TestEngagementMetric_TotalEngagement(t *testing.T) {
	m := &EngagementMetric{Likes: 500, Comments: 100, Shares: 50, Clicks: 800, Impressions: 5000}
	assert.Equal(t, int64(650), m.TotalEngagement())
}
