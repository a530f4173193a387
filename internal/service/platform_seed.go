package service

import (
	"Pulseboard/internal/model"
	"time"
)

// snapshotSeed 新平台某一天的初始快照
type snapshotSeed struct {
	followers      int64
	likes          int64
	comments       int64
	shares         int64
	clicks         int64
	impressions    int64
	engagementRate float64
	growthRate     float64
}

// 新平台写入今日与30天前两组固定快照，保证图表立即有趋势线
var (
	seedToday = snapshotSeed{
		followers: 1000,
		likes:     500, comments: 100, shares: 50, clicks: 800, impressions: 5000,
		engagementRate: 3.5, growthRate: 10.0,
	}
	seedPrior = snapshotSeed{
		followers: 900,
		likes:     450, comments: 90, shares: 45, clicks: 750, impressions: 4500,
		engagementRate: 3.2, growthRate: 8.5,
	}
)

func (s snapshotSeed) follower(platformID uint64, date time.Time) *model.PlatformFollower {
	return &model.PlatformFollower{PlatformID: platformID, Date: date, Count: s.followers}
}

func (s snapshotSeed) engagement(platformID uint64, date time.Time) *model.EngagementMetric {
	return &model.EngagementMetric{
		PlatformID:  platformID,
		Date:        date,
		Likes:       s.likes,
		Comments:    s.comments,
		Shares:      s.shares,
		Clicks:      s.clicks,
		Impressions: s.impressions,
	}
}

func (s snapshotSeed) performance(platformID uint64, date time.Time) *model.PlatformPerformance {
	return &model.PlatformPerformance{
		PlatformID:     platformID,
		Date:           date,
		EngagementRate: s.engagementRate,
		GrowthRate:     s.growthRate,
	}
}
