package model

import "time"

// OverallTrend 全平台汇总趋势，按日期一行
type OverallTrend struct {
	ID              uint64    `gorm:"primaryKey;column:id" json:"id"`
	Date            time.Time `gorm:"type:date;not null;uniqueIndex;column:date" json:"date"`
	TotalEngagement int64     `gorm:"not null;default:0;column:total_engagement" json:"total_engagement"`
	TotalFollowers  int64     `gorm:"not null;default:0;column:total_followers" json:"total_followers"`
	TotalPosts      int64     `gorm:"not null;default:0;column:total_posts" json:"total_posts"`
}

func (OverallTrend) TableName() string {
	return "overall_trends"
}
