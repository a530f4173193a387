package model

import "time"

// EngagementMetric 平台互动数据快照
type EngagementMetric struct {
	ID          uint64    `gorm:"primaryKey;column:id" json:"id"`
	PlatformID  uint64    `gorm:"not null;index:idx_engagement_platform_date;column:platform_id" json:"platform_id"`
	Date        time.Time `gorm:"type:date;not null;index:idx_engagement_platform_date;column:date" json:"date"`
	Likes       int64     `gorm:"not null;default:0;column:likes" json:"likes"`
	Comments    int64     `gorm:"not null;default:0;column:comments" json:"comments"`
	Shares      int64     `gorm:"not null;default:0;column:shares" json:"shares"`
	Clicks      int64     `gorm:"not null;default:0;column:clicks" json:"clicks"`
	Impressions int64     `gorm:"not null;default:0;column:impressions" json:"impressions"`
	Platform    *Platform `gorm:"foreignKey:PlatformID;constraint:OnDelete:CASCADE" json:"-"`
}

func (EngagementMetric) TableName() string {
	return "engagement_metrics"
}

// TotalEngagement 点赞 + 评论 + 分享，不含点击与曝光
func (m *EngagementMetric) TotalEngagement() int64 {
	return m.Likes + m.Comments + m.Shares
}
