package model

import "time"

type PlatformPerformance struct {
	ID             uint64    `gorm:"primaryKey;column:id" json:"id"`
	PlatformID     uint64    `gorm:"not null;index:idx_performance_platform_date;column:platform_id" json:"platform_id"`
	Date           time.Time `gorm:"type:date;not null;index:idx_performance_platform_date;column:date" json:"date"`
	EngagementRate float64   `gorm:"not null;default:0;column:engagement_rate" json:"engagement_rate"`
	GrowthRate     float64   `gorm:"not null;default:0;column:growth_rate" json:"growth_rate"`
	Platform       *Platform `gorm:"foreignKey:PlatformID;constraint:OnDelete:CASCADE" json:"-"`
}

func (PlatformPerformance) TableName() string {
	return "platform_performance"
}
