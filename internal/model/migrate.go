package model

import "gorm.io/gorm"

// AutoMigrate 创建看板所需的全部表，platforms 必须最先建立以满足外键
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Platform{},
		&PlatformFollower{},
		&EngagementMetric{},
		&PlatformPerformance{},
		&AudienceReach{},
		&DashboardKpi{},
		&OverallTrend{},
	)
}
