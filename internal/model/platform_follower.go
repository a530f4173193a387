package model

import "time"

// PlatformFollower 平台粉丝数快照
type PlatformFollower struct {
	ID         uint64    `gorm:"primaryKey;column:id" json:"id"`
	PlatformID uint64    `gorm:"not null;index:idx_follower_platform_date;column:platform_id" json:"platform_id"`
	Date       time.Time `gorm:"type:date;not null;index:idx_follower_platform_date;column:date" json:"date"`
	Count      int64     `gorm:"not null;default:0;column:count" json:"count"`
	Platform   *Platform `gorm:"foreignKey:PlatformID;constraint:OnDelete:CASCADE" json:"-"`
}

func (PlatformFollower) TableName() string {
	return "platform_followers"
}
