package model

import "time"

type AudienceReach struct {
	ID         uint64    `gorm:"primaryKey;column:id" json:"id"`
	PlatformID uint64    `gorm:"not null;index:idx_reach_platform_date;column:platform_id" json:"platform_id"`
	Date       time.Time `gorm:"type:date;not null;index:idx_reach_platform_date;column:date" json:"date"`
	Reach      int64     `gorm:"not null;default:0;column:reach" json:"reach"`
	Platform   *Platform `gorm:"foreignKey:PlatformID;constraint:OnDelete:CASCADE" json:"-"`
}

func (AudienceReach) TableName() string {
	return "audience_reach"
}
