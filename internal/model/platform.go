package model

// Platform 被追踪的社交平台，所有指标表通过 platform_id 关联
type Platform struct {
	ID    uint64 `gorm:"primaryKey;column:id" json:"id"`
	Name  string `gorm:"type:varchar(100);not null;column:name" json:"name"`
	Icon  string `gorm:"type:varchar(100);not null;column:icon" json:"icon"`
	Color string `gorm:"type:varchar(32);not null;column:color" json:"color"`
}

func (Platform) TableName() string {
	return "platforms"
}
