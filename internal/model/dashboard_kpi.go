package model

import "time"

// DashboardKpi 看板级汇总指标，同一日期下 name 唯一
type DashboardKpi struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"id"`
	Name          string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_kpi_name_date;column:name" json:"name"`
	Value         float64   `gorm:"not null;default:0;column:value" json:"value"`
	PreviousValue float64   `gorm:"not null;default:0;column:previous_value" json:"previous_value"`
	Date          time.Time `gorm:"type:date;not null;uniqueIndex:idx_kpi_name_date;column:date" json:"date"`
}

func (DashboardKpi) TableName() string {
	return "dashboard_kpis"
}

// GrowthPercentage 读取时计算的增长率，previous 为 0 时返回 0
func GrowthPercentage(value, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (value - previous) / previous * 100
}
