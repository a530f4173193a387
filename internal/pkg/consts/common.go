package consts

const (
	// KpiTotalFollowers 由平台增删增量维护的汇总指标
	KpiTotalFollowers = "Total Followers"
)

const (
	DateLayout        = "2006-01-02"
	DefaultWindowDays = 30
	// SnapshotLookbackDays 新平台的历史快照与 KPI previous_value 都对齐到30天前
	SnapshotLookbackDays = 30
)
