package consts

const (
	StatsCacheKey      = "stats:cache:"
	StatsGenerationKey = "stats:generation"
)

const (
	KpiReconcileLock = "kpi:reconcile:lock:"
)
