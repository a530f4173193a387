package service

import (
	"Pulseboard/internal/api/dto"
)

// BuildSeries 把扁平的互动数据按日期分组，每个平台一列，日期保持输入顺序
func BuildSeries(rows []*dto.EngagementDTO) *dto.SeriesDTO {
	series := &dto.SeriesDTO{
		Platforms: make([]string, 0),
		Points:    make([]*dto.SeriesPointDTO, 0),
	}
	byDate := make(map[string]*dto.SeriesPointDTO)
	seen := make(map[string]struct{})

	for _, row := range rows {
		point, ok := byDate[row.Date]
		if !ok {
			point = &dto.SeriesPointDTO{Date: row.Date, Values: make(map[string]int64)}
			byDate[row.Date] = point
			series.Points = append(series.Points, point)
		}
		point.Values[row.PlatformName] = row.TotalEngagement

		if _, ok = seen[row.PlatformName]; !ok {
			seen[row.PlatformName] = struct{}{}
			series.Platforms = append(series.Platforms, row.PlatformName)
		}
	}
	return series
}

// LatestPerformance 每个平台日期最新的一条表现数据
func LatestPerformance(rows []*dto.PerformanceDTO) map[uint64]*dto.PerformanceDTO {
	latest := make(map[uint64]*dto.PerformanceDTO)
	for _, row := range rows {
		cur, ok := latest[row.PlatformID]
		// 日期为 YYYY-MM-DD，字符串比较即时间先后
		if !ok || row.Date > cur.Date {
			latest[row.PlatformID] = row
		}
	}
	return latest
}

// BuildComparison 合并平台粉丝统计与最新互动率，缺少表现数据时互动率为 0
func BuildComparison(platforms []*dto.PlatformStatDTO, performance []*dto.PerformanceDTO) []*dto.PlatformComparisonDTO {
	latest := LatestPerformance(performance)
	result := make([]*dto.PlatformComparisonDTO, 0, len(platforms))
	for _, p := range platforms {
		item := &dto.PlatformComparisonDTO{
			Name:      p.Name,
			Color:     p.Color,
			Followers: p.Followers,
			Growth:    p.Growth,
		}
		if perf, ok := latest[p.ID]; ok {
			item.Engagement = perf.EngagementRate
		}
		result = append(result, item)
	}
	return result
}
