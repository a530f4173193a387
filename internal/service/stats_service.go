package service

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/model"
	"Pulseboard/internal/pkg/consts"
	"Pulseboard/internal/pkg/redis"
	"Pulseboard/internal/pkg/util"
	"Pulseboard/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// StatsParams 原始查询参数，均可为空
type StatsParams struct {
	Platform  string
	StartDate string
	EndDate   string
}

type StatsService interface {
	ResolveQuery(params StatsParams) (*dto.StatsQuery, error)
	GetAudienceReach(ctx context.Context, params StatsParams) ([]*dto.AudienceReachDTO, error)
	GetEngagement(ctx context.Context, params StatsParams) ([]*dto.EngagementDTO, error)
	GetEngagementSeries(ctx context.Context, params StatsParams) (*dto.SeriesDTO, error)
	GetPerformance(ctx context.Context, params StatsParams) ([]*dto.PerformanceDTO, error)
	GetTrends(ctx context.Context, params StatsParams) ([]*dto.TrendDTO, error)
	GetPlatformStats(ctx context.Context, platform string) ([]*dto.PlatformStatDTO, error)
	GetComparison(ctx context.Context) ([]*dto.PlatformComparisonDTO, error)
}

type statsServiceImpl struct {
	statsRepo  repository.StatsRepo
	statsCache *redis.StatsCache
	windowDays int
	now        func() time.Time
}

func NewStatsService(statsRepo repository.StatsRepo, statsCache *redis.StatsCache, windowDays int) StatsService {
	if windowDays <= 0 {
		windowDays = consts.DefaultWindowDays
	}
	return &statsServiceImpl{
		statsRepo:  statsRepo,
		statsCache: statsCache,
		windowDays: windowDays,
		now:        time.Now,
	}
}

// ResolveQuery 解析参数并补全默认窗口 [今日-30天, 今日]
func (s *statsServiceImpl) ResolveQuery(params StatsParams) (*dto.StatsQuery, error) {
	platformID, err := util.ParseOptionalUint64(params.Platform)
	if err != nil {
		return nil, ErrParamInvalid
	}

	today := util.Midnight(s.now())
	start, ok, err := util.ParseDate(params.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if !ok {
		start = util.DaysBefore(today, s.windowDays)
	}
	end, ok, err := util.ParseDate(params.EndDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if !ok {
		end = today
	}
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	return &dto.StatsQuery{PlatformID: platformID, StartDate: start, EndDate: end}, nil
}

func cacheParams(q *dto.StatsQuery) []string {
	platform := ""
	if q.PlatformID != nil {
		platform = strconv.FormatUint(*q.PlatformID, 10)
	}
	return []string{platform, util.FormatDate(q.StartDate), util.FormatDate(q.EndDate)}
}

func toFilter(q *dto.StatsQuery) repository.StatsFilter {
	return repository.StatsFilter{PlatformID: q.PlatformID, StartDate: q.StartDate, EndDate: q.EndDate}
}

func (s *statsServiceImpl) GetAudienceReach(ctx context.Context, params StatsParams) ([]*dto.AudienceReachDTO, error) {
	q, err := s.ResolveQuery(params)
	if err != nil {
		return nil, err
	}
	return redis.Load(ctx, s.statsCache, "audience", cacheParams(q), func() ([]*dto.AudienceReachDTO, error) {
		rows, err := s.statsRepo.ListAudienceReach(ctx, toFilter(q))
		if err != nil {
			log.ErrorContext(ctx, "list audience reach failed", "err", err)
			return nil, ErrFetchAudience
		}
		result := make([]*dto.AudienceReachDTO, 0, len(rows))
		for _, r := range rows {
			result = append(result, &dto.AudienceReachDTO{
				PlatformID:    r.PlatformID,
				PlatformName:  r.PlatformName,
				PlatformColor: r.PlatformColor,
				Date:          util.FormatDate(r.Date),
				Reach:         r.Reach,
			})
		}
		return result, nil
	})
}

func (s *statsServiceImpl) GetEngagement(ctx context.Context, params StatsParams) ([]*dto.EngagementDTO, error) {
	q, err := s.ResolveQuery(params)
	if err != nil {
		return nil, err
	}
	return redis.Load(ctx, s.statsCache, "engagement", cacheParams(q), func() ([]*dto.EngagementDTO, error) {
		rows, err := s.statsRepo.ListEngagement(ctx, toFilter(q))
		if err != nil {
			log.ErrorContext(ctx, "list engagement failed", "err", err)
			return nil, ErrFetchEngagement
		}
		result := make([]*dto.EngagementDTO, 0, len(rows))
		for _, r := range rows {
			result = append(result, &dto.EngagementDTO{
				PlatformID:      r.PlatformID,
				PlatformName:    r.PlatformName,
				PlatformColor:   r.PlatformColor,
				Date:            util.FormatDate(r.Date),
				Likes:           r.Likes,
				Comments:        r.Comments,
				Shares:          r.Shares,
				Clicks:          r.Clicks,
				Impressions:     r.Impressions,
				TotalEngagement: r.TotalEngagement,
			})
		}
		return result, nil
	})
}

func (s *statsServiceImpl) GetEngagementSeries(ctx context.Context, params StatsParams) (*dto.SeriesDTO, error) {
	rows, err := s.GetEngagement(ctx, params)
	if err != nil {
		return nil, err
	}
	return BuildSeries(rows), nil
}

func (s *statsServiceImpl) GetPerformance(ctx context.Context, params StatsParams) ([]*dto.PerformanceDTO, error) {
	q, err := s.ResolveQuery(params)
	if err != nil {
		return nil, err
	}
	return redis.Load(ctx, s.statsCache, "performance", cacheParams(q), func() ([]*dto.PerformanceDTO, error) {
		rows, err := s.statsRepo.ListPerformance(ctx, toFilter(q))
		if err != nil {
			log.ErrorContext(ctx, "list performance failed", "err", err)
			return nil, ErrFetchPerformance
		}
		result := make([]*dto.PerformanceDTO, 0, len(rows))
		for _, r := range rows {
			result = append(result, &dto.PerformanceDTO{
				PlatformID:     r.PlatformID,
				PlatformName:   r.PlatformName,
				PlatformColor:  r.PlatformColor,
				Date:           util.FormatDate(r.Date),
				EngagementRate: r.EngagementRate,
				GrowthRate:     r.GrowthRate,
			})
		}
		return result, nil
	})
}

// GetTrends 趋势表不区分平台，忽略 platform 参数
func (s *statsServiceImpl) GetTrends(ctx context.Context, params StatsParams) ([]*dto.TrendDTO, error) {
	params.Platform = ""
	q, err := s.ResolveQuery(params)
	if err != nil {
		return nil, err
	}
	return redis.Load(ctx, s.statsCache, "trends", cacheParams(q), func() ([]*dto.TrendDTO, error) {
		rows, err := s.statsRepo.ListTrends(ctx, q.StartDate, q.EndDate)
		if err != nil {
			log.ErrorContext(ctx, "list trends failed", "err", err)
			return nil, ErrFetchTrends
		}
		result := make([]*dto.TrendDTO, 0, len(rows))
		for _, r := range rows {
			result = append(result, &dto.TrendDTO{
				Date:            util.FormatDate(r.Date),
				TotalEngagement: r.TotalEngagement,
				TotalFollowers:  r.TotalFollowers,
				TotalPosts:      r.TotalPosts,
			})
		}
		return result, nil
	})
}

func (s *statsServiceImpl) GetPlatformStats(ctx context.Context, platform string) ([]*dto.PlatformStatDTO, error) {
	platformID, err := util.ParseOptionalUint64(platform)
	if err != nil {
		return nil, ErrParamInvalid
	}
	return redis.Load(ctx, s.statsCache, "platform", []string{platform}, func() ([]*dto.PlatformStatDTO, error) {
		rows, err := s.statsRepo.ListPlatformStats(ctx, platformID)
		if err != nil {
			log.ErrorContext(ctx, "list platform stats failed", "err", err)
			return nil, ErrFetchPlatformStats
		}
		result := make([]*dto.PlatformStatDTO, 0, len(rows))
		for _, r := range rows {
			result = append(result, &dto.PlatformStatDTO{
				ID:                r.ID,
				Name:              r.Name,
				Icon:              r.Icon,
				Color:             r.Color,
				Followers:         r.Followers,
				PreviousFollowers: r.PreviousFollowers,
				Growth:            roundedGrowth(r.Followers, r.PreviousFollowers),
			})
		}
		return result, nil
	})
}

// GetComparison 平台对比：粉丝统计 + 默认窗口内最新的互动率
func (s *statsServiceImpl) GetComparison(ctx context.Context) ([]*dto.PlatformComparisonDTO, error) {
	platforms, err := s.GetPlatformStats(ctx, "")
	if err != nil {
		return nil, err
	}
	performance, err := s.GetPerformance(ctx, StatsParams{})
	if err != nil {
		return nil, err
	}
	return BuildComparison(platforms, performance), nil
}

// roundedGrowth 粉丝增长率保留两位小数
func roundedGrowth(current, previous int64) float64 {
	growth := model.GrowthPercentage(float64(current), float64(previous))
	return decimal.NewFromFloat(growth).Round(2).InexactFloat64()
}
