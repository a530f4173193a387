package repository

import (
	"Pulseboard/internal/model"
	"Pulseboard/internal/pkg/database"
	"context"
	"time"
)

// SnapshotRepo 平台快照表（粉丝、互动、表现）的写入与汇总
type SnapshotRepo interface {
	WithTx(tx *database.Gateway) SnapshotRepo
	CreateFollowers(ctx context.Context, rows []*model.PlatformFollower) error
	CreateEngagement(ctx context.Context, rows []*model.EngagementMetric) error
	CreatePerformance(ctx context.Context, rows []*model.PlatformPerformance) error
	SumPlatformFollowers(ctx context.Context, platformID uint64, date time.Time) (int64, error)
	SumFollowers(ctx context.Context, date time.Time) (int64, error)
}

type snapshotRepoImpl struct {
	gw *database.Gateway
}

func NewSnapshotRepo(gw *database.Gateway) SnapshotRepo {
	return &snapshotRepoImpl{gw: gw}
}

func (s *snapshotRepoImpl) WithTx(tx *database.Gateway) SnapshotRepo {
	return &snapshotRepoImpl{gw: tx}
}

func (s *snapshotRepoImpl) CreateFollowers(ctx context.Context, rows []*model.PlatformFollower) error {
	return s.gw.Create(ctx, rows)
}

func (s *snapshotRepoImpl) CreateEngagement(ctx context.Context, rows []*model.EngagementMetric) error {
	return s.gw.Create(ctx, rows)
}

func (s *snapshotRepoImpl) CreatePerformance(ctx context.Context, rows []*model.PlatformPerformance) error {
	return s.gw.Create(ctx, rows)
}

type sumRow struct {
	Total int64
}

// SumPlatformFollowers 某平台某日的粉丝数合计，无记录时为 0
func (s *snapshotRepoImpl) SumPlatformFollowers(ctx context.Context, platformID uint64, date time.Time) (int64, error) {
	rows, err := database.Query[sumRow](ctx, s.gw, `
		SELECT COALESCE(SUM(count), 0) AS total
		FROM platform_followers
		WHERE platform_id = ? AND date = ?`, platformID, date)
	if err != nil || len(rows) == 0 {
		return 0, err
	}
	return rows[0].Total, nil
}

// SumFollowers 全部平台某日的粉丝数合计
func (s *snapshotRepoImpl) SumFollowers(ctx context.Context, date time.Time) (int64, error) {
	rows, err := database.Query[sumRow](ctx, s.gw, `
		SELECT COALESCE(SUM(count), 0) AS total
		FROM platform_followers
		WHERE date = ?`, date)
	if err != nil || len(rows) == 0 {
		return 0, err
	}
	return rows[0].Total, nil
}
