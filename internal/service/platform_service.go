package service

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/model"
	"Pulseboard/internal/pkg/consts"
	"Pulseboard/internal/pkg/database"
	"Pulseboard/internal/pkg/redis"
	"Pulseboard/internal/pkg/util"
	"Pulseboard/internal/repository"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"strings"
	"time"

	"github.com/jinzhu/copier"
)

// PlatformService 平台的创建与删除，同时维护 Total Followers KPI
type PlatformService interface {
	ListPlatforms(ctx context.Context) ([]*dto.PlatformDTO, error)
	CreatePlatform(ctx context.Context, req *dto.CreatePlatformDTO) (*dto.PlatformDTO, error)
	DeletePlatform(ctx context.Context, id uint64) (*dto.DeletedPlatformDTO, error)
}

type platformServiceImpl struct {
	gw           *database.Gateway
	platformRepo repository.PlatformRepo
	snapshotRepo repository.SnapshotRepo
	kpiRepo      repository.KpiRepo
	statsCache   *redis.StatsCache
	now          func() time.Time
}

func NewPlatformService(
	gw *database.Gateway,
	platformRepo repository.PlatformRepo,
	snapshotRepo repository.SnapshotRepo,
	kpiRepo repository.KpiRepo,
	statsCache *redis.StatsCache,
) PlatformService {
	return &platformServiceImpl{
		gw:           gw,
		platformRepo: platformRepo,
		snapshotRepo: snapshotRepo,
		kpiRepo:      kpiRepo,
		statsCache:   statsCache,
		now:          time.Now,
	}
}

func (s *platformServiceImpl) ListPlatforms(ctx context.Context) ([]*dto.PlatformDTO, error) {
	platforms, err := s.platformRepo.ListPlatforms(ctx)
	if err != nil {
		log.ErrorContext(ctx, "list platforms failed", "err", err)
		return nil, ErrFetchPlatforms
	}
	result := make([]*dto.PlatformDTO, 0, len(platforms))
	if len(platforms) == 0 {
		return result, nil
	}
	if err = copier.Copy(&result, &platforms); err != nil {
		log.ErrorContext(ctx, "copy platforms failed", "err", err)
		return nil, ErrFetchPlatforms
	}
	return result, nil
}

// CreatePlatform 插入平台、两天的三类快照，并把种子粉丝数累加到今日 KPI，全部在一个事务内
func (s *platformServiceImpl) CreatePlatform(ctx context.Context, req *dto.CreatePlatformDTO) (*dto.PlatformDTO, error) {
	if req == nil {
		return nil, ErrPlatformFieldsRequired
	}
	// 只拒绝空白字段，入库保持原值
	if err := util.ValidateDTO(req); err != nil || isBlank(req.Name, req.Icon, req.Color) {
		return nil, ErrPlatformFieldsRequired
	}

	today := util.Midnight(s.now())
	prior := util.DaysBefore(today, consts.SnapshotLookbackDays)

	platform := &model.Platform{
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
	}

	err := s.gw.Transaction(ctx, func(tx *database.Gateway) error {
		platformRepo := s.platformRepo.WithTx(tx)
		snapshotRepo := s.snapshotRepo.WithTx(tx)
		kpiRepo := s.kpiRepo.WithTx(tx)

		if err := platformRepo.CreatePlatform(ctx, platform); err != nil {
			return err
		}

		followers := []*model.PlatformFollower{
			seedToday.follower(platform.ID, today),
			seedPrior.follower(platform.ID, prior),
		}
		if err := snapshotRepo.CreateFollowers(ctx, followers); err != nil {
			return err
		}

		engagement := []*model.EngagementMetric{
			seedToday.engagement(platform.ID, today),
			seedPrior.engagement(platform.ID, prior),
		}
		if err := snapshotRepo.CreateEngagement(ctx, engagement); err != nil {
			return err
		}

		performance := []*model.PlatformPerformance{
			seedToday.performance(platform.ID, today),
			seedPrior.performance(platform.ID, prior),
		}
		if err := snapshotRepo.CreatePerformance(ctx, performance); err != nil {
			return err
		}

		affected, err := kpiRepo.AdjustKpi(ctx, consts.KpiTotalFollowers, today,
			float64(seedToday.followers), float64(seedPrior.followers))
		if err != nil {
			return err
		}
		if affected == 0 {
			log.WarnContext(ctx, "Total Followers KPI row missing for today, increment skipped",
				"platform_id", platform.ID, "date", util.FormatDate(today))
		}
		return nil
	})
	if err != nil {
		log.ErrorContext(ctx, "create platform failed", "name", req.Name, "err", err)
		return nil, ErrAddPlatform
	}

	s.statsCache.Invalidate(ctx)
	log.InfoContext(ctx, "platform created", "platform_id", platform.ID, "name", platform.Name)

	return &dto.PlatformDTO{
		ID:    platform.ID,
		Name:  platform.Name,
		Icon:  platform.Icon,
		Color: platform.Color,
	}, nil
}

// DeletePlatform 先确认平台存在，再按今日与30天前的粉丝数回退 KPI，最后删除平台（级联删除快照）
func (s *platformServiceImpl) DeletePlatform(ctx context.Context, id uint64) (*dto.DeletedPlatformDTO, error) {
	if id == 0 {
		return nil, ErrPlatformIDRequired
	}

	today := util.Midnight(s.now())
	prior := util.DaysBefore(today, consts.SnapshotLookbackDays)

	var deleted *model.Platform
	err := s.gw.Transaction(ctx, func(tx *database.Gateway) error {
		platformRepo := s.platformRepo.WithTx(tx)
		snapshotRepo := s.snapshotRepo.WithTx(tx)
		kpiRepo := s.kpiRepo.WithTx(tx)

		platform, err := platformRepo.GetPlatform(ctx, id)
		if err != nil {
			return err
		}
		if platform == nil {
			return ErrPlatformNotFound
		}

		current, err := snapshotRepo.SumPlatformFollowers(ctx, id, today)
		if err != nil {
			return err
		}
		previous, err := snapshotRepo.SumPlatformFollowers(ctx, id, prior)
		if err != nil {
			return err
		}

		if _, err = kpiRepo.AdjustKpi(ctx, consts.KpiTotalFollowers, today,
			-float64(current), -float64(previous)); err != nil {
			return err
		}

		affected, err := platformRepo.DeletePlatform(ctx, id)
		if err != nil {
			return err
		}
		// 并发删除时另一事务已删掉该行，回滚 KPI 调整
		if affected == 0 {
			return ErrPlatformNotFound
		}
		deleted = platform
		return nil
	})
	if errors.Is(err, ErrPlatformNotFound) {
		return nil, ErrPlatformNotFound
	}
	if err != nil {
		log.ErrorContext(ctx, "delete platform failed", "platform_id", id, "err", err)
		return nil, ErrDeletePlatform
	}

	s.statsCache.Invalidate(ctx)
	log.InfoContext(ctx, "platform deleted", "platform_id", id, "name", deleted.Name)

	return &dto.DeletedPlatformDTO{
		Success: true,
		Message: fmt.Sprintf("Platform %s deleted successfully", deleted.Name),
	}, nil
}

func isBlank(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return true
		}
	}
	return false
}
