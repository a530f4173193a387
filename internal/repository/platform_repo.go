package repository

import (
	"Pulseboard/internal/model"
	"Pulseboard/internal/pkg/database"
	"context"
)

type PlatformRepo interface {
	WithTx(tx *database.Gateway) PlatformRepo
	ListPlatforms(ctx context.Context) ([]*model.Platform, error)
	GetPlatform(ctx context.Context, id uint64) (*model.Platform, error)
	CreatePlatform(ctx context.Context, platform *model.Platform) error
	DeletePlatform(ctx context.Context, id uint64) (int64, error)
}

type platformRepoImpl struct {
	gw *database.Gateway
}

func NewPlatformRepo(gw *database.Gateway) PlatformRepo {
	return &platformRepoImpl{gw: gw}
}

func (s *platformRepoImpl) WithTx(tx *database.Gateway) PlatformRepo {
	return &platformRepoImpl{gw: tx}
}

func (s *platformRepoImpl) ListPlatforms(ctx context.Context) ([]*model.Platform, error) {
	return database.Query[*model.Platform](ctx, s.gw, `
		SELECT id, name, icon, color
		FROM platforms
		ORDER BY name`)
}

// GetPlatform 不存在时返回 nil, nil
func (s *platformRepoImpl) GetPlatform(ctx context.Context, id uint64) (*model.Platform, error) {
	rows, err := database.Query[*model.Platform](ctx, s.gw, `
		SELECT id, name, icon, color
		FROM platforms
		WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (s *platformRepoImpl) CreatePlatform(ctx context.Context, platform *model.Platform) error {
	return s.gw.Create(ctx, platform)
}

// DeletePlatform 依赖外键 ON DELETE CASCADE 清理快照表
func (s *platformRepoImpl) DeletePlatform(ctx context.Context, id uint64) (int64, error) {
	return s.gw.Exec(ctx, `DELETE FROM platforms WHERE id = ?`, id)
}
