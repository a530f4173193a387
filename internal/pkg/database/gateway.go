package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Gateway 统一的查询入口：执行参数化语句并把失败归类为 ConnectionError / QueryError
type Gateway struct {
	db *gorm.DB
}

func NewGateway(db *gorm.DB) *Gateway {
	return &Gateway{db: db}
}

// DB 返回底层 *gorm.DB，未配置时为 nil
func (g *Gateway) DB() *gorm.DB {
	if g == nil {
		return nil
	}
	return g.db
}

func (g *Gateway) conn(ctx context.Context) (*gorm.DB, error) {
	if g == nil || g.db == nil {
		return nil, &ConnectionError{Err: ErrNotConfigured}
	}
	return g.db.WithContext(ctx), nil
}

// Query 执行查询并返回完整结果集，出错时不返回任何行
func Query[T any](ctx context.Context, g *Gateway, query string, params ...any) ([]T, error) {
	db, err := g.conn(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]T, 0)
	if err = db.Raw(query, params...).Scan(&rows).Error; err != nil {
		return nil, classify(err, "", query, params)
	}
	return rows, nil
}

// Exec 执行写语句，返回受影响行数
func (g *Gateway) Exec(ctx context.Context, query string, params ...any) (int64, error) {
	db, err := g.conn(ctx)
	if err != nil {
		return 0, err
	}
	res := db.Exec(query, params...)
	if res.Error != nil {
		return 0, classify(res.Error, "", query, params)
	}
	return res.RowsAffected, nil
}

// Create 通过 gorm 模型插入，value 可以是单个模型或切片，生成的主键会回填
func (g *Gateway) Create(ctx context.Context, value any) error {
	db, err := g.conn(ctx)
	if err != nil {
		return err
	}
	res := db.Create(value)
	if res.Error != nil {
		stmt := res.Statement
		return classify(res.Error, stmt.Table, stmt.SQL.String(), stmt.Vars)
	}
	return nil
}

// Transaction 在同一事务内执行 fn，fn 返回错误时回滚；fn 的错误原样返回
func (g *Gateway) Transaction(ctx context.Context, fn func(tx *Gateway) error) error {
	db, err := g.conn(ctx)
	if err != nil {
		return err
	}
	var fnErr error
	err = db.Transaction(func(tx *gorm.DB) error {
		fnErr = fn(&Gateway{db: tx})
		return fnErr
	})
	if err == nil {
		return nil
	}
	if fnErr != nil && errors.Is(err, fnErr) {
		return fnErr
	}
	return classify(err, "transaction", "", nil)
}

// Upsert 按 conflictColumns 插入或更新 updateColumns
func (g *Gateway) Upsert(ctx context.Context, value any, conflictColumns []string, updateColumns []string) error {
	db, err := g.conn(ctx)
	if err != nil {
		return err
	}
	columns := make([]clause.Column, 0, len(conflictColumns))
	for _, c := range conflictColumns {
		columns = append(columns, clause.Column{Name: c})
	}
	res := db.Clauses(clause.OnConflict{
		Columns:   columns,
		DoUpdates: clause.AssignmentColumns(updateColumns),
	}).Create(value)
	if res.Error != nil {
		stmt := res.Statement
		return classify(res.Error, stmt.Table, stmt.SQL.String(), stmt.Vars)
	}
	return nil
}
