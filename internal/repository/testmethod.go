// Package repository 提供目录数据访问层
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SherGrigory/ScedulerLab/pkg/model"
)

// TestMethodRepository 检测方法目录仓储
type TestMethodRepository struct {
	db DB
}

// NewTestMethodRepository 创建检测方法仓储
func NewTestMethodRepository(db DB) *TestMethodRepository {
	return &TestMethodRepository{db: db}
}

const testColumns = `test_id, test_name, duration_days, required_storage_condition, season_required`

// List 按 test_id 升序返回全部检测方法
func (r *TestMethodRepository) List(ctx context.Context) ([]*model.TestMethod, error) {
	query := fmt.Sprintf(`SELECT %s FROM test_methods ORDER BY test_id`, testColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("查询检测方法目录失败: %w", err)
	}
	defer rows.Close()

	var tests []*model.TestMethod
	for rows.Next() {
		var t model.TestMethod
		if err := rows.Scan(&t.TestID, &t.TestName, &t.DurationDays,
			&t.RequiredStorageCondition, &t.SeasonRequired); err != nil {
			return nil, fmt.Errorf("扫描检测方法记录失败: %w", err)
		}
		tests = append(tests, &t)
	}
	return tests, rows.Err()
}

// GetByName 按名称获取检测方法（不区分大小写）
func (r *TestMethodRepository) GetByName(ctx context.Context, name string) (*model.TestMethod, error) {
	query := fmt.Sprintf(`SELECT %s FROM test_methods WHERE LOWER(test_name) = LOWER($1)`, testColumns)

	var t model.TestMethod
	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&t.TestID, &t.TestName, &t.DurationDays,
		&t.RequiredStorageCondition, &t.SeasonRequired,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("查询检测方法失败: %w", err)
	}
	return &t, nil
}

// Upsert 写入或更新检测方法记录
func (r *TestMethodRepository) Upsert(ctx context.Context, t *model.TestMethod) error {
	query := `
		INSERT INTO test_methods (
			test_id, test_name, duration_days, required_storage_condition, season_required
		) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (test_id) DO UPDATE SET
			test_name = $2, duration_days = $3,
			required_storage_condition = $4, season_required = $5
	`

	_, err := r.db.ExecContext(ctx, query,
		t.TestID, t.TestName, t.DurationDays, t.RequiredStorageCondition, t.SeasonRequired,
	)
	if err != nil {
		return fmt.Errorf("写入检测方法失败: %w", err)
	}
	return nil
}
