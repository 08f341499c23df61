// Package repository 提供目录数据访问层
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SherGrigory/ScedulerLab/pkg/model"
)

// LabRepository 实验室目录仓储
type LabRepository struct {
	db DB
}

// NewLabRepository 创建实验室仓储
func NewLabRepository(db DB) *LabRepository {
	return &LabRepository{db: db}
}

const labColumns = `lab_id, name, supported_tests, capacity_per_day,
	turnaround_days, storage_conditions_accepted, seasons_allowed, price_per_test`

// List 按 lab_id 升序返回全部实验室
func (r *LabRepository) List(ctx context.Context) ([]*model.Lab, error) {
	query := fmt.Sprintf(`SELECT %s FROM labs ORDER BY lab_id`, labColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("查询实验室目录失败: %w", err)
	}
	defer rows.Close()

	var labs []*model.Lab
	for rows.Next() {
		lab, err := scanLab(rows)
		if err != nil {
			return nil, err
		}
		labs = append(labs, lab)
	}
	return labs, rows.Err()
}

// GetByID 根据ID获取实验室
func (r *LabRepository) GetByID(ctx context.Context, labID int) (*model.Lab, error) {
	query := fmt.Sprintf(`SELECT %s FROM labs WHERE lab_id = $1`, labColumns)

	lab, err := scanLab(r.db.QueryRowContext(ctx, query, labID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return lab, err
}

// Upsert 写入或更新实验室记录
func (r *LabRepository) Upsert(ctx context.Context, lab *model.Lab) error {
	query := `
		INSERT INTO labs (
			lab_id, name, supported_tests, capacity_per_day,
			turnaround_days, storage_conditions_accepted, seasons_allowed, price_per_test
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (lab_id) DO UPDATE SET
			name = $2, supported_tests = $3, capacity_per_day = $4,
			turnaround_days = $5, storage_conditions_accepted = $6,
			seasons_allowed = $7, price_per_test = $8
	`

	_, err := r.db.ExecContext(ctx, query,
		lab.LabID, lab.Name, lab.SupportedTests, lab.CapacityPerDay,
		lab.TurnaroundDays, lab.StorageConditionsAccepted, lab.SeasonsAllowed, lab.PricePerTest,
	)
	if err != nil {
		return fmt.Errorf("写入实验室失败: %w", err)
	}
	return nil
}

// scanner 单行扫描接口
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanLab 扫描实验室记录
func scanLab(row scanner) (*model.Lab, error) {
	var lab model.Lab
	err := row.Scan(
		&lab.LabID, &lab.Name, &lab.SupportedTests, &lab.CapacityPerDay,
		&lab.TurnaroundDays, &lab.StorageConditionsAccepted, &lab.SeasonsAllowed, &lab.PricePerTest,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("扫描实验室记录失败: %w", err)
	}
	return &lab, nil
}
