// Package repository 提供目录数据访问层
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SherGrigory/ScedulerLab/pkg/model"
)

// ContractRepository 合同目录仓储
type ContractRepository struct {
	db DB
}

// NewContractRepository 创建合同仓储
func NewContractRepository(db DB) *ContractRepository {
	return &ContractRepository{db: db}
}

const contractColumns = `contract_id, product_name, active_substance, required_tests,
	sample_collection_date, contract_deadline, max_storage_days`

// List 按 contract_id 升序返回全部合同
func (r *ContractRepository) List(ctx context.Context) ([]*model.Contract, error) {
	query := fmt.Sprintf(`SELECT %s FROM contracts ORDER BY contract_id`, contractColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("查询合同目录失败: %w", err)
	}
	defer rows.Close()

	var contracts []*model.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}
	return contracts, rows.Err()
}

// GetByID 根据ID获取合同
func (r *ContractRepository) GetByID(ctx context.Context, contractID int) (*model.Contract, error) {
	query := fmt.Sprintf(`SELECT %s FROM contracts WHERE contract_id = $1`, contractColumns)

	c, err := scanContract(r.db.QueryRowContext(ctx, query, contractID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return c, err
}

// Upsert 写入或更新合同记录
func (r *ContractRepository) Upsert(ctx context.Context, c *model.Contract) error {
	query := `
		INSERT INTO contracts (
			contract_id, product_name, active_substance, required_tests,
			sample_collection_date, contract_deadline, max_storage_days
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (contract_id) DO UPDATE SET
			product_name = $2, active_substance = $3, required_tests = $4,
			sample_collection_date = $5, contract_deadline = $6, max_storage_days = $7
	`

	_, err := r.db.ExecContext(ctx, query,
		c.ContractID, c.ProductName, c.ActiveSubstance, c.RequiredTests,
		c.SampleCollectionDate, c.ContractDeadline, c.MaxStorageDays,
	)
	if err != nil {
		return fmt.Errorf("写入合同失败: %w", err)
	}
	return nil
}

// scanContract 扫描合同记录
func scanContract(row scanner) (*model.Contract, error) {
	var c model.Contract
	err := row.Scan(
		&c.ContractID, &c.ProductName, &c.ActiveSubstance, &c.RequiredTests,
		&c.SampleCollectionDate, &c.ContractDeadline, &c.MaxStorageDays,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("扫描合同记录失败: %w", err)
	}
	return &c, nil
}
