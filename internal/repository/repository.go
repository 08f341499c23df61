// Package repository 提供目录数据访问层
//
// 排期核心不接触数据库；这里只负责把实验室/检测方法/合同目录
// 从 PostgreSQL 读成不可变快照交给上层。
package repository

import (
	"context"
	"database/sql"
)

// DB 数据库接口
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Catalogs 目录仓储集合
type Catalogs struct {
	Labs      *LabRepository
	Tests     *TestMethodRepository
	Contracts *ContractRepository
}

// NewCatalogs 创建目录仓储集合
func NewCatalogs(db DB) *Catalogs {
	return &Catalogs{
		Labs:      NewLabRepository(db),
		Tests:     NewTestMethodRepository(db),
		Contracts: NewContractRepository(db),
	}
}
