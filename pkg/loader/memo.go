// Package loader 提供目录表格的加载与校验
package loader

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/SherGrigory/ScedulerLab/pkg/model"
)

// Loader 带记忆化的目录加载器
//
// 同一份表格内容只解析一次：以原始字节的 SHA-256 为键缓存解析
// 结果，缓存只在进程生命周期内有效。这是对"已加载表格的隐式
// 缓存"的显式替代，不依赖任何全局缓存状态。
type Loader struct {
	mu        sync.Mutex
	labs      map[string][]*model.Lab
	tests     map[string][]*model.TestMethod
	contracts map[string][]*model.Contract
}

// NewLoader 创建加载器
func NewLoader() *Loader {
	return &Loader{
		labs:      make(map[string][]*model.Lab),
		tests:     make(map[string][]*model.TestMethod),
		contracts: make(map[string][]*model.Contract),
	}
}

// contentHash 计算表格内容哈希
func contentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// LoadLabs 加载实验室目录，内容相同的表格命中缓存
func (l *Loader) LoadLabs(name string, data []byte) ([]*model.Lab, error) {
	key := contentHash(data)

	l.mu.Lock()
	cached, ok := l.labs[key]
	l.mu.Unlock()
	if ok {
		return cached, nil
	}

	labs, err := ParseLabs(name, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.labs[key] = labs
	l.mu.Unlock()
	return labs, nil
}

// LoadTestMethods 加载检测方法目录
func (l *Loader) LoadTestMethods(name string, data []byte) ([]*model.TestMethod, error) {
	key := contentHash(data)

	l.mu.Lock()
	cached, ok := l.tests[key]
	l.mu.Unlock()
	if ok {
		return cached, nil
	}

	tests, err := ParseTestMethods(name, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.tests[key] = tests
	l.mu.Unlock()
	return tests, nil
}

// LoadContracts 加载合同目录
func (l *Loader) LoadContracts(name string, data []byte) ([]*model.Contract, error) {
	key := contentHash(data)

	l.mu.Lock()
	cached, ok := l.contracts[key]
	l.mu.Unlock()
	if ok {
		return cached, nil
	}

	contracts, err := ParseContracts(name, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.contracts[key] = contracts
	l.mu.Unlock()
	return contracts, nil
}
