// Package planner 提供实验室检测排期核心算法
package planner

import (
	"strings"
)

// ParseListField 解析分隔文本字段
//
// 按 "," 或 ";" 切分，去除首尾空白并丢弃空项，保留原始大小写和顺序。
// 空输入返回空列表。
func ParseListField(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';'
	})

	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// NormalizeSet 解析分隔文本字段为小写令牌集合，用于不区分大小写的匹配
func NormalizeSet(s string) map[string]bool {
	tokens := ParseListField(s)
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[strings.ToLower(t)] = true
	}
	return set
}
