// Package report 提供排期结果的渲染与导出
//
// 排期核心对输出格式一无所知；文本表格、CSV 和 PDF 的序列化
// 全部集中在这里。
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/SherGrigory/ScedulerLab/pkg/model"
)

// RenderSchedule 以对齐文本表格输出排期方案和汇总
func RenderSchedule(w io.Writer, schedule *model.Schedule, summary model.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "检测项目\t状态\t实验室\t开始\t完成\t截止余量\t价格\n")
	for i := range schedule.Assignments {
		a := &schedule.Assignments[i]
		if !a.Resolved() {
			fmt.Fprintf(tw, "%s\t%s\t-\t-\t-\t-\t-\n", a.TestName, a.Status)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%.2f\n",
			a.TestName, a.Status, a.LabName, a.StartDate, a.FinishDate, a.DaysBeforeDeadline, a.Price)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n总成本: %.2f\n", summary.TotalCost)
	if summary.MissedCount > 0 {
		fmt.Fprintf(w, "逾期项目数: %d\n", summary.MissedCount)
	}
	if summary.UnresolvedCount > 0 {
		fmt.Fprintf(w, "未匹配项目数: %d\n", summary.UnresolvedCount)
	}
	return nil
}
