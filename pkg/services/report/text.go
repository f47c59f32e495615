package report

import (
	"text/template"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	DateLayout  = "2006/01/02"
	ClockLayout = "2006/1/2 15:04:05"
)

const reportText = `📊 直播成本计算日报 - {{date .Date}}
═══════════════════════════════════════

📋 输入参数:
• 上粉数量: {{.Counters.FansCount}}
• 账号数量: {{.Counters.AccountCount}}
• 小组成员: {{.Counters.GroupMembers}}
• 转化成员: {{.Counters.ConversionMembers}}
• 通道数量: {{.Counters.ChannelCount}}
• 注册数量: {{.Counters.RegisterCount}}
• 付费数量: {{.Counters.PayCount}}
• 价值数量: {{.Counters.ValueCount}}

💰 总成本统计:
• 上粉总成本: ¥{{money .Breakdown.TotalCost}}
• 注册总成本: ¥{{money .Breakdown.RegisterCost}}
• 付费总成本: ¥{{money .Breakdown.PayCost}}
• 价值总成本: ¥{{money .Breakdown.ValueTotalCost}}

📊 单个成本分析:
• 每个上粉成本: ¥{{money .Breakdown.CostPerFan}}
• 单个注册成本: ¥{{money .Breakdown.CostPerRegister}}
• 单个付费成本: ¥{{money .Breakdown.CostPerPay}}
• 单个价值成本: ¥{{money .Breakdown.CostPerValue}}

{{if .Warnings}}🚨 预警提醒:
{{range .Warnings}}{{.Message}}
{{end}}
{{end}}📈 分析建议:
{{range .Analysis}}{{.Message}}
{{end}}
⏰ 生成时间: {{clock .Timestamp}}
═══════════════════════════════════════
`

func newTextTemplate(loc *time.Location) *template.Template {
	funcs := template.FuncMap{
		"money": Money,
		"date": func(t time.Time) string {
			return t.In(loc).Format(DateLayout)
		},
		"clock": func(t time.Time) string {
			return t.In(loc).Format(ClockLayout)
		},
	}
	return template.Must(template.New("daily-report").Funcs(funcs).Parse(reportText))
}

// Money formats an already rounded amount with thousands separators.
func Money(v float64) string {
	return humanize.Commaf(v)
}
