// Package metrics 定义 Prometheus 指标。
//
// 通过 /metrics 暴露；测试中使用独立 Registry 避免全局重复注册。
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gpa"

// Metrics 应用指标集合
type Metrics struct {
	// HTTPRequestsTotal 按路由、方法、状态码统计请求数
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration 请求耗时分布
	HTTPRequestDuration *prometheus.HistogramVec

	// EvaluationsTotal 绩点计算次数，按评分体系与评级档位
	EvaluationsTotal *prometheus.CounterVec

	// WorkspacesCreatedTotal 新建工作区计数
	WorkspacesCreatedTotal prometheus.Counter

	// ReportExportsTotal 报告导出次数，按格式
	ReportExportsTotal *prometheus.CounterVec
}

// New 在给定 Registerer 上注册全部指标
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "HTTP 请求总数",
			},
			[]string{"route", "method", "status"},
		),
		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP 请求耗时（秒）",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"route", "method"},
		),
		EvaluationsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "core",
				Name:      "evaluations_total",
				Help:      "输入变化触发的绩点计算次数",
			},
			[]string{"scale", "rating"},
		),
		WorkspacesCreatedTotal: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "session",
				Name:      "workspaces_created_total",
				Help:      "新建工作区总数",
			},
		),
		ReportExportsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "report",
				Name:      "exports_total",
				Help:      "报告导出次数",
			},
			[]string{"format"},
		),
	}
}

// NewNop 注册到一次性 Registry，供测试与 CLI 使用
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}

// ObserveEvaluation 记录一次计算
func (m *Metrics) ObserveEvaluation(scale, rating string) {
	if m == nil {
		return
	}
	m.EvaluationsTotal.WithLabelValues(scale, rating).Inc()
}
