// Package metrics 提供基于Prometheus的指标收集
//
// 指标分三类：
//   - HTTP：请求总数、耗时、处理中的请求数（由middleware.Metrics记录）
//   - 事务：提交/回滚次数与耗时（由rdb.TxManager记录）
//   - 图书过滤：每次列表查询用到的过滤条件、编译失败次数
//
// 命名规范：Counter以_total结尾，Histogram以单位结尾（_seconds）。
// 标签只使用有限取值（method、route、result），不要用ID等高基数字段。
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 事务结果标签
const (
	ResultCommitted  = "committed"
	ResultRolledBack = "rolled_back"
)

var (
	once sync.Once

	// HTTPRequestsTotal HTTP请求总数
	// 标签：method、route（路由模板，如/api/books/:id）、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// StoreTransactionsTotal 事务总数，标签：result（committed/rolled_back）
	StoreTransactionsTotal *prometheus.CounterVec

	// StoreTransactionDuration 事务耗时（从BEGIN到COMMIT/ROLLBACK）
	StoreTransactionDuration prometheus.Histogram

	// BookFilterTermsTotal 图书列表各过滤参数被使用的次数，标签：param
	BookFilterTermsTotal *prometheus.CounterVec

	// BookFilterErrorsTotal 过滤参数编译失败次数
	BookFilterErrorsTotal prometheus.Counter
)

// InitMetrics 注册所有指标到默认Registry
// 可重复调用，只有第一次生效
func InitMetrics() {
	once.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "route", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP请求耗时（秒）",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "route"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		StoreTransactionsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_transactions_total",
				Help: "数据库事务总数",
			},
			[]string{"result"},
		)

		StoreTransactionDuration = promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "store_transaction_duration_seconds",
				Help:    "数据库事务耗时（秒）",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
		)

		BookFilterTermsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "book_filter_terms_total",
				Help: "图书列表过滤参数使用次数",
			},
			[]string{"param"},
		)

		BookFilterErrorsTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "book_filter_errors_total",
				Help: "图书列表过滤参数编译失败次数",
			},
		)
	})
}

// ObserveHTTPRequest 记录一次HTTP请求
func ObserveHTTPRequest(method, route, status string, d time.Duration) {
	InitMetrics()
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveTransaction 记录一次事务结果
func ObserveTransaction(result string, d time.Duration) {
	InitMetrics()
	StoreTransactionsTotal.WithLabelValues(result).Inc()
	StoreTransactionDuration.Observe(d.Seconds())
}

// ObserveBookFilter 记录一次图书过滤：使用了哪些参数、是否编译失败
func ObserveBookFilter(params []string, failed bool) {
	InitMetrics()
	for _, p := range params {
		BookFilterTermsTotal.WithLabelValues(p).Inc()
	}
	if failed {
		BookFilterErrorsTotal.Inc()
	}
}
