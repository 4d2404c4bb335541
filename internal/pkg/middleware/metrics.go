// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package middleware

import (
	"strconv"

	"github.com/ecodeclub/readlog/internal/pkg/ectx"
	"github.com/go-resty/resty/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const statusTransportError = "error"

// MetricsPlugin 统计调用评论服务的耗时和次数
type MetricsPlugin struct {
	summaryVec *prometheus.SummaryVec
	counterVec *prometheus.CounterVec
}

// NewMetricsPlugin reg 为 nil 时只创建指标不注册
func NewMetricsPlugin(reg prometheus.Registerer) *MetricsPlugin {
	factory := promauto.With(reg)
	summaryVec := factory.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "readlog_client_request_duration_seconds",
			Help: "Readlog API request duration in seconds",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.005,
				0.99: 0.001,
			},
		},
		[]string{"method", "operation", "status_code"},
	)

	counterVec := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "readlog_client_requests_total",
			Help: "Total number of readlog API requests",
		},
		[]string{"method", "operation", "status_code"},
	)

	return &MetricsPlugin{
		summaryVec: summaryVec,
		counterVec: counterVec,
	}
}

func (p *MetricsPlugin) Initialize(client *resty.Client) {
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		method := resp.Request.Method
		op := operation(resp.Request)
		statusCode := strconv.Itoa(resp.StatusCode())

		// 记录响应时间指标
		p.summaryVec.WithLabelValues(method, op, statusCode).Observe(resp.Time().Seconds())

		// 记录访问次数指标
		p.counterVec.WithLabelValues(method, op, statusCode).Inc()
		return nil
	})
	client.OnError(func(req *resty.Request, _ error) {
		p.counterVec.WithLabelValues(req.Method, operation(req), statusTransportError).Inc()
	})
}

func operation(req *resty.Request) string {
	if op, ok := ectx.OperationFromCtx(req.Context()); ok {
		return op
	}
	return "unknown"
}
