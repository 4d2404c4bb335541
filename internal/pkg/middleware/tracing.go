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
	"github.com/ecodeclub/readlog/internal/pkg/ectx"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// 用于 resty 追踪的仪器名称
	instrumentationName = "internal/pkg/middleware/tracing"
)

// TracingPlugin 为每一次调用评论服务创建一个客户端 span
type TracingPlugin struct {
	// 可选的追踪器，如果为nil则使用全局追踪器
	tracer trace.Tracer
}

func NewTracingPlugin() *TracingPlugin {
	return &TracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

func NewTracingPluginWithProvider(tp trace.TracerProvider) *TracingPlugin {
	return &TracingPlugin{
		tracer: tp.Tracer(instrumentationName),
	}
}

func (p *TracingPlugin) Initialize(client *resty.Client) {
	client.OnBeforeRequest(p.before)
	client.OnAfterResponse(p.after)
	client.OnError(p.onError)
}

func (p *TracingPlugin) before(_ *resty.Client, req *resty.Request) error {
	name := "readlog." + operation(req)
	ctx, span := p.tracer.Start(req.Context(), name, trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(attribute.String("http.method", req.Method))
	if op, ok := ectx.OperationFromCtx(req.Context()); ok {
		span.SetAttributes(attribute.String("readlog.operation", op))
	}
	req.SetContext(ctx)
	return nil
}

func (p *TracingPlugin) after(_ *resty.Client, resp *resty.Response) error {
	span := trace.SpanFromContext(resp.Request.Context())
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode()))
	if resp.IsError() {
		span.SetStatus(codes.Error, resp.Status())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
	return nil
}

func (p *TracingPlugin) onError(req *resty.Request, err error) {
	span := trace.SpanFromContext(req.Context())
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	span.End()
}
