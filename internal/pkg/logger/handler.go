package logger

import (
	"context"
	log "log/slog"
)

// TeeHandler 将日志分发到多个 Handler
type TeeHandler struct {
	handlers []log.Handler
}

func (h *TeeHandler) Enabled(ctx context.Context, level log.Level) bool {
	return h.handlers[0].Enabled(ctx, level)
}

func (h *TeeHandler) Handle(ctx context.Context, r log.Record) error {
	for _, next := range h.handlers {
		if err := next.Handle(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

func (h *TeeHandler) WithAttrs(attrs []log.Attr) log.Handler {
	handlers := make([]log.Handler, len(h.handlers))
	for i, next := range h.handlers {
		handlers[i] = next.WithAttrs(attrs)
	}
	return &TeeHandler{handlers: handlers}
}

func (h *TeeHandler) WithGroup(name string) log.Handler {
	handlers := make([]log.Handler, len(h.handlers))
	for i, next := range h.handlers {
		handlers[i] = next.WithGroup(name)
	}
	return &TeeHandler{handlers: handlers}
}

// RemoteFilterHandler 只上报带 trace_id 的记录，过滤掉进程级噪声日志
type RemoteFilterHandler struct {
	next log.Handler
}

func (h *RemoteFilterHandler) Enabled(ctx context.Context, level log.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *RemoteFilterHandler) Handle(ctx context.Context, r log.Record) error {
	hasTraceID := false
	r.Attrs(func(a log.Attr) bool {
		if a.Key == TraceIDKey && a.Value.String() != "" {
			hasTraceID = true
			return false
		}
		return true
	})

	if !hasTraceID {
		return nil
	}

	return h.next.Handle(ctx, r)
}

func (h *RemoteFilterHandler) WithAttrs(attrs []log.Attr) log.Handler {
	return &RemoteFilterHandler{next: h.next.WithAttrs(attrs)}
}

func (h *RemoteFilterHandler) WithGroup(name string) log.Handler {
	return &RemoteFilterHandler{next: h.next.WithGroup(name)}
}
