package logger

import "log/slog"

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Operation records the name of the string operation under "op".
func Operation(name string) slog.Attr {
	return slog.String("op", name)
}

// Result records an operation outcome under "result". Callers pass values
// that are already masked; raw phone or ID numbers never belong in logs.
func Result(v any) slog.Attr {
	return slog.Any("result", v)
}
