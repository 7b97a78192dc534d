// Package logger builds *slog.Logger values from functional options.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler according to the
// configured Format and wraps it in LogHandlerDecorator, which runs any
// registered ContextExtractor on every record. That is how the CLI stamps its
// run id onto each line without threading a logger through every call.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "strkit"),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//	log.InfoContext(ctx, "masked", logger.Operation("mask"), logger.Result(out))
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally.
package logger
