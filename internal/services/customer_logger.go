package services

import (
	"context"
	"log/slog"
	"time"
)

// CustomerLogger provides structured logging for customer record operations
type CustomerLogger struct {
	logger *slog.Logger
}

// NewCustomerLogger creates a new customer logger
func NewCustomerLogger(logger *slog.Logger) CustomerLoggerInterface {
	return &CustomerLogger{
		logger: logger,
	}
}

// LogListQueryStarted logs the start of a list query
func (cl *CustomerLogger) LogListQueryStarted(ctx context.Context, term, status string, page int) {
	cl.logger.InfoContext(ctx, "customer list query started",
		slog.String("event_type", "customer_list_query_started"),
		slog.Int("term_length", len(term)), // term itself may carry PII
		slog.String("status", status),
		slog.Int("page", page),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogListQueryCompleted logs the completion of a list query
func (cl *CustomerLogger) LogListQueryCompleted(ctx context.Context, resultsCount int, total int64, durationMs int64) {
	cl.logger.InfoContext(ctx, "customer list query completed",
		slog.String("event_type", "customer_list_query_completed"),
		slog.Int("results_count", resultsCount),
		slog.Int64("total", total),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogListQueryFailed logs a failed list query
func (cl *CustomerLogger) LogListQueryFailed(ctx context.Context, errorMsg string, durationMs int64) {
	cl.logger.WarnContext(ctx, "customer list query failed",
		slog.String("event_type", "customer_list_query_failed"),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogCustomerCreated logs customer creation
func (cl *CustomerLogger) LogCustomerCreated(ctx context.Context, customerID uint, status string) {
	cl.logger.InfoContext(ctx, "customer created",
		slog.String("event_type", "customer_created"),
		slog.Uint64("customer_id", uint64(customerID)),
		slog.String("status", status),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogCustomerUpdated logs customer updates
func (cl *CustomerLogger) LogCustomerUpdated(ctx context.Context, customerID uint, status string) {
	cl.logger.InfoContext(ctx, "customer updated",
		slog.String("event_type", "customer_updated"),
		slog.Uint64("customer_id", uint64(customerID)),
		slog.String("status", status),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogCustomerDeleted logs customer deletion
func (cl *CustomerLogger) LogCustomerDeleted(ctx context.Context, customerID uint) {
	cl.logger.InfoContext(ctx, "customer deleted",
		slog.String("event_type", "customer_deleted"),
		slog.Uint64("customer_id", uint64(customerID)),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogExportRequested logs a customer export
func (cl *CustomerLogger) LogExportRequested(ctx context.Context, format string, recordCount int) {
	cl.logger.InfoContext(ctx, "customer export requested",
		slog.String("event_type", "customer_export_requested"),
		slog.String("format", format),
		slog.Int("record_count", recordCount),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogValidationFailure logs validation failures
func (cl *CustomerLogger) LogValidationFailure(ctx context.Context, operation string, problems []string) {
	cl.logger.WarnContext(ctx, "validation failure",
		slog.String("event_type", "validation_failure"),
		slog.String("operation", operation),
		slog.Any("problems", problems),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func getRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value("request_id").(string); ok {
		return requestID
	}
	return ""
}
