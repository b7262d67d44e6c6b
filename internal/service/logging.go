package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shipper1953/carton-service/internal/domain/model"
	"github.com/shipper1953/carton-service/internal/repository"
)

// LoggingService defines the interface for logging operations.
type LoggingService interface {
	// CreateLog stores a single log entry.
	CreateLog(ctx context.Context, entry *model.LogEntry) error

	// CreateLogs stores multiple log entries in bulk.
	CreateLogs(ctx context.Context, entries []*model.LogEntry) error

	// QueryLogs retrieves log entries matching the query options.
	QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error)

	// CountLogs returns the count of log entries matching the query options.
	CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}

// LoggingServiceImpl implements the LoggingService interface.
type LoggingServiceImpl struct {
	repo repository.LogsRepositoryInterface
}

// NewLoggingService creates a new logging service implementation.
func NewLoggingService(repo repository.LogsRepositoryInterface) LoggingService {
	return &LoggingServiceImpl{
		repo: repo,
	}
}

// CreateLog stores a single log entry.
func (s *LoggingServiceImpl) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}
	return s.repo.Create(ctx, modelToDocument(entry))
}

// CreateLogs stores multiple log entries in bulk.
func (s *LoggingServiceImpl) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}
	if len(entries) == 0 {
		return nil
	}

	docs := make([]*repository.LogEntryDocument, len(entries))
	for i, entry := range entries {
		docs[i] = modelToDocument(entry)
	}

	return s.repo.CreateMany(ctx, docs)
}

// QueryLogs retrieves log entries matching the query options.
func (s *LoggingServiceImpl) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	docs, err := s.repo.Query(ctx, repoQueryOptions(opts))
	if err != nil {
		return nil, err
	}

	entries := make([]model.LogEntry, len(docs))
	for i, doc := range docs {
		entries[i] = documentToModel(doc)
	}

	return entries, nil
}

// CountLogs returns the count of log entries matching the query options.
func (s *LoggingServiceImpl) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	if s.repo == nil {
		return 0, ErrRepositoryNotConfigured
	}
	return s.repo.Count(ctx, repoQueryOptions(opts))
}

func repoQueryOptions(opts model.LogQueryOptions) repository.LogQueryOptions {
	return repository.LogQueryOptions{
		RequestID: opts.RequestID,
		Level:     opts.Level,
		Method:    opts.Method,
		Path:      opts.Path,
		StartTime: opts.StartTime,
		EndTime:   opts.EndTime,
		Limit:     opts.Limit,
		Skip:      opts.Skip,
	}
}

func modelToDocument(entry *model.LogEntry) *repository.LogEntryDocument {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	return &repository.LogEntryDocument{
		ID:         entry.ID,
		Timestamp:  entry.Timestamp,
		Level:      entry.Level,
		Message:    entry.Message,
		RequestID:  entry.RequestID,
		Method:     entry.Method,
		Path:       entry.Path,
		StatusCode: entry.StatusCode,
		Duration:   entry.Duration,
		IP:         entry.IP,
		UserAgent:  entry.UserAgent,
		Error:      entry.Error,
		Fields:     entry.Fields,
	}
}

func documentToModel(doc *repository.LogEntryDocument) model.LogEntry {
	return model.LogEntry{
		ID:         doc.ID,
		Timestamp:  doc.Timestamp,
		Level:      doc.Level,
		Message:    doc.Message,
		RequestID:  doc.RequestID,
		Method:     doc.Method,
		Path:       doc.Path,
		StatusCode: doc.StatusCode,
		Duration:   doc.Duration,
		IP:         doc.IP,
		UserAgent:  doc.UserAgent,
		Error:      doc.Error,
		Fields:     doc.Fields,
	}
}
