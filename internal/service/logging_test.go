package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shipper1953/carton-service/internal/domain/model"
	"github.com/shipper1953/carton-service/internal/mocks"
	"github.com/shipper1953/carton-service/internal/repository"
)

// TestLoggingService_CreateLog tests single entry creation.
func TestLoggingService_CreateLog(t *testing.T) {
	t.Run("fills id and timestamp and stores the entry", func(t *testing.T) {
		mockRepo := &mocks.MockLogsRepositoryInterface{}
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(doc *repository.LogEntryDocument) bool {
			return !doc.ID.IsZero() && !doc.Timestamp.IsZero() && doc.Level == "info" && doc.Message == "request completed"
		})).Return(nil).Once()

		svc := NewLoggingService(mockRepo)
		err := svc.CreateLog(context.Background(), &model.LogEntry{Level: "info", Message: "request completed"})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("nil repository", func(t *testing.T) {
		svc := NewLoggingService(nil)
		err := svc.CreateLog(context.Background(), &model.LogEntry{Level: "info"})
		assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
	})
}

// TestLoggingService_CreateLogs tests bulk creation.
func TestLoggingService_CreateLogs(t *testing.T) {
	t.Run("stores all entries", func(t *testing.T) {
		mockRepo := &mocks.MockLogsRepositoryInterface{}
		mockRepo.On("CreateMany", mock.Anything, mock.MatchedBy(func(docs []*repository.LogEntryDocument) bool {
			return len(docs) == 2
		})).Return(nil).Once()

		svc := NewLoggingService(mockRepo)
		err := svc.CreateLogs(context.Background(), []*model.LogEntry{
			{Level: "info", Message: "one"},
			{Level: "warn", Message: "two"},
		})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		mockRepo := &mocks.MockLogsRepositoryInterface{}
		svc := NewLoggingService(mockRepo)
		err := svc.CreateLogs(context.Background(), nil)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

// TestLoggingService_QueryLogs tests querying with filters.
func TestLoggingService_QueryLogs(t *testing.T) {
	start := time.Now().Add(-time.Hour)

	t.Run("maps options and results", func(t *testing.T) {
		mockRepo := &mocks.MockLogsRepositoryInterface{}
		mockRepo.On("Query", mock.Anything, mock.MatchedBy(func(opts repository.LogQueryOptions) bool {
			return opts.Level == "error" && opts.Limit == 10 && opts.StartTime == &start
		})).Return([]*repository.LogEntryDocument{
			{Level: "error", Message: "boom", StatusCode: 500},
		}, nil).Once()

		svc := NewLoggingService(mockRepo)
		entries, err := svc.QueryLogs(context.Background(), model.LogQueryOptions{
			Level:     "error",
			Limit:     10,
			StartTime: &start,
		})
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.Equal(t, "boom", entries[0].Message)
		assert.Equal(t, 500, entries[0].StatusCode)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error propagates", func(t *testing.T) {
		mockRepo := &mocks.MockLogsRepositoryInterface{}
		mockRepo.On("Query", mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Once()

		svc := NewLoggingService(mockRepo)
		entries, err := svc.QueryLogs(context.Background(), model.LogQueryOptions{})
		assert.Error(t, err)
		assert.Nil(t, entries)
	})

	t.Run("nil repository", func(t *testing.T) {
		svc := NewLoggingService(nil)
		_, err := svc.QueryLogs(context.Background(), model.LogQueryOptions{})
		assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
	})
}

// TestLoggingService_CountLogs tests counting.
func TestLoggingService_CountLogs(t *testing.T) {
	mockRepo := &mocks.MockLogsRepositoryInterface{}
	mockRepo.On("Count", mock.Anything, mock.Anything).Return(int64(42), nil).Once()

	svc := NewLoggingService(mockRepo)
	count, err := svc.CountLogs(context.Background(), model.LogQueryOptions{Level: "info"})
	assert.NoError(t, err)
	assert.Equal(t, int64(42), count)
	mockRepo.AssertExpectations(t)

	nilSvc := NewLoggingService(nil)
	_, err = nilSvc.CountLogs(context.Background(), model.LogQueryOptions{})
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
}
