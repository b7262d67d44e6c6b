package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LogEntry represents a stored request log document. Use the Fields map for
// context-specific data such as item counts or the chosen box.
type LogEntry struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Timestamp  time.Time              `bson:"timestamp" json:"timestamp"`
	Level      string                 `bson:"level" json:"level"`
	Message    string                 `bson:"message" json:"message"`
	RequestID  string                 `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Method     string                 `bson:"method,omitempty" json:"method,omitempty"`
	Path       string                 `bson:"path,omitempty" json:"path,omitempty"`
	StatusCode int                    `bson:"status_code,omitempty" json:"status_code,omitempty"`
	Duration   int64                  `bson:"duration_ms,omitempty" json:"duration_ms,omitempty"`
	IP         string                 `bson:"ip,omitempty" json:"ip,omitempty"`
	UserAgent  string                 `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	Error      string                 `bson:"error,omitempty" json:"error,omitempty"`
	Fields     map[string]interface{} `bson:"fields,omitempty" json:"fields,omitempty"`
}

// WithField adds a field to the entry's Fields map, initializing it if needed.
func (e *LogEntry) WithField(key string, value interface{}) *LogEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// LogQueryOptions filters stored log entries.
type LogQueryOptions struct {
	RequestID string
	Level     string
	Method    string
	Path      string
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int
	Skip      int
}
