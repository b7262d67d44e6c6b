//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"
)

var (
	sharedContainer     *MongoDBContainer
	sharedContainerErr  error
	sharedContainerOnce sync.Once
	sharedContainerMu   sync.RWMutex
)

// GetSharedMongoDB returns a MongoDB container shared by every test in the
// package. The container is created once; CleanupSharedMongoDB tears it down.
func GetSharedMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	sharedContainerOnce.Do(func() {
		sharedContainerMu.Lock()
		defer sharedContainerMu.Unlock()

		sharedContainer, sharedContainerErr = SetupMongoDB(ctx)
	})

	sharedContainerMu.RLock()
	defer sharedContainerMu.RUnlock()

	if sharedContainerErr != nil {
		return nil, sharedContainerErr
	}
	return sharedContainer, nil
}

// CleanupSharedMongoDB cleans up the shared MongoDB container.
// Call this in TestMain after m.Run().
func CleanupSharedMongoDB(ctx context.Context) error {
	sharedContainerMu.Lock()
	defer sharedContainerMu.Unlock()

	if sharedContainer != nil {
		return sharedContainer.Cleanup(ctx)
	}
	return nil
}

// SetupTestMainWithMongoDB is a TestMain helper that starts the shared
// container before the tests run and tears it down afterwards.
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	_, err := GetSharedMongoDB(ctx)
	if err != nil {
		panic(err)
	}

	code := m.Run()

	if err := CleanupSharedMongoDB(ctx); err != nil {
		// Docker reaps the container anyway, so only warn.
		_, _ = os.Stderr.WriteString("Warning: failed to cleanup shared MongoDB container: " + err.Error() + "\n")
	}

	return code
}

// GetSharedContainerURI returns the URI of the shared MongoDB container.
// Panics if the container is not initialized.
func GetSharedContainerURI() string {
	sharedContainerMu.RLock()
	defer sharedContainerMu.RUnlock()

	if sharedContainer == nil {
		panic("shared MongoDB container not initialized - call GetSharedMongoDB first")
	}
	return sharedContainer.URI
}

// SanitizeDBName turns a test name into a valid, unique MongoDB database name.
func SanitizeDBName(testName string) string {
	sanitized := ""
	for _, r := range testName {
		if r == '/' || r == '\\' {
			sanitized += "_"
		} else {
			sanitized += string(r)
		}
	}

	if len(sanitized) > 50 {
		sanitized = sanitized[:50]
	}

	return sanitized + "_" + fmt.Sprintf("%d", time.Now().UnixNano()%1000000)
}
