//go:build !integration

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shipper1953/carton-service/config"
	"github.com/shipper1953/carton-service/internal/mocks"
	"github.com/shipper1953/carton-service/internal/service"
)

func TestInitializeDatabase_Disabled(t *testing.T) {
	components := InitializeDatabase(config.DatabaseConfig{Enabled: false})

	assert.Nil(t, components)
}

func TestInitializeDatabase_InvalidURI(t *testing.T) {
	// A malformed URI fails fast; the app runs on without a database.
	components := InitializeDatabase(config.DatabaseConfig{
		Enabled:      true,
		URI:          "not-a-valid-uri",
		DatabaseName: "carton_service",
	})

	assert.Nil(t, components)
}

func TestSeedDefaultCatalog(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*mocks.MockBoxRepositoryInterface)
		wantError bool
	}{
		{
			name: "seeds the built-in catalog",
			setupMock: func(m *mocks.MockBoxRepositoryInterface) {
				m.On("SeedDefaults", mock.Anything, service.DefaultBoxCatalog()).Return(nil).Once()
			},
			wantError: false,
		},
		{
			name: "propagates repository failure",
			setupMock: func(m *mocks.MockBoxRepositoryInterface) {
				m.On("SeedDefaults", mock.Anything, service.DefaultBoxCatalog()).Return(assert.AnError).Once()
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mocks.MockBoxRepositoryInterface{}
			tt.setupMock(mockRepo)

			err := seedDefaultCatalog(mockRepo)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
