package container

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fjacquet/pacs2mt/internal/config"
	"fjacquet/pacs2mt/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContainer(t *testing.T) {
	tests := []struct {
		name        string
		config      *config.Config
		expectError bool
		errorMsg    string
	}{
		{
			name:        "nil config",
			config:      nil,
			expectError: true,
			errorMsg:    "configuration cannot be nil",
		},
		{
			name:   "default config",
			config: config.DefaultConfig(),
		},
		{
			name: "json logging",
			config: func() *config.Config {
				cfg := config.DefaultConfig()
				cfg.Log = config.LogConfig{Level: "debug", Format: "json"}
				return cfg
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewContainer(tt.config)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, c)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, c)
			assert.NotNil(t, c.GetLogger())
			assert.Same(t, tt.config, c.GetConfig())
			assert.NotNil(t, c.GetConverter())
			assert.NoError(t, c.Close())
		})
	}
}

func TestNewContainerWithLogger(t *testing.T) {
	_, err := NewContainerWithLogger(config.DefaultConfig(), nil)
	assert.Error(t, err)

	logger := logging.NewMockLogger()
	c, err := NewContainerWithLogger(config.DefaultConfig(), logger)
	require.NoError(t, err)
	assert.Same(t, logger, c.GetLogger())
	assert.True(t, logger.HasEntry("DEBUG", "Container initialized successfully"))
}

func TestContainer_SharedConverter(t *testing.T) {
	c, err := NewContainerWithLogger(config.DefaultConfig(), logging.NewMockLogger())
	require.NoError(t, err)
	assert.Same(t, c.GetConverter(), c.GetConverter())

	_, err = c.GetConverter().Convert(context.Background(), strings.NewReader("<Foo/>"))
	assert.Error(t, err)
}

func TestContainer_NewServer(t *testing.T) {
	c, err := NewContainerWithLogger(config.DefaultConfig(), logging.NewMockLogger())
	require.NoError(t, err)

	srv := c.NewServer(c.GetConfig().Server, "1.2.3")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "1.2.3")
}
