package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFromYAML(t *testing.T, content string) *Config {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	t.Setenv("DATABASE_URL", "")
	t.Setenv("CONFIG_PATH", path)

	AppConfig = nil
	LoadConfig()
	return AppConfig
}

func TestLoadConfigInterviewGateDefaultsOn(t *testing.T) {
	cfg := loadFromYAML(t, `
server:
  host: localhost
  port: 4000
database:
  url: postgres://localhost/lawhub
jwt:
  secret: s
`)

	assert.True(t, cfg.Gate.InterviewRequiresApproval)
	assert.False(t, cfg.Gate.CompanyRequiresApproval)
}

func TestLoadConfigGateSectionOverridesDefault(t *testing.T) {
	cfg := loadFromYAML(t, `
database:
  url: postgres://localhost/lawhub
gate:
  company_requires_approval: true
  interview_requires_approval: false
`)

	assert.False(t, cfg.Gate.InterviewRequiresApproval)
	assert.True(t, cfg.Gate.CompanyRequiresApproval)
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	cfg := loadFromYAML(t, `
database:
  url: postgres://localhost/lawhub
storage:
  type: local
`)

	assert.Equal(t, 60, cfg.JWT.TTL)
	assert.Equal(t, "/api/v1/files", cfg.Storage.BaseURL)
	assert.NotEmpty(t, cfg.Kakao.Endpoint)
}
