package appconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromEnvironmentDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "https://alsusweb.lbl.gov", cfg.ALSHub.URL)
	assert.Equal(t, "https://als-esaf.als.lbl.gov", cfg.ESAF.URL)
	assert.False(t, cfg.TLSVerify)
	assert.Equal(t, "/api", cfg.BasePath)
	assert.Equal(t, "/docs", cfg.DocsPath)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout())
	assert.Equal(t, []string{"Scientist"}, cfg.ApprovalRoles)
}

func TestLoadConfig_FromEnvironmentOverrides(t *testing.T) {
	t.Setenv("ALSHUB_BASE", "https://alshub.test")
	t.Setenv("ESAF_BASE", "https://esaf.test")
	t.Setenv("TLS_VERIFY", "true")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "3")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "https://alshub.test", cfg.ALSHub.URL)
	assert.Equal(t, "https://esaf.test", cfg.ESAF.URL)
	assert.True(t, cfg.TLSVerify)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout())
}

func TestLoadConfig_FromFile(t *testing.T) {
	t.Setenv("TEST_ALSHUB_URL", "https://alshub.test")

	configYAML := `
host: users.example.org
alshub:
  url: "{{.TEST_ALSHUB_URL}}"
tlsVerify: true
approvalRoles:
  - Scientist
  - Beamline Staff
beamlineAdmins:
  admin@example.com:
    - "7.3.3"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(configYAML), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "users.example.org", cfg.Host)
	assert.Equal(t, "https://alshub.test", cfg.ALSHub.URL)
	assert.True(t, cfg.TLSVerify)
	assert.Equal(t, []string{"Scientist", "Beamline Staff"}, cfg.ApprovalRoles)
	assert.Equal(t, []string{"7.3.3"}, cfg.BeamlineAdmins["admin@example.com"])

	// Fields the file left unset still get defaults
	assert.Equal(t, "https://als-esaf.als.lbl.gov", cfg.ESAF.URL)
	assert.Equal(t, "/api", cfg.BasePath)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
