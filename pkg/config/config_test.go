package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// ConfigTestSuite tests configuration loading.
type ConfigTestSuite struct {
	suite.Suite
	tempDir string
}

// SetupSuite runs once before all tests.
func (s *ConfigTestSuite) SetupSuite() {
	var err error
	s.tempDir, err = os.MkdirTemp("", "edgeorigin-config-test-*")
	s.Require().NoError(err)
}

// TearDownSuite runs once after all tests.
func (s *ConfigTestSuite) TearDownSuite() {
	if s.tempDir != "" {
		os.RemoveAll(s.tempDir)
	}
}

// TearDownTest runs after each test.
func (s *ConfigTestSuite) TearDownTest() {
	os.Unsetenv("EDGEORIGIN_ADDR")
	os.Unsetenv("EDGEORIGIN_DEBUG")
	os.Unsetenv("EDGEORIGIN_DEFAULT_POP")
	os.Unsetenv("EDGEORIGIN_METRICS")
}

// TestLoadDefaults tests loading with no file and no environment.
func (s *ConfigTestSuite) TestLoadDefaults() {
	cfg, err := Load("")
	s.Require().NoError(err)
	s.Equal(":8080", cfg.Addr)
	s.False(cfg.Debug)
	s.Empty(cfg.DefaultPOP)
	s.True(cfg.MetricsEnabled)
	s.Equal(10*time.Second, cfg.ShutdownTimeout)
}

// TestLoadFile tests loading settings from a YAML file.
func (s *ConfigTestSuite) TestLoadFile() {
	path := filepath.Join(s.tempDir, "origind.yaml")
	content := "addr: \":9090\"\ndebug: true\ndefault_pop: AMS\nmetrics_enabled: false\nshutdown_timeout: 5s\n"
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	s.Require().NoError(err)
	s.Equal(":9090", cfg.Addr)
	s.True(cfg.Debug)
	s.Equal("AMS", cfg.DefaultPOP)
	s.False(cfg.MetricsEnabled)
	s.Equal(5*time.Second, cfg.ShutdownTimeout)
}

// TestLoadEnvOverrides tests that environment variables win over the file.
func (s *ConfigTestSuite) TestLoadEnvOverrides() {
	path := filepath.Join(s.tempDir, "override.yaml")
	s.Require().NoError(os.WriteFile(path, []byte("addr: \":9090\"\n"), 0o600))

	os.Setenv("EDGEORIGIN_ADDR", ":7070")
	os.Setenv("EDGEORIGIN_DEBUG", "true")
	os.Setenv("EDGEORIGIN_DEFAULT_POP", "FRA")

	cfg, err := Load(path)
	s.Require().NoError(err)
	s.Equal(":7070", cfg.Addr)
	s.True(cfg.Debug)
	s.Equal("FRA", cfg.DefaultPOP)
}

// TestLoadMissingFile tests the error path for an unreadable file.
func (s *ConfigTestSuite) TestLoadMissingFile() {
	_, err := Load(filepath.Join(s.tempDir, "nope.yaml"))
	s.Error(err)
}

// TestLoadMalformedFile tests the error path for invalid YAML.
func (s *ConfigTestSuite) TestLoadMalformedFile() {
	path := filepath.Join(s.tempDir, "broken.yaml")
	s.Require().NoError(os.WriteFile(path, []byte("addr: [unterminated"), 0o600))

	_, err := Load(path)
	s.Error(err)
}

// TestLoadInvalidBoolEnv tests that a bad boolean env value is ignored.
func (s *ConfigTestSuite) TestLoadInvalidBoolEnv() {
	os.Setenv("EDGEORIGIN_DEBUG", "maybe")

	cfg, err := Load("")
	s.Require().NoError(err)
	s.False(cfg.Debug)
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
