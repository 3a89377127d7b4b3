package appconfig

import (
	"bytes"
	"html/template"
	"os"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

// Config holds all configuration details
type Config struct {
	Host     string       `yaml:"host" env:"HOST,default=localhost:8080"`
	BasePath string       `yaml:"basePath" env:"BASE_PATH,default=/api"`
	DocsPath string       `yaml:"docsPath" env:"DOCS_PATH,default=/docs"`
	ALSHub   ALSHubConfig `yaml:"alshub"`
	ESAF     ESAFConfig   `yaml:"esaf"`

	// TLSVerify enables certificate verification on outbound requests to the
	// facility services. The LBNL-hosted endpoints present certificates that
	// do not always validate, so this defaults to off.
	TLSVerify bool `yaml:"tlsVerify" env:"TLS_VERIFY,default=false"`

	RequestTimeoutSeconds int `yaml:"requestTimeoutSeconds" env:"REQUEST_TIMEOUT_SECONDS,default=10"`

	// ApprovalRoles are the beamline roles that mark a user as staff on a
	// beamline, e.g. "Scientist".
	ApprovalRoles []string `yaml:"approvalRoles" env:"APPROVAL_ROLES,default=Scientist"`

	// BeamlineAdmins grants beamline groups to users by email, for users that
	// are not maintained in ALSHub. Only settable through the config file.
	BeamlineAdmins map[string][]string `yaml:"beamlineAdmins"`
}

// ALSHubConfig defines the connection to the ALSHub identity service.
type ALSHubConfig struct {
	URL string `yaml:"url" env:"ALSHUB_BASE,default=https://alsusweb.lbl.gov"`
}

// ESAFConfig defines the connection to the ESAF proposal service.
type ESAFConfig struct {
	URL string `yaml:"url" env:"ESAF_BASE,default=https://als-esaf.als.lbl.gov"`
}

// RequestTimeout returns the outbound request timeout as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// LoadConfig loads the configuration from a YAML file, rendered as a template
// against the environment. When no path is given the configuration is decoded
// from environment variables alone.
func LoadConfig(path string) (*Config, error) {
	var config Config

	if path == "" {
		if err := envdecode.Decode(&config); err != nil {
			log.Error().Err(err).Msg("failed to decode config from environment")
			return nil, err
		}
		return &config, nil
	}

	// Parse the template file
	tmpl, err := template.ParseFiles(path)
	if err != nil {
		log.Error().Err(err).Msg("error parsing config file template")
		return nil, err
	}

	// Execute the template with environment variables
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, loadEnvVars()); err != nil {
		log.Error().Err(err).Msg("error executing config file template")
		return nil, err
	}

	// Load and unmarshal the YAML
	if err := yaml.Unmarshal(buf.Bytes(), &config); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal config YAML")
		return nil, err
	}

	config.applyDefaults()
	return &config, nil
}

// applyDefaults fills fields the config file left unset with the same
// defaults the environment decoder uses.
func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost:8080"
	}
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.DocsPath == "" {
		c.DocsPath = "/docs"
	}
	if c.ALSHub.URL == "" {
		c.ALSHub.URL = "https://alsusweb.lbl.gov"
	}
	if c.ESAF.URL == "" {
		c.ESAF.URL = "https://als-esaf.als.lbl.gov"
	}
	if c.RequestTimeoutSeconds == 0 {
		c.RequestTimeoutSeconds = 10
	}
	if len(c.ApprovalRoles) == 0 {
		c.ApprovalRoles = []string{"Scientist"}
	}
}

// loadEnvVars loads environment variables into a map
func loadEnvVars() map[string]string {
	envVars := make(map[string]string)
	for _, env := range os.Environ() {
		kv := strings.SplitN(env, "=", 2)
		if len(kv) == 2 {
			envVars[kv[0]] = kv[1]
		}
	}
	return envVars
}
