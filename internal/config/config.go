package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Dispatch modes of the chaincode process.
const (
	ModeContract = "contract"
	ModeShim     = "shim"
)

// Config is the process configuration. The stock product handlers themselves
// read none of it.
type Config struct {
	Chaincode Chaincode `mapstructure:"chaincode"`
	Logger    Logger    `mapstructure:"logger"`
}

// Chaincode holds the settings used to start the chaincode.
// With ServerAddress set the chaincode runs as an external service.
type Chaincode struct {
	ID              string `mapstructure:"id"`
	Version         string `mapstructure:"version"`
	ServerAddress   string `mapstructure:"server_address"`
	Mode            string `mapstructure:"mode"`
	TLSDisabled     bool   `mapstructure:"tls_disabled"`
	TLSKeyFile      string `mapstructure:"tls_key_file"`
	TLSCertFile     string `mapstructure:"tls_cert_file"`
	TLSClientCAFile string `mapstructure:"tls_client_ca_file"`
}

// Logger holds logger configuration.
type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

var defaults = map[string]any{
	"chaincode.id":                 "",
	"chaincode.version":            "1.0",
	"chaincode.server_address":     "",
	"chaincode.mode":               ModeContract,
	"chaincode.tls_disabled":       true,
	"chaincode.tls_key_file":       "",
	"chaincode.tls_cert_file":      "",
	"chaincode.tls_client_ca_file": "",
	"logger.level":                 "info",
	"logger.encoding":              "json",
}

// Load reads the optional YAML file at path and overlays environment
// variables, e.g. CHAINCODE_SERVER_ADDRESS for chaincode.server_address.
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the selected startup mode is fully configured.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	switch c.Chaincode.Mode {
	case ModeContract, ModeShim:
	default:
		return fmt.Errorf("chaincode.mode must be %q or %q, got %q", ModeContract, ModeShim, c.Chaincode.Mode)
	}

	if c.Chaincode.ServerAddress == "" {
		return nil
	}
	if c.Chaincode.ID == "" {
		return errors.New("CHAINCODE_ID must be provided when CHAINCODE_SERVER_ADDRESS is set")
	}
	if !c.Chaincode.TLSDisabled && (c.Chaincode.TLSKeyFile == "" || c.Chaincode.TLSCertFile == "") {
		return errors.New("CHAINCODE_TLS_KEY_FILE and CHAINCODE_TLS_CERT_FILE must be provided when TLS is enabled")
	}
	return nil
}

// TLSMaterial reads the key, certificate and optional client CA configured
// for the chaincode server.
func (c Chaincode) TLSMaterial() (key, cert, clientCA []byte, err error) {
	if key, err = os.ReadFile(c.TLSKeyFile); err != nil {
		return nil, nil, nil, fmt.Errorf("read tls key: %w", err)
	}
	if cert, err = os.ReadFile(c.TLSCertFile); err != nil {
		return nil, nil, nil, fmt.Errorf("read tls cert: %w", err)
	}
	if c.TLSClientCAFile != "" {
		if clientCA, err = os.ReadFile(c.TLSClientCAFile); err != nil {
			return nil, nil, nil, fmt.Errorf("read tls client ca: %w", err)
		}
	}
	return key, cert, clientCA, nil
}
