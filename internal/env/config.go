package env

import (
	"fmt"
	"github.com/knadh/koanf/parsers/toml/v2"
	kenv "github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"strings"
	"time"
)

const (
	DefaultExotelDomain = "api.in.exotel.com"
	DefaultVapiBaseURL  = "https://api.vapi.ai/"
	DefaultHTTPTimeout  = 30 * time.Second
)

// Flags holds the persistent flags shared by every command.
var Flags struct {
	ConfigFile         string
	InsecureSkipVerify bool
	NoColor            bool
}

type Config struct {
	Exotel ExotelConfig `koanf:"exotel"`
	Vapi   VapiConfig   `koanf:"vapi"`
	HTTP   HTTPConfig   `koanf:"http"`
}

type ExotelConfig struct {
	AuthKey    string `koanf:"auth_key"`
	AuthToken  string `koanf:"auth_token"`
	Domain     string `koanf:"subscribix_domain"`
	AccountSid string `koanf:"account_sid"`
}

type VapiConfig struct {
	PrivateKey string `koanf:"private_key"`
}

type HTTPConfig struct {
	Timeout            time.Duration `koanf:"timeout"`
	InsecureSkipVerify bool          `koanf:"insecure_skip_verify"`
}

// BaseURL is the account-scoped root of the trunk API, with a trailing slash.
func (c ExotelConfig) BaseURL() string {
	return fmt.Sprintf("https://%s/v2/accounts/%s/", c.Domain, c.AccountSid)
}

func (c VapiConfig) BaseURL() string {
	return DefaultVapiBaseURL
}

// Load reads the optional TOML file at configPath, then EXO_* and VAPI_* environment variables.
// Credentials are not validated here, see Validate.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "failed to load config file %s", configPath)
		}
	}

	for prefix, section := range map[string]string{"EXO_": "exotel", "VAPI_": "vapi"} {
		prefix, section := prefix, section
		if err := k.Load(kenv.Provider(prefix, ".", func(s string) string {
			return section + "." + strings.ToLower(strings.TrimPrefix(s, prefix))
		}), nil); err != nil {
			return nil, errors.Wrap(err, "failed to load environment variables")
		}
	}

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	setDefaults(&config)

	if Flags.InsecureSkipVerify {
		config.HTTP.InsecureSkipVerify = true
	}

	if config.HTTP.Timeout < 0 {
		return nil, errors.Errorf("http timeout cannot be negative, got %v", config.HTTP.Timeout)
	}

	return &config, nil
}

func setDefaults(cfg *Config) {
	if cfg.Exotel.Domain == "" {
		cfg.Exotel.Domain = DefaultExotelDomain
	}
	if cfg.HTTP.Timeout == 0 {
		cfg.HTTP.Timeout = DefaultHTTPTimeout
	}
}

// Validate checks the requested sections together so one error lists everything missing.
func (c *Config) Validate(exotel, vapi bool) error {
	var missing []string
	if exotel {
		missing = append(missing, c.missingExotel()...)
	}
	if vapi {
		missing = append(missing, c.missingVapi()...)
	}
	return missingError(missing)
}

func (c *Config) missingExotel() []string {
	var missing []string
	if c.Exotel.AuthKey == "" {
		missing = append(missing, "EXO_AUTH_KEY")
	}
	if c.Exotel.AuthToken == "" {
		missing = append(missing, "EXO_AUTH_TOKEN")
	}
	if c.Exotel.Domain == "" {
		missing = append(missing, "EXO_SUBSCRIBIX_DOMAIN")
	}
	if c.Exotel.AccountSid == "" {
		missing = append(missing, "EXO_ACCOUNT_SID")
	}
	return missing
}

func (c *Config) missingVapi() []string {
	if c.Vapi.PrivateKey == "" {
		return []string{"VAPI_PRIVATE_KEY"}
	}
	return nil
}

func missingError(missing []string) error {
	if len(missing) == 0 {
		return nil
	}
	return errors.Errorf("missing configuration: %s", strings.Join(missing, ", "))
}
