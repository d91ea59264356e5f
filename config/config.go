package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultSteamBaseURL      = "https://api.steampowered.com"
	defaultSteamMediaBaseURL = "http://media.steampowered.com/steamcommunity/public/images/apps"
	defaultSteamTimeout      = 10 * time.Second

	// steamAPIKeyEnv is read when the config file leaves the key empty.
	steamAPIKeyEnv = "STEAM_API_KEY"
)

// Import modes decide what a re-import does with links the platform no longer reports.
const (
	ImportModeAdditive = "additive"
	ImportModeSync     = "sync"
)

// Delete policies decide what happens to games left without owners when a user is deleted.
const (
	DeletePolicyUserOnly    = "user_only"
	DeletePolicyOrphanGames = "orphan_games"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Database holds settings that apply on top of the connection itself
	Database *DatabaseConfig `json:"database" yaml:"database"`

	// Steam configures the Steam Web API client and import behaviour
	Steam *SteamConfig `json:"steam" yaml:"steam"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig defines transaction and schema settings
type DatabaseConfig struct {
	// IsolationLevel for write transactions: "", "read_committed", "repeatable_read" or "serializable"
	IsolationLevel string `json:"isolationLevel" yaml:"isolationLevel"`

	// MigrateOnStart applies pending SQL migrations when the server boots
	MigrateOnStart bool `json:"migrateOnStart" yaml:"migrateOnStart"`
}

// SteamConfig defines the Steam Web API client configuration
type SteamConfig struct {
	APIKey string `json:"apiKey" yaml:"apiKey"`

	// BaseURL of the Steam Web API, overridable for tests and proxies
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// MediaBaseURL is the CDN prefix used to build game icon URLs
	MediaBaseURL string `json:"mediaBaseUrl" yaml:"mediaBaseUrl"`

	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// ImportMode is "additive" or "sync"
	ImportMode string `json:"importMode" yaml:"importMode"`

	// DeletePolicy is "user_only" or "orphan_games"
	DeletePolicy string `json:"deletePolicy" yaml:"deletePolicy"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Example: STEAM_IMPORTMODE -> steam.importMode
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}

	if cfg.Steam == nil {
		cfg.Steam = &SteamConfig{}
	}
	if cfg.Steam.APIKey == "" {
		cfg.Steam.APIKey = os.Getenv(steamAPIKeyEnv)
	}

	if err := cfg.Steam.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// normalize fills defaults and rejects values the service cannot run with.
func (s *SteamConfig) normalize() error {
	if strings.TrimSpace(s.APIKey) == "" {
		return errors.Errorf("steam api key is required (set %s)", steamAPIKeyEnv)
	}
	if s.BaseURL == "" {
		s.BaseURL = defaultSteamBaseURL
	}
	if s.MediaBaseURL == "" {
		s.MediaBaseURL = defaultSteamMediaBaseURL
	}
	if s.Timeout <= 0 {
		s.Timeout = defaultSteamTimeout
	}

	switch s.ImportMode {
	case "":
		s.ImportMode = ImportModeAdditive
	case ImportModeAdditive, ImportModeSync:
	default:
		return errors.Errorf("unknown steam import mode: %s", s.ImportMode)
	}

	switch s.DeletePolicy {
	case "":
		s.DeletePolicy = DeletePolicyUserOnly
	case DeletePolicyUserOnly, DeletePolicyOrphanGames:
	default:
		return errors.Errorf("unknown steam delete policy: %s", s.DeletePolicy)
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}
// until the first index with a missing host or port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
