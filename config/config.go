package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath = "."

	defaultHTTPPort             = 8080
	defaultMaxRequestBodySize   = "8M"
	defaultRequestTimeout       = 10 * time.Second
	defaultCatalogBaseURL       = "https://www.themealdb.com/api/json/v1/1"
	defaultRandomSampleSize     = 12
	defaultCatalogConcurrency   = 6
	defaultIdentityBaseURL      = "https://identitytoolkit.googleapis.com/v1"
	defaultSecureTokenBaseURL   = "https://securetoken.googleapis.com/v1"
	defaultPhotoPrefix          = "event-photos"
	defaultPhotoMaxBytes        = 5 * 1024 * 1024
	defaultPhotoMaxDimension    = 800
	defaultPhotoQuality         = 90
	defaultCredentialAttempts   = 3
	defaultCredentialBackoff    = time.Second
	defaultUpcomingSummaryLimit = 3
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`

		// Maximum request body size in echo's notation, e.g. "8M"
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
	} `json:"http" yaml:"http"`

	// EventAPI configuration for the remote events API
	EventAPI EventAPIConfig `json:"eventApi" yaml:"eventApi"`

	// Catalog configuration for the recipe catalog
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`

	// Firebase configuration for the identity provider
	Firebase FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Photos configuration for event photo storage
	Photos PhotosConfig `json:"photos" yaml:"photos"`

	// Credential configuration for bearer token retrieval
	Credential CredentialConfig `json:"credential" yaml:"credential"`

	// Sync configuration for the event synchronization engine
	Sync SyncConfig `json:"sync" yaml:"sync"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// EventAPIConfig defines where and how the events API is called
type EventAPIConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// CatalogConfig defines the recipe catalog endpoint and batch sizing
type CatalogConfig struct {
	BaseURL          string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout          time.Duration `json:"timeout" yaml:"timeout"`
	RandomSampleSize int           `json:"randomSampleSize" yaml:"randomSampleSize"`
	Concurrency      int           `json:"concurrency" yaml:"concurrency"`
}

// FirebaseConfig defines Firebase Authentication REST settings
type FirebaseConfig struct {
	APIKey             string        `json:"apiKey" yaml:"apiKey"`
	ProjectID          string        `json:"projectId" yaml:"projectId"`
	CredentialsPath    string        `json:"credentialsPath" yaml:"credentialsPath"`
	IdentityBaseURL    string        `json:"identityBaseUrl" yaml:"identityBaseUrl"`
	SecureTokenBaseURL string        `json:"secureTokenBaseUrl" yaml:"secureTokenBaseUrl"`
	Timeout            time.Duration `json:"timeout" yaml:"timeout"`
}

// PhotosConfig defines photo storage and processing limits
type PhotosConfig struct {
	// Bucket URL understood by gocloud.dev/blob (gs://, file://, mem://)
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Public URL prefix objects are served under; used to recognise owned photos
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	Prefix       string `json:"prefix" yaml:"prefix"`
	MaxBytes     int64  `json:"maxBytes" yaml:"maxBytes"`
	MaxDimension int    `json:"maxDimension" yaml:"maxDimension"`
	Quality      int    `json:"quality" yaml:"quality"`
}

// CredentialConfig defines the credential retry policy
type CredentialConfig struct {
	MaxAttempts int           `json:"maxAttempts" yaml:"maxAttempts"`
	Backoff     time.Duration `json:"backoff" yaml:"backoff"`
}

// SyncConfig defines engine behaviour
type SyncConfig struct {
	// Cron spec for background refresh, e.g. "@every 5m". Empty disables it.
	AutoRefresh string `json:"autoRefresh" yaml:"autoRefresh"`

	// Number of upcoming events listed in the summary
	UpcomingLimit int `json:"upcomingLimit" yaml:"upcomingLimit"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override file values.
	// Example: EVENTAPI_BASEURL -> eventApi.baseUrl
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

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills every unset value with its default.
func (c *Config) ApplyDefaults() {
	if c.HTTP.Port == 0 {
		c.HTTP.Port = defaultHTTPPort
	}
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.EventAPI.Timeout <= 0 {
		c.EventAPI.Timeout = defaultRequestTimeout
	}
	if strings.TrimSpace(c.Catalog.BaseURL) == "" {
		c.Catalog.BaseURL = defaultCatalogBaseURL
	}
	if c.Catalog.Timeout <= 0 {
		c.Catalog.Timeout = defaultRequestTimeout
	}
	if c.Catalog.RandomSampleSize <= 0 {
		c.Catalog.RandomSampleSize = defaultRandomSampleSize
	}
	if c.Catalog.Concurrency <= 0 {
		c.Catalog.Concurrency = defaultCatalogConcurrency
	}
	if strings.TrimSpace(c.Firebase.IdentityBaseURL) == "" {
		c.Firebase.IdentityBaseURL = defaultIdentityBaseURL
	}
	if strings.TrimSpace(c.Firebase.SecureTokenBaseURL) == "" {
		c.Firebase.SecureTokenBaseURL = defaultSecureTokenBaseURL
	}
	if c.Firebase.Timeout <= 0 {
		c.Firebase.Timeout = defaultRequestTimeout
	}
	if strings.TrimSpace(c.Photos.Prefix) == "" {
		c.Photos.Prefix = defaultPhotoPrefix
	}
	if c.Photos.MaxBytes <= 0 {
		c.Photos.MaxBytes = defaultPhotoMaxBytes
	}
	if c.Photos.MaxDimension <= 0 {
		c.Photos.MaxDimension = defaultPhotoMaxDimension
	}
	if c.Photos.Quality <= 0 || c.Photos.Quality > 100 {
		c.Photos.Quality = defaultPhotoQuality
	}
	if c.Credential.MaxAttempts <= 0 {
		c.Credential.MaxAttempts = defaultCredentialAttempts
	}
	if c.Credential.Backoff <= 0 {
		c.Credential.Backoff = defaultCredentialBackoff
	}
	if c.Sync.UpcomingLimit <= 0 {
		c.Sync.UpcomingLimit = defaultUpcomingSummaryLimit
	}
}

// Validate rejects configurations the planner cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.EventAPI.BaseURL) == "" {
		return errors.New("eventApi.baseUrl is required")
	}
	if strings.TrimSpace(c.Firebase.APIKey) == "" {
		return errors.New("firebase.apiKey is required")
	}
	if strings.TrimSpace(c.Photos.BucketURL) == "" {
		return errors.New("photos.bucketUrl is required")
	}
	if strings.TrimSpace(c.Photos.PublicBaseURL) == "" {
		return errors.New("photos.publicBaseUrl is required")
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
