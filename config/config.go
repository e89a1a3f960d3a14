package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath    = "."
	defaultTimeout = 30 * time.Second
)

// Gateway providers.
const (
	ProviderAppwrite  = "appwrite"
	ProviderMemory    = "memory"
	ProviderFirestore = "firestore"
	ProviderBlob      = "blob"
)

// Session stores.
const (
	SessionStoreMemory = "memory"
	SessionStoreFile   = "file"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	Backend BackendConfig `json:"backend" yaml:"backend"`

	Providers ProvidersConfig `json:"providers" yaml:"providers"`

	// Blob configures the blob storage provider
	Blob *BlobConfig `json:"blob" yaml:"blob"`

	// Firebase configures the firestore document provider
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	Cache CacheConfig `json:"cache" yaml:"cache"`

	Session SessionConfig `json:"session" yaml:"session"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
}

// BackendConfig locates the remote project, database and bucket.
type BackendConfig struct {
	Endpoint    string            `json:"endpoint" yaml:"endpoint" validate:"omitempty,url"`
	ProjectID   string            `json:"projectId" yaml:"projectId"`
	DatabaseID  string            `json:"databaseId" yaml:"databaseId"`
	BucketID    string            `json:"bucketId" yaml:"bucketId"`
	Collections CollectionsConfig `json:"collections" yaml:"collections"`
	Timeout     time.Duration     `json:"timeout" yaml:"timeout"`
	SelfSigned  bool              `json:"selfSigned" yaml:"selfSigned"`
}

// CollectionsConfig maps the logical collections to backend identifiers.
type CollectionsConfig struct {
	Users string `json:"users" yaml:"users"`
	Posts string `json:"posts" yaml:"posts"`
	Saves string `json:"saves" yaml:"saves"`
}

// ProvidersConfig selects the adapter per backend subsystem
type ProvidersConfig struct {
	Account   string `json:"account" yaml:"account" validate:"omitempty,oneof=appwrite memory"`
	Documents string `json:"documents" yaml:"documents" validate:"omitempty,oneof=appwrite memory firestore"`
	Storage   string `json:"storage" yaml:"storage" validate:"omitempty,oneof=appwrite memory blob"`
}

// BlobConfig defines the gocloud bucket used by the blob provider
type BlobConfig struct {
	// Bucket URL, e.g. mem://, file:///var/media, gs://bucket, s3://bucket?region=...
	URL string `json:"url" yaml:"url" validate:"required"`

	// Public URL prefix the bucket's objects are served from
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl" validate:"omitempty,url"`

	// Key prefix inside the bucket
	Prefix string `json:"prefix" yaml:"prefix"`
}

// FirebaseConfig defines the Firebase project used by the firestore provider
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// CacheConfig tunes the query cache
type CacheConfig struct {
	// How long a loaded value counts as fresh; 0 keeps it fresh until invalidated
	StaleTime time.Duration `json:"staleTime" yaml:"staleTime"`

	// How long an unsubscribed stale entry is kept; 0 keeps it until removed
	GCTime time.Duration `json:"gcTime" yaml:"gcTime"`

	// Register prometheus collectors for the cache and log them on shutdown
	Metrics bool `json:"metrics" yaml:"metrics"`

	// Pushgateway to push the metrics to on shutdown
	PushGatewayURL string `json:"pushGatewayUrl" yaml:"pushGatewayUrl" validate:"omitempty,url"`
}

// SessionConfig chooses where the session secret is kept between invocations
type SessionConfig struct {
	Store string `json:"store" yaml:"store" validate:"omitempty,oneof=memory file"`
	Path  string `json:"path" yaml:"path" validate:"required_if=Store file"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file; explicit paths win over the working directory
	searchPaths := make([]string, 0, len(configPath)+1)
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			if filepath.IsAbs(path) {
				searchPaths = append(searchPaths, path)

				continue
			}
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}
	searchPaths = append(searchPaths, defaultPath)

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

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(k, v string) (string, any) {
			// Convert SNAPGRAM_BACKEND_PROJECTID to backend.projectId, aligning each
			// segment with the existing YAML keys.
			key := canonicalizeEnvKey(strings.TrimPrefix(k, envPrefix), existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// envPrefix scopes the environment variables read into the config.
const envPrefix = "SNAPGRAM_"

// configDirEnv points at an extra directory holding config.yaml.
const configDirEnv = "SNAPGRAM_CONFIG_DIR"

func New() (*Config, error) {
	paths := []string{"config", "../config", "../../config"}
	if dir := os.Getenv(configDirEnv); dir != "" {
		paths = append([]string{dir}, paths...)
	}

	cfg, err := LoadWithEnv[Config]("config", paths...)
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Providers.Account == "" {
		c.Providers.Account = ProviderAppwrite
	}
	if c.Providers.Documents == "" {
		c.Providers.Documents = ProviderAppwrite
	}
	if c.Providers.Storage == "" {
		c.Providers.Storage = ProviderAppwrite
	}
	if c.Backend.Timeout <= 0 {
		c.Backend.Timeout = defaultTimeout
	}
	if c.Cache.StaleTime < 0 {
		c.Cache.StaleTime = 0
	}
	if c.Cache.GCTime < 0 {
		c.Cache.GCTime = 0
	}
	if c.Session.Store == "" {
		c.Session.Store = SessionStoreMemory
	}
	if c.Env.Log.Level == "" {
		c.Env.Log.Level = "info"
	}
}

//nolint:gochecknoglobals
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field rules and the settings each selected provider needs.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	usesAppwrite := c.Providers.Account == ProviderAppwrite ||
		c.Providers.Documents == ProviderAppwrite ||
		c.Providers.Storage == ProviderAppwrite
	if usesAppwrite && (c.Backend.Endpoint == "" || c.Backend.ProjectID == "") {
		return errors.New("invalid config: backend.endpoint and backend.projectId are required by the appwrite provider")
	}
	if c.Providers.Documents == ProviderAppwrite && c.Backend.DatabaseID == "" {
		return errors.New("invalid config: backend.databaseId is required by the appwrite documents provider")
	}
	if c.Providers.Storage == ProviderAppwrite && c.Backend.BucketID == "" {
		return errors.New("invalid config: backend.bucketId is required by the appwrite storage provider")
	}
	if c.Providers.Storage == ProviderBlob && c.Blob == nil {
		return errors.New("invalid config: blob section is required by the blob storage provider")
	}
	if c.Providers.Documents == ProviderFirestore && c.Firebase == nil {
		return errors.New("invalid config: firebase section is required by the firestore documents provider")
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
