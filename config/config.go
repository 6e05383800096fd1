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
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Storage selects the rating, shop and user store backend
	Storage StorageConfig `json:"storage" yaml:"storage"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Lock configures the per-(customer, shop) submission lock
	Lock *LockConfig `json:"lock" yaml:"lock"`

	// Rating configures the eligibility gate
	Rating *RatingConfig `json:"rating" yaml:"rating"`

	// Ranking configures leaderboards and popularity rankings
	Ranking *RankingConfig `json:"ranking" yaml:"ranking"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// QRCode configuration for shop QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// StorageConfig defines which repository implementation backs the service
type StorageConfig struct {
	// Driver is "memory" (default) or "postgres"
	Driver string `json:"driver" yaml:"driver"`

	// AutoMigrate creates the tables on start when using postgres
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// LockConfig defines the key lock backend
type LockConfig struct {
	// Driver is "memory" (default) or "redis"
	Driver string `json:"driver" yaml:"driver"`

	// RedisURL is a redis:// connection URL (for redis driver)
	RedisURL string `json:"redisUrl" yaml:"redisUrl"`

	// TTL bounds how long a crashed holder keeps a redis lock
	TTL time.Duration `json:"ttl" yaml:"ttl"`
}

// RatingConfig defines the rating eligibility rules
type RatingConfig struct {
	MaxDistanceMeters float64       `json:"maxDistanceMeters" yaml:"maxDistanceMeters"`
	Cooldown          time.Duration `json:"cooldown" yaml:"cooldown"`
	MinScore          int           `json:"minScore" yaml:"minScore"`
	MaxScore          int           `json:"maxScore" yaml:"maxScore"`
	LockWaitTimeout   time.Duration `json:"lockWaitTimeout" yaml:"lockWaitTimeout"`
}

// RankingConfig defines ranking sizes, windows and badge thresholds
type RankingConfig struct {
	DefaultCountry   string        `json:"defaultCountry" yaml:"defaultCountry"`
	LeaderboardSize  int           `json:"leaderboardSize" yaml:"leaderboardSize"`
	PopularitySize   int           `json:"popularitySize" yaml:"popularitySize"`
	PopularityWindow time.Duration `json:"popularityWindow" yaml:"popularityWindow"`
	BadgeThreshold   int           `json:"badgeThreshold" yaml:"badgeThreshold"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// Defaults used when a section or field is absent from config.yaml.
const (
	DefaultMaxDistanceMeters = 100.0
	DefaultCooldown          = 7 * 24 * time.Hour
	DefaultMinScore          = 1
	DefaultMaxScore          = 5
	DefaultLockWaitTimeout   = 2 * time.Second
	DefaultLockTTL           = 10 * time.Second

	DefaultCountry          = "India"
	DefaultLeaderboardSize  = 10
	DefaultPopularitySize   = 5
	DefaultPopularityWindow = 30 * 24 * time.Hour
	DefaultBadgeThreshold   = 5

	DefaultQRCodeSize = 256
)

// ApplyDefaults fills every missing section and zero field with its default.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = "memory"
	}

	if c.Lock == nil {
		c.Lock = &LockConfig{}
	}
	if c.Lock.Driver == "" {
		c.Lock.Driver = "memory"
	}
	if c.Lock.TTL <= 0 {
		c.Lock.TTL = DefaultLockTTL
	}

	if c.Rating == nil {
		c.Rating = &RatingConfig{}
	}
	if c.Rating.MaxDistanceMeters <= 0 {
		c.Rating.MaxDistanceMeters = DefaultMaxDistanceMeters
	}
	if c.Rating.Cooldown <= 0 {
		c.Rating.Cooldown = DefaultCooldown
	}
	if c.Rating.MinScore <= 0 {
		c.Rating.MinScore = DefaultMinScore
	}
	if c.Rating.MaxScore < c.Rating.MinScore {
		c.Rating.MaxScore = DefaultMaxScore
	}
	if c.Rating.LockWaitTimeout <= 0 {
		c.Rating.LockWaitTimeout = DefaultLockWaitTimeout
	}

	if c.Ranking == nil {
		c.Ranking = &RankingConfig{}
	}
	if c.Ranking.DefaultCountry == "" {
		c.Ranking.DefaultCountry = DefaultCountry
	}
	if c.Ranking.LeaderboardSize <= 0 {
		c.Ranking.LeaderboardSize = DefaultLeaderboardSize
	}
	if c.Ranking.PopularitySize <= 0 {
		c.Ranking.PopularitySize = DefaultPopularitySize
	}
	if c.Ranking.PopularityWindow <= 0 {
		c.Ranking.PopularityWindow = DefaultPopularityWindow
	}
	if c.Ranking.BadgeThreshold <= 0 {
		c.Ranking.BadgeThreshold = DefaultBadgeThreshold
	}

	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}

	if c.QRCode == nil {
		c.QRCode = &QRCodeConfig{}
	}
	if c.QRCode.Size <= 0 {
		c.QRCode.Size = DefaultQRCodeSize
	}
	if c.QRCode.ErrorCorrectionLevel == "" {
		c.QRCode.ErrorCorrectionLevel = "medium"
	}
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

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

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

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
