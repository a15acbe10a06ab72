package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// DefaultThumborHost is the colocated proxy address; URLs signed for it stay
// relative so the front proxy can route /thumbor itself.
const DefaultThumborHost = "127.0.0.1:9995"

type Config struct {
	Server    ServerConfig
	Proxy     ProxyConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	JWT       JWTConfig
	Thumbor   ThumborConfig
	Uploads   UploadsConfig
	S3        S3Config
	Camo      CamoConfig
	Loader    LoaderConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
}

// ProxyConfig configures the image proxy process.
type ProxyConfig struct {
	Port         int           `envconfig:"PROXY_PORT" default:"9995"`
	ReadTimeout  time.Duration `envconfig:"PROXY_READ_TIMEOUT" default:"10s"`
	WriteTimeout time.Duration `envconfig:"PROXY_WRITE_TIMEOUT" default:"60s"`
	RoutePrefix  string        `envconfig:"PROXY_ROUTE_PREFIX" default:"/thumbor"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            int           `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" default:"thumbgate"`
	Password        string        `envconfig:"DB_PASSWORD"`
	Name            string        `envconfig:"DB_NAME" default:"thumbgate"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CacheConfig selects where rendered thumbnails are kept.
// Backend is one of "redis", "memory" or "none".
type CacheConfig struct {
	Backend    string        `envconfig:"CACHE_BACKEND" default:"memory"`
	TTL        time.Duration `envconfig:"CACHE_TTL" default:"1h"`
	MaxEntries int           `envconfig:"CACHE_MAX_ENTRIES" default:"512"`
}

type RateLimitConfig struct {
	Enabled         bool          `envconfig:"RATE_LIMIT_ENABLED" default:"false"`
	RequestsPerMin  int           `envconfig:"RATE_LIMIT_REQUESTS_PER_MIN" default:"600"`
	BurstSize       int           `envconfig:"RATE_LIMIT_BURST_SIZE" default:"10"`
	CleanupInterval time.Duration `envconfig:"RATE_LIMIT_CLEANUP_INTERVAL" default:"1m"`
}

type JWTConfig struct {
	SecretKey      string        `envconfig:"JWT_SECRET_KEY" required:"true"`
	AccessTokenTTL time.Duration `envconfig:"JWT_ACCESS_TOKEN_TTL" default:"15m"`
}

// ThumborConfig holds the signing settings shared by the API and the proxy.
// An empty Host disables proxying.
type ThumborConfig struct {
	Host string `envconfig:"THUMBOR_HOST" default:"127.0.0.1:9995"`
	Key  string `envconfig:"THUMBOR_KEY"`
}

func (c ThumborConfig) Enabled() bool {
	return c.Host != ""
}

func (c ThumborConfig) IsColocated() bool {
	return c.Host == DefaultThumborHost
}

type UploadsConfig struct {
	LocalDir string `envconfig:"LOCAL_UPLOADS_DIR"`
}

func (c UploadsConfig) IsLocal() bool {
	return c.LocalDir != ""
}

type S3Config struct {
	Endpoint        string `envconfig:"S3_ENDPOINT"`
	Region          string `envconfig:"S3_REGION" default:"us-east-1"`
	Bucket          string `envconfig:"S3_AUTH_UPLOADS_BUCKET"`
	AccessKeyID     string `envconfig:"S3_KEY"`
	SecretAccessKey string `envconfig:"S3_SECRET_KEY"`
	UsePathStyle    bool   `envconfig:"S3_USE_PATH_STYLE" default:"false"`
}

type CamoConfig struct {
	URI string `envconfig:"CAMO_URI" default:"https://external-content.zulipcdn.net/"`
	Key string `envconfig:"CAMO_KEY"`
}

// LoaderConfig tunes the proxy's loader backends.
type LoaderConfig struct {
	FileRoot     string        `envconfig:"LOADER_FILE_ROOT" default:"/var/lib/thumbgate"`
	FetchTimeout time.Duration `envconfig:"LOADER_FETCH_TIMEOUT" default:"10s"`
	MaxBodyBytes int64         `envconfig:"LOADER_MAX_BODY_BYTES" default:"26214400"`
	UserAgent    string        `envconfig:"LOADER_USER_AGENT" default:"thumbgate/1.0"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Thumbor.Enabled() && c.Thumbor.Key == "" {
		return fmt.Errorf("loading config: THUMBOR_KEY is required when THUMBOR_HOST is set")
	}
	switch c.Cache.Backend {
	case "redis", "memory", "none":
	default:
		return fmt.Errorf("loading config: unknown CACHE_BACKEND %q", c.Cache.Backend)
	}
	if c.Cache.Backend == "memory" && c.Cache.MaxEntries <= 0 {
		return fmt.Errorf("loading config: CACHE_MAX_ENTRIES must be positive")
	}
	return nil
}
