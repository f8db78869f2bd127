package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/99minutos/carrier-gateway/internal/carrier/fedex"
	"github.com/99minutos/carrier-gateway/internal/core/domain"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`
	JWTSecret string        `env:"JWT_SECRET, required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	// APIClients holds comma separated "id:bcrypt-hash" or "id:role:bcrypt-hash" entries.
	APIClients []string `env:"API_CLIENTS"`

	FedEx FedExConfig
	Mongo MongoConfig
	Redis RedisConfig
	Batch BatchConfig
}

type FedExConfig struct {
	Key        string        `env:"FEDEX_KEY,      required"`
	Password   string        `env:"FEDEX_PASSWORD, required"`
	Account    string        `env:"FEDEX_ACCOUNT,  required"`
	Login      string        `env:"FEDEX_LOGIN,    required"`
	Test       bool          `env:"FEDEX_TEST,     default=false"`
	LogXML     bool          `env:"FEDEX_LOG_XML,  default=false"`
	LiveURL    string        `env:"FEDEX_LIVE_URL, default=https://gateway.fedex.com:443/xml"`
	TestURL    string        `env:"FEDEX_TEST_URL, default=https://gatewaybeta.fedex.com:443/xml"`
	Timeout    time.Duration `env:"FEDEX_TIMEOUT,  default=30s"`
	MaxRetries int           `env:"FEDEX_MAX_RETRIES, default=2"`

	DropoffType   string `env:"FEDEX_DROPOFF_TYPE"`
	PackagingType string `env:"FEDEX_PACKAGING_TYPE"`
}

type MongoConfig struct {
	URI            string        `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database       string        `env:"MONGO_DB,  default=carrier_gateway"`
	MaxPoolSize    uint64        `env:"MONGO_MAX_POOL_SIZE, default=0"`
	AuditRetention time.Duration `env:"MONGO_AUDIT_RETENTION, default=720h"`
}

type RedisConfig struct {
	Addr        string        `env:"REDIS_ADDR, default=localhost:6379"`
	Password    string        `env:"REDIS_PASSWORD"`
	DB          int           `env:"REDIS_DB,   default=0"`
	TrackingTTL time.Duration `env:"TRACKING_CACHE_TTL, default=15m"`
}

type BatchConfig struct {
	Workers  int `env:"BATCH_WORKERS,   default=8"`
	MaxItems int `env:"BATCH_MAX_ITEMS, default=50"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration from l.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Credentials returns the FedEx web service credentials.
func (c FedExConfig) Credentials() fedex.Credentials {
	return fedex.Credentials{
		Key:      c.Key,
		Password: c.Password,
		Account:  c.Account,
		Login:    c.Login,
	}
}

// Defaults returns the options merged under every carrier call.
func (c FedExConfig) Defaults() domain.RequestOptions {
	return domain.RequestOptions{
		DropoffType:   c.DropoffType,
		PackagingType: c.PackagingType,
		Test:          c.Test,
		LogXML:        c.LogXML,
	}
}

// Clients parses APIClients. Entries without a role are plain clients.
func (c *Config) Clients() ([]domain.APIClient, error) {
	clients := make([]domain.APIClient, 0, len(c.APIClients))
	for _, entry := range c.APIClients {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ":")
		switch len(parts) {
		case 2:
			clients = append(clients, domain.APIClient{ID: parts[0], SecretHash: parts[1], Role: domain.RoleClient})
		case 3:
			clients = append(clients, domain.APIClient{ID: parts[0], Role: parts[1], SecretHash: parts[2]})
		default:
			return nil, fmt.Errorf("config: %w: malformed API_CLIENTS entry %q", domain.ErrInvalidConfiguration, parts[0])
		}
	}
	return clients, nil
}
