package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	Service       ServiceConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	Idempotency   IdempotencyConfig
	FeatureFlags  FeatureFlagsConfig
	Notifications NotificationsConfig
	Cron          CronConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"GASLINE_APP_ENV" required:"true"`
	Port         string `envconfig:"GASLINE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"GASLINE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"GASLINE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServiceConfig struct {
	Kind string `envconfig:"GASLINE_SERVICE_KIND" default:"api"`
}

type DBConfig struct {
	DSN    string `envconfig:"GASLINE_DB_DSN"`
	Driver string `envconfig:"GASLINE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"GASLINE_DB_HOST"`
	LegacyPort     int    `envconfig:"GASLINE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"GASLINE_DB_USER"`
	LegacyPassword string `envconfig:"GASLINE_DB_PASSWORD"`
	LegacyName     string `envconfig:"GASLINE_DB_NAME"`
	LegacySSLMode  string `envconfig:"GASLINE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"GASLINE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"GASLINE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"GASLINE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"GASLINE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"GASLINE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"GASLINE_REDIS_ADDR"`
	Password     string        `envconfig:"GASLINE_REDIS_PASSWORD"`
	DB           int           `envconfig:"GASLINE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"GASLINE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"GASLINE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"GASLINE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"GASLINE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"GASLINE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"GASLINE_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"GASLINE_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"GASLINE_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"GASLINE_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"GASLINE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"GASLINE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"GASLINE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"GASLINE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"GASLINE_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"GASLINE_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"GASLINE_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"GASLINE_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"GASLINE_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"GASLINE_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"GASLINE_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type IdempotencyConfig struct {
	TTL time.Duration `envconfig:"GASLINE_IDEMPOTENCY_TTL" default:"24h"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"GASLINE_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"GASLINE_AUTO_MIGRATE" default:"false"`
}

type NotificationsConfig struct {
	RetentionDays int `envconfig:"GASLINE_NOTIFICATION_RETENTION_DAYS" default:"90"`
}

// Retention returns the notification retention window as a duration.
func (n NotificationsConfig) Retention() time.Duration {
	if n.RetentionDays <= 0 {
		return 0
	}
	return time.Duration(n.RetentionDays) * 24 * time.Hour
}

type CronConfig struct {
	TickInterval time.Duration `envconfig:"GASLINE_CRON_TICK_INTERVAL" default:"1m"`
	LockTTL      time.Duration `envconfig:"GASLINE_CRON_LOCK_TTL" default:"5m"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
