package config

// EnvPrefix scopes every environment variable consumed by the service.
const EnvPrefix = "GASLINE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv                 = "GASLINE_APP_ENV"
	EnvPort                   = "GASLINE_APP_PORT"
	EnvDBDSN                  = "GASLINE_DB_DSN"
	EnvDBHost                 = "GASLINE_DB_HOST"
	EnvDBUser                 = "GASLINE_DB_USER"
	EnvDBName                 = "GASLINE_DB_NAME"
	EnvRedisURL               = "GASLINE_REDIS_URL"
	EnvJWTSecret              = "GASLINE_JWT_SECRET"
	EnvJWTIssuer              = "GASLINE_JWT_ISSUER"
	EnvJWTExpMins             = "GASLINE_JWT_EXPIRATION_MINUTES"
	EnvRefreshTokenTTLMinutes = "GASLINE_REFRESH_TOKEN_TTL_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
