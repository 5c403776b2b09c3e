package config

import "time"

type ServiceConfig struct {
	Name            string `yaml:"name"`
	Environment     string `yaml:"environment"`
	Version         string `yaml:"version"`
	ClientURL       string `yaml:"client_url"`
	StripeSecretKey string `yaml:"stripe_secret_key"`

	// InvitationTTL is how long a collaborator invitation stays valid.
	InvitationTTL time.Duration `yaml:"invitation_ttl"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
}

// StorageConfig configures the S3-backed media storage.
type StorageConfig struct {
	Region    string `yaml:"region"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	// Location is the key prefix every media object is stored under.
	Location string `yaml:"location"`
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database int    `yaml:"database"`

	// Rate limiting window settings
	RateLimit       int           `yaml:"rate_limit"`
	RateLimitWindow time.Duration `yaml:"rate_limit_window"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}
