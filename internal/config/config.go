package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string        `yaml:"env" env-default:"local"`
	DSN        string        `yaml:"dsn" env:"DSN" env-required:"true"`
	SessionTTL time.Duration `yaml:"session_ttl" env-default:"2h"`
	StatsCache time.Duration `yaml:"stats_cache_ttl" env-default:"0"`
	HTTP       HTTPConfig    `yaml:"http"`
	Redis      RedisConf     `yaml:"redis"`
	Admin      AdminConf     `yaml:"admin"`
	Limiter    LimiterConf   `yaml:"login_limiter"`
}

type HTTPConfig struct {
	Host          string `yaml:"host"`
	Port          string `yaml:"port" env-default:"8080"`
	SessionSecret string `yaml:"session_secret" env:"SESSION_SECRET" env-required:"true"`
}

type RedisConf struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"`
}

// AdminConf holds the operator credential: a single bcrypt-hashed
// shared secret exchanged for a short-lived JWT.
type AdminConf struct {
	PasswordHash string        `yaml:"password_hash" env:"ADMIN_PASSWORD_HASH" env-required:"true"`
	JWTSecret    string        `yaml:"jwt_secret" env:"ADMIN_JWT_SECRET" env-required:"true"`
	TokenTTL     time.Duration `yaml:"token_ttl" env-default:"1h"`
}

type LimiterConf struct {
	Enabled     bool          `yaml:"enabled" env-default:"false"`
	MaxAttempts int64         `yaml:"max_attempts" env-default:"10"`
	Window      time.Duration `yaml:"window" env-default:"15m"`
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	return &cfg
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
