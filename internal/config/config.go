package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env       string          `yaml:"env" env:"ENV" env-default:"local"`
	HTTP      HTTPConfig      `yaml:"http"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Media     MediaConfig     `yaml:"media"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Lobby     LobbyConfig     `yaml:"lobby"`
}

type HTTPConfig struct {
	Address        string        `yaml:"address" env:"HTTP_ADDRESS" env-default:""`
	ReadTimeout    time.Duration `yaml:"read_timeout" env-default:"10s"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env-default:"10s"`
	AllowedOrigins []string      `yaml:"allowed_origins" env:"HTTP_ALLOWED_ORIGINS" env-separator:","`
}

type DatabaseConfig struct {
	Driver          string        `yaml:"driver" env:"DB_DRIVER" env-default:"postgres"`
	DSN             string        `yaml:"dsn" env:"DB_DSN"`
	MaxOpenConns    int           `yaml:"max_open_conns" env-default:"25"`
	MaxIdleConns    int           `yaml:"max_idle_conns" env-default:"10"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env-default:"30m"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"JWT_SECRET"`
	Issuer    string `yaml:"issuer" env:"JWT_ISSUER"`
}

type MediaConfig struct {
	AppID          string        `yaml:"app_id" env:"MEDIA_APP_ID"`
	AppCertificate string        `yaml:"app_certificate" env:"MEDIA_APP_CERTIFICATE"`
	TokenTTL       time.Duration `yaml:"token_ttl" env:"MEDIA_TOKEN_TTL" env-default:"24h"`
	STUNServers    []string      `yaml:"stun_servers" env:"MEDIA_STUN_SERVERS" env-separator:","`
}

type RateLimitConfig struct {
	// Requests per second per client on the join and approval endpoints.
	PerSecond uint `yaml:"per_second" env:"RATE_LIMIT_PER_SECOND" env-default:"20"`
}

type LobbyConfig struct {
	RoomURL string `yaml:"room_url" env:"LOBBY_ROOM_URL" env-default:"/room/"`
}

func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		panic("config path is empty")
	}

	return MustLoadPath(configPath)
}

func MustLoadPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	cfg.setDefaults()

	return &cfg
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	if res == "" {
		res = "config/local.yaml"
	}

	return res
}

func (c *Config) setDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if len(c.HTTP.AllowedOrigins) == 0 {
		c.HTTP.AllowedOrigins = []string{"http://localhost:3000"}
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.Media.TokenTTL <= 0 {
		c.Media.TokenTTL = 24 * time.Hour
	}
	if len(c.Media.STUNServers) == 0 {
		c.Media.STUNServers = []string{"stun:stun.l.google.com:19302"}
	}
	if c.Lobby.RoomURL == "" {
		c.Lobby.RoomURL = "/room/"
	}
	// A zero limit would reject every join.
	if c.RateLimit.PerSecond == 0 {
		c.RateLimit.PerSecond = 20
	}
}
