package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// DataSourcePostgres - основной источник данных (PostgreSQL)
	DataSourcePostgres = "postgres"
	// DataSourceFixture - статический набор домов в памяти
	DataSourceFixture = "fixture"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Cache      CacheConfig
	Log        LogConfig
	Worker     WorkerConfig
	DataSource DataSourceConfig
	Moderation ModerationConfig
	Ranking    RankingConfig
	Season     SeasonConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	LeaderboardTTL time.Duration
	RouteShareTTL  time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
	BatchSize     int
}

type DataSourceConfig struct {
	// Mode: postgres или fixture. В режиме postgres при недоступной базе
	// сервис откатывается на fixture, чтобы карта не оставалась пустой.
	Mode string
}

type ModerationConfig struct {
	FlagThreshold int
}

type RankingConfig struct {
	// LocalZipCodes - почтовые индексы, входящие в "локальный" рейтинг
	LocalZipCodes []string
}

type SeasonConfig struct {
	Year int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// .env опционален: в контейнере конфигурация приходит из окружения
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !strings.Contains(err.Error(), "no such file") {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			LeaderboardTTL: time.Duration(viper.GetInt("LEADERBOARD_CACHE_TTL")) * time.Second,
			RouteShareTTL:  time.Duration(viper.GetInt("ROUTE_SHARE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:       viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup: viper.GetString("WORKER_CONSUMER_GROUP"),
			BatchSize:     viper.GetInt("WORKER_BATCH_SIZE"),
		},
		DataSource: DataSourceConfig{
			Mode: viper.GetString("DATA_SOURCE"),
		},
		Moderation: ModerationConfig{
			FlagThreshold: viper.GetInt("FLAG_THRESHOLD"),
		},
		Ranking: RankingConfig{
			LocalZipCodes: parseZipCodes(viper.GetString("LOCAL_ZIP_CODES")),
		},
		Season: SeasonConfig{
			Year: viper.GetInt("SEASON_YEAR"),
		},
	}

	// Set default values if not provided
	if cfg.Cache.LeaderboardTTL == 0 {
		cfg.Cache.LeaderboardTTL = 60 * time.Second
	}
	if cfg.Cache.RouteShareTTL == 0 {
		cfg.Cache.RouteShareTTL = 30 * 24 * time.Hour
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "rank-recompute-workers"
	}
	if cfg.Worker.BatchSize == 0 {
		cfg.Worker.BatchSize = 20
	}
	if cfg.DataSource.Mode == "" {
		cfg.DataSource.Mode = DataSourcePostgres
	}
	if cfg.Moderation.FlagThreshold == 0 {
		cfg.Moderation.FlagThreshold = 15
	}
	if len(cfg.Ranking.LocalZipCodes) == 0 {
		// Dallas zip codes по умолчанию
		cfg.Ranking.LocalZipCodes = []string{
			"75201", "75205", "75206", "75208", "75209",
			"75214", "75218", "75219", "75230", "75240",
		}
	}
	if cfg.Season.Year == 0 {
		cfg.Season.Year = time.Now().Year()
	}

	return cfg, nil
}

func parseZipCodes(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
