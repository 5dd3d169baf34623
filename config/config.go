package config

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Config is shared by every service binary. Values come from an optional
// YAML file named by CONFIG_PATH and are overridden by the environment.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Server   ServerConfig   `yaml:"server"`
	Feed     FeedConfig     `yaml:"feed"`
	Cache    CacheConfig    `yaml:"cache"`
	Push     PushConfig     `yaml:"push"`
	Gateway  GatewayConfig  `yaml:"gateway"`
}

type LogConfig struct {
	Level             string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Encoding          string `yaml:"encoding" env:"LOG_ENCODING" env-default:"json"`
	Development       bool   `yaml:"development" env:"LOG_DEVELOPMENT" env-default:"false"`
	DisableCaller     bool   `yaml:"disable_caller" env:"LOG_DISABLE_CALLER" env-default:"false"`
	DisableStacktrace bool   `yaml:"disable_stacktrace" env:"LOG_DISABLE_STACKTRACE" env-default:"true"`
}

type DatabaseConfig struct {
	Host           string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port           string `yaml:"port" env:"DB_PORT" env-default:"5432"`
	Name           string `yaml:"name" env:"DB_NAME" env-default:"eatery"`
	User           string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password       string `yaml:"-" env:"DB_PASSWORD"`
	SSLMode        string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
	MaxOpenConns   int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns   int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS" env-default:"5"`
	MigrateOnStart bool   `yaml:"migrate_on_start" env:"DB_MIGRATE_ON_START" env-default:"true"`
}

// DSN renders the lib/pq keyword/value connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type KafkaConfig struct {
	Broker         string `yaml:"broker" env:"KAFKA_BROKER" env-default:"localhost:9092"`
	IngestionTopic string `yaml:"ingestion_topic" env:"KAFKA_INGESTION_TOPIC" env-default:"ingestion"`
	GroupID        string `yaml:"group_id" env:"KAFKA_GROUP_ID" env-default:"eatery-svc"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" env:"HTTP_ADDR" env-default:":8081"`
}

type FeedConfig struct {
	URL            string        `yaml:"url" env:"DINING_FEED_URL" env-default:"https://now.dining.cornell.edu/api/1.0/dining/eateries.json"`
	StaticPath     string        `yaml:"static_path" env:"STATIC_EATERIES_PATH" env-default:"static_sources/external_eateries.json"`
	Timeout        time.Duration `yaml:"timeout" env:"DINING_FEED_TIMEOUT" env-default:"30s"`
	Schedule       string        `yaml:"schedule" env:"INGEST_SCHEDULE" env-default:"@every 12h"`
	RunOnStart     bool          `yaml:"run_on_start" env:"INGEST_RUN_ON_START" env-default:"true"`
	OrderQRBaseURL string        `yaml:"order_qr_base_url" env:"ORDER_QR_BASE_URL" env-default:""`
}

type CacheConfig struct {
	TTL    time.Duration `yaml:"ttl" env:"CACHE_TTL" env-default:"1h"`
	Jitter time.Duration `yaml:"jitter" env:"CACHE_JITTER" env-default:"15m"`
}

type PushConfig struct {
	ProjectID       string `yaml:"project_id" env:"FCM_PROJECT_ID"`
	CredentialsFile string `yaml:"credentials_file" env:"FCM_CREDENTIALS_FILE"`
	Schedule        string `yaml:"schedule" env:"NOTIFY_SCHEDULE" env-default:"0 0 9 * * *"`
	DryRun          bool   `yaml:"dry_run" env:"NOTIFY_DRY_RUN" env-default:"false"`
}

type GatewayConfig struct {
	Addr         string        `yaml:"addr" env:"GATEWAY_ADDR" env-default:":8080"`
	EaterySvcURL string        `yaml:"eatery_svc_url" env:"EATERY_SVC_URL" env-default:"http://localhost:8081"`
	IngestSvcURL string        `yaml:"ingest_svc_url" env:"INGEST_SVC_URL" env-default:"http://localhost:8082"`
	Timeout      time.Duration `yaml:"timeout" env:"GATEWAY_TIMEOUT" env-default:"15s"`
}

// Load reads CONFIG_PATH when set and then applies the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return cfg, nil
	}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return cfg, nil
}

func MustInitPostgres(cfg DatabaseConfig, logger *zap.Logger) *sql.DB {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err = db.Ping(); err != nil {
		logger.Fatal("failed to ping database", zap.Error(err))
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg RedisConfig, logger *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Host + ":" + cfg.Port,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}

	return client
}

func NewKafkaReader(cfg KafkaConfig, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.Broker},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(cfg KafkaConfig, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Broker),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}
