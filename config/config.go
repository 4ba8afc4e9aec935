package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

type Postgres struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	Name     string `env:"DB_NAME" envDefault:"restaurant"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"1h"`
}

func (p Postgres) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Name, p.SSLMode)
}

type Redis struct {
	Host string `env:"REDIS_HOST" envDefault:"localhost"`
	Port string `env:"REDIS_PORT" envDefault:"6379"`
}

type Kafka struct {
	Broker           string `env:"KAFKA_BROKER" envDefault:"localhost:9092"`
	SettlementsTopic string `env:"KAFKA_SETTLEMENTS_TOPIC" envDefault:"restaurant-settlements"`
	GroupID          string `env:"KAFKA_GROUP_ID" envDefault:"settlement-svc"`
}

type Log struct {
	Level     string `env:"LOG_LEVEL" envDefault:"info"`
	Format    string `env:"LOG_FORMAT" envDefault:"json"`
	AddSource bool   `env:"LOG_ADD_SOURCE" envDefault:"false"`
}

type HTTP struct {
	Addr         string        `env:"HTTP_ADDR" envDefault:":8081"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
}

type Upstreams struct {
	VisitSvcURL      string `env:"VISIT_SVC_URL" envDefault:"http://localhost:8081"`
	SettlementSvcURL string `env:"SETTLEMENT_SVC_URL" envDefault:"http://localhost:8082"`
}

// Config is the environment shared by all services. Each service reads only
// the sections it needs.
type Config struct {
	Postgres  Postgres
	Redis     Redis
	Kafka     Kafka
	Log       Log
	HTTP      HTTP
	Upstreams Upstreams

	JWTSecret string `env:"JWT_SECRET"`

	MinReservationDuration time.Duration `env:"MIN_RESERVATION_DURATION" envDefault:"30m"`
	PaymentLockTTL         time.Duration `env:"PAYMENT_LOCK_TTL" envDefault:"30s"`
	QRBaseURL              string        `env:"QR_BASE_URL" envDefault:"http://localhost:8080"`
}

// Load reads an optional .env file and then parses the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	return cfg
}

func MustInitPostgres(cfg Postgres) *sql.DB {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db
}

func MustInitRedis(cfg Redis) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Host + ":" + cfg.Port,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(cfg Kafka) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.Broker},
		Topic:   cfg.SettlementsTopic,
		GroupID: cfg.GroupID,
	})
}

func NewKafkaWriter(cfg Kafka) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.Broker),
		Topic:    cfg.SettlementsTopic,
		Balancer: &kafka.Hash{},
	}
}
