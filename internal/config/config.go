// Package config предоставляет структуры и функцию для парсинга и загрузки конфига.
//
// Конфигурация читается один раз на старте процесса и далее не изменяется:
// секрет подписи токенов, allow-list адресов, таблица маршрутизации шлюза
// и адреса внешних сервисов передаются конструкторам как значения.
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек всех сервисов.
type Config struct {
	Env                     string `yaml:"env"`
	StorageConnectionString string `yaml:"storage_connection_string"`
	HTTPServer              `yaml:"http_server"`
	JWTToken                `yaml:"jwttoken"`
	Gateway                 `yaml:"gateway"`
	OrderClient             `yaml:"order_client"`
	RedisConnection         `yaml:"redis_connection"`
	RabbitMQ                `yaml:"rabbitmq"`
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// JWTToken структура для работы с jwt-токеном.
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key"`
	TokenTTL     time.Duration `yaml:"token_ttl"`
}

// Gateway структура для настройки пограничного шлюза: список разрешённых
// адресов источника, пути-исключения для служебных проб и таблица маршрутов.
// Пустой AllowList означает разрешающую политику.
type Gateway struct {
	AllowList      []string `yaml:"allow_list"`
	ExemptPrefixes []string `yaml:"exempt_prefixes"`
	Routes         []Route  `yaml:"routes"`
}

// Route описывает один маршрут шлюза: префикс пути и адрес целевого сервиса.
type Route struct {
	Prefix string `yaml:"prefix"`
	Target string `yaml:"target"`
}

// OrderClient структура для настройки клиента сервиса заказов.
type OrderClient struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// RedisConnection структура для настройки подключения к redis.
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis"`
	Password     string        `yaml:"password"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	TimeoutRedis time.Duration `yaml:"timeoutredis"`
}

// RabbitMQ структура для настройки подключения к брокеру сообщений.
type RabbitMQ struct {
	Connection string        `yaml:"connection"`
	Retries    int           `yaml:"retries"`
	Delay      time.Duration `yaml:"delay"`
}

// MustLoad загружает конфиг по пути из CONFIG_PATH и завершает процесс при ошибке.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}
