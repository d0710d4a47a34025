package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App         AppConfig
	AWS         AWSConfig
	Tables      TablesConfig
	Auth        AuthConfig
	MercadoPago MercadoPagoConfig
	CORS        CORSConfig
	Log         LogConfig
}

type AppConfig struct {
	Port    string
	GinMode string
}

// AWSConfig targets DynamoDB. Local DynamoDB ignores credentials but the SDK
// still requires some, hence the "local" defaults.
type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	DynamoEndpoint  string
}

type TablesConfig struct {
	ServiceCalls string
	LineItems    string
	Transactions string
	Products     string
}

type AuthConfig struct {
	JWTSecret string
}

type MercadoPagoConfig struct {
	AccessToken string
	Mock        bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level string
}

// Load reads configuration from the environment. A .env file, when present, has
// already been loaded by godotenv/autoload in main.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return &Config{
		App: AppConfig{
			Port:    v.GetString("APP_PORT"),
			GinMode: v.GetString("GIN_MODE"),
		},
		AWS: AWSConfig{
			Region:          v.GetString("AWS_REGION"),
			AccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
			DynamoEndpoint:  v.GetString("DYNAMODB_ENDPOINT"),
		},
		Tables: TablesConfig{
			ServiceCalls: v.GetString("SERVICE_CALLS_TABLE"),
			LineItems:    v.GetString("LINE_ITEMS_TABLE"),
			Transactions: v.GetString("TRANSACTIONS_TABLE"),
			Products:     v.GetString("PRODUCTS_TABLE"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("JWT_SECRET"),
		},
		MercadoPago: MercadoPagoConfig{
			AccessToken: v.GetString("MERCADOPAGO_ACCESS_TOKEN"),
			Mock:        isTruthy(v.GetString("PAYMENT_GATEWAY_MOCK")) || isTruthy(v.GetString("MERCADOPAGO_MOCK")),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("SERVICE_CALLS_TABLE", "service_calls")
	v.SetDefault("LINE_ITEMS_TABLE", "line_items")
	v.SetDefault("TRANSACTIONS_TABLE", "financial_transactions")
	v.SetDefault("PRODUCTS_TABLE", "products")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
}

func isTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
