package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort      string
	MetricsPort      string
	Environment      string
	FrontendURL      string
	JWTSecret        string
	MongoDBConfig    MongoDBConfig
	PostgreSQLConfig PostgreSQLConfig
	KafkaConfig      KafkaConfig
	MidtransConfig   MidtransConfig
	PaymentConfig    PaymentConfig
	TracingConfig    TracingConfig
	SMTPConfig       SMTPConfig
	ShippingConfig   ShippingConfig
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		Environment: os.Getenv("ENVIRONMENT"),
		FrontendURL: os.Getenv("FRONTEND_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		MongoDBConfig: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: os.Getenv("MONGODB_DB_NAME"),
		},
		PostgreSQLConfig: PostgreSQLConfig{
			DBHost:     os.Getenv("DB_HOST"),
			DBName:     os.Getenv("DB_NAME"),
			DBPort:     os.Getenv("DB_PORT"),
			DBUsername: os.Getenv("DB_USERNAME"),
			DBPassword: os.Getenv("DB_PASSWORD"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   os.Getenv("BROKER_TOPIC"),
		},
		MidtransConfig: MidtransConfig{
			ServerKey:  os.Getenv("MIDTRANS_SERVER_KEY"),
			Production: os.Getenv("MIDTRANS_ENVIRONMENT") == "production",
		},
		PaymentConfig: PaymentConfig{
			TransitionPolicy:    os.Getenv("PAYMENT_TRANSITION_POLICY"),
			Expiry:              durationFromEnv("PAYMENT_EXPIRY", 24*time.Hour),
			ExpiryCheckInterval: durationFromEnv("PAYMENT_EXPIRY_CHECK_INTERVAL", time.Minute),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
		SMTPConfig: SMTPConfig{
			Server:   os.Getenv("SMTP_SERVER"),
			Sender:   os.Getenv("SMTP_SENDER"),
			Password: os.Getenv("SMTP_PASSWORD"),
		},
		ShippingConfig: ShippingConfig{
			BaseURL: os.Getenv("RAJA_ONGKIR_BASE_URL"),
			APIKey:  os.Getenv("RAJA_ONGKIR_API_KEY"),
		},
	}

	if conf.MongoDBConfig.DBName == "" {
		conf.MongoDBConfig.DBName = "storefront"
	}

	if conf.ShippingConfig.BaseURL == "" {
		conf.ShippingConfig.BaseURL = "https://pro.rajaongkir.com"
	}

	brokerPartition, err := strconv.Atoi(os.Getenv("BROKER_PARTITION"))
	if err == nil {
		conf.KafkaConfig.BrokerPartition = brokerPartition
	}

	conf.TracingConfig.SampleRatio = 1
	sampleRatio, err := strconv.ParseFloat(os.Getenv("TRACING_SAMPLE_RATIO"), 64)
	if err == nil && sampleRatio >= 0 && sampleRatio <= 1 {
		conf.TracingConfig.SampleRatio = sampleRatio
	}

	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err == nil {
		conf.SMTPConfig.Port = smtpPort
	}

	return &conf
}

func durationFromEnv(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return fallback
	}

	return d
}
