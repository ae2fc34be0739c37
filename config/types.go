package config

import "time"

type MongoDBConfig struct {
	URI    string
	DBName string
}

type PostgreSQLConfig struct {
	DBHost     string
	DBName     string
	DBPort     string
	DBUsername string
	DBPassword string
}

// Enabled reports whether the notification ledger database is configured.
func (c PostgreSQLConfig) Enabled() bool {
	return c.DBHost != ""
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
}

type MidtransConfig struct {
	ServerKey  string
	Production bool
}

type PaymentConfig struct {
	// TransitionPolicy is "latest" (default) or "strict".
	TransitionPolicy    string
	Expiry              time.Duration
	ExpiryCheckInterval time.Duration
}

type TracingConfig struct {
	CollectorHost string
	// SampleRatio is the fraction of root traces kept, between 0 and 1.
	SampleRatio float64
}

type SMTPConfig struct {
	Server   string
	Port     int
	Sender   string
	Password string
}

func (c SMTPConfig) Enabled() bool {
	return c.Server != "" && c.Sender != ""
}

type ShippingConfig struct {
	BaseURL string
	APIKey  string
}
