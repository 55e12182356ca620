package config

import "time"

type MongoDBConfig struct {
	URI    string
	DBName string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

// UploadConfig selects where multipart files are staged before processing.
type UploadConfig struct {
	InMemory bool
	TempDir  string
}

type KafkaConfig struct {
	BrokerAddress string
	BrokerTopic   string
}

type TracingConfig struct {
	CollectorHost string
}

type AdminConfig struct {
	Email    string
	Password string
}

type ReconcileConfig struct {
	Interval time.Duration
}
