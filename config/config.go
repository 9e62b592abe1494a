package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"citystore/internal/infrastructure/broker"
	"citystore/internal/infrastructure/database"
	"citystore/internal/infrastructure/localfs"
	"citystore/internal/infrastructure/minio"
	"citystore/internal/infrastructure/staging"
	"citystore/pkg/logger"
)

const (
	BackendLocal = "local"
	BackendMinIO = "minio"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	Default         DefaultConfig          `yaml:"default"`
	Storage         StorageConfig          `yaml:"storage"`
	Staging         staging.Config         `yaml:"staging"`
	MinIOClient     minio.ClientConfig     `yaml:"minio_client"`
	MinIOStore      minio.StoreConfig      `yaml:"minio_store"`
	DBConfig        database.Config        `yaml:"db_config"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	Logger          logger.Config          `yaml:"logger"`
}

type DefaultConfig struct {
	Address   string `yaml:"address"`
	PublicURL string `yaml:"public_url"`
}

// StorageConfig selects which blob store implementation serves images.
type StorageConfig struct {
	Backend string         `yaml:"backend"`
	Local   localfs.Config `yaml:"local"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if _, err := os.Stat(".env"); err == nil {
			if err := godotenv.Load(); err != nil {
				return nil, Error{
					reason: err.Error(),
				}
			}
		}
	}

	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.Default.Address == "" {
		return Error{reason: "default.address is required"}
	}

	if c.Storage.Backend != BackendLocal && c.Storage.Backend != BackendMinIO {
		return Error{reason: "storage.backend must be \"local\" or \"minio\""}
	}

	if c.Storage.Backend == BackendLocal && c.Storage.Local.Directory == "" {
		return Error{reason: "storage.local.directory is required for the local backend"}
	}

	if c.Staging.Directory == "" {
		return Error{reason: "staging.directory is required"}
	}

	return nil
}
