package database

type Config struct {
	URI               string
	DBName            string `yaml:"dbname"`
	ConnectionTimeout int64  `yaml:"connection_timeout_in_ms"`
	QueryTimeout      int64  `yaml:"query_timeout_in_ms"`
}
