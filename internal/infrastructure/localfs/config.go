package localfs

type Config struct {
	Directory string `yaml:"directory"`
}
