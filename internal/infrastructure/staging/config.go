package staging

type Config struct {
	Directory string `yaml:"directory"`
}
