package config

type Ops struct {
	ListenAddress string `env:"OPS_LISTEN_ADDRESS" envDefault:":9090"`
	AppName       string `env:"APP_NAME" envDefault:"tender-bot"`
	AppVersion    string `env:"APP_VERSION" envDefault:"dev"`
}
