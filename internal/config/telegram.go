package config

type Bot struct {
	Token   string `env:"BOT_TOKEN,required"`
	AdminID int64  `env:"BOT_ADMIN_ID"` // 0 — бот доступен всем
}
