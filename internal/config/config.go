package config

import "time"

type Config struct {
	Environment    Environment
	Log            Log
	HTTP           HTTPServer
	BaseURL        string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	DatabaseDriver string `env:"DATABASE_DRIVER" envDefault:"mysql"` // mysql | sqlite
	DatabaseURL    string `env:"DATABASE_URL"`

	SMTP   SMTP   `envPrefix:"SMTP_"`
	Asaas  Asaas  `envPrefix:"ASAAS_"`
	Auth   Auth   `envPrefix:"AUTH_"`
	Poller Poller `envPrefix:"POLLER_"`
}

type SMTP struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT" envDefault:"587"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	From     string `env:"FROM"`
	FromName string `env:"FROM_NAME" envDefault:"Agência de Turismo"`
	// implicit TLS (port 465); STARTTLS is used opportunistically otherwise
	Secure  bool          `env:"SECURE" envDefault:"false"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

type Asaas struct {
	BaseApiURL   string `env:"BASE_API_URL" envDefault:"https://api.asaas.com/v3"`
	APIKey       string `env:"API_KEY"`
	WebhookToken string `env:"WEBHOOK_TOKEN"`
}

type Auth struct {
	JWTSecret string `env:"JWT_SECRET"`
}

type Poller struct {
	Enabled   bool          `env:"ENABLED" envDefault:"true"`
	Interval  time.Duration `env:"INTERVAL" envDefault:"1m"`
	Lookback  time.Duration `env:"LOOKBACK" envDefault:"72h"`
	BatchSize int           `env:"BATCH_SIZE" envDefault:"50"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
