package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Platform     Platform     `mapstructure:",squash"`
	TrackingSync TrackingSync `mapstructure:",squash"`
	SecretKey    string       `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Platform centraliza o acesso ao backend da plataforma de delivery. A versão
// original do painel apontava para três hosts distintos; aqui existe uma única
// base configurável com prefixos por recurso: APIPrefix para as rotas
// administrativas e GeoPrefix para o serviço de geolocalização.
type Platform struct {
	BaseURL        string `mapstructure:"platform_base_url"`
	APIPrefix      string `mapstructure:"platform_api_prefix"`
	GeoPrefix      string `mapstructure:"platform_geo_prefix"`
	AdminToken     string `mapstructure:"platform_admin_token"`
	TimeoutSeconds int    `mapstructure:"platform_timeout_seconds"`

	// Derivados de BaseURL + prefixos em NewConfig.
	APIURL string `mapstructure:"-"`
	GeoURL string `mapstructure:"-"`
}

type TrackingSync struct {
	IntervalSeconds int  `mapstructure:"tracking_sync_interval_seconds"`
	Enabled         bool `mapstructure:"tracking_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/wendy_admin")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("PLATFORM_BASE_URL", "https://wendy-backend1.onrender.com")
	viper.SetDefault("PLATFORM_API_PREFIX", "/api")
	viper.SetDefault("PLATFORM_GEO_PREFIX", "/geolocation")
	// Token fixo de administrador. Não há autenticação real junto à
	// plataforma; a presença do token é o único gate de sessão.
	viper.SetDefault("PLATFORM_ADMIN_TOKEN", "admin-token-simulado")
	viper.SetDefault("PLATFORM_TIMEOUT_SECONDS", 30)

	viper.SetDefault("TRACKING_SYNC_INTERVAL_SECONDS", 30)
	viper.SetDefault("TRACKING_SYNC_ENABLED", true)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Carregar o .env antes do viper, quando existir.
	if err := godotenv.Load(); err != nil {
		logrus.Info("Arquivo .env não encontrado, usando variáveis de ambiente")
	}

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	base := strings.TrimRight(config.Platform.BaseURL, "/")
	config.Platform.APIURL = base + config.Platform.APIPrefix
	config.Platform.GeoURL = base + config.Platform.GeoPrefix

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}
