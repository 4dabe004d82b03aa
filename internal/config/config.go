package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	Dataset       Dataset       `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	StatsSnapshot StatsSnapshot `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Auth struct {
	SecretKey string `mapstructure:"secret_key"`
	// Credencial única do dashboard. A senha é armazenada como hash bcrypt;
	// não existe caminho de comparação em texto puro.
	Username           string `mapstructure:"auth_username"`
	PasswordHash       string `mapstructure:"auth_password_hash"`
	UserDisabled       bool   `mapstructure:"auth_user_disabled"`
	TokenExpireMinutes int    `mapstructure:"access_token_expire_minutes"`
}

// Dataset define a origem dos dados de pedidos. SourceType aceita
// "url", "file" ou "postgres".
type Dataset struct {
	SourceType string `mapstructure:"dataset_source_type"`
	URL        string `mapstructure:"dataset_url"`
	FilePath   string `mapstructure:"dataset_file_path"`
	Table      string `mapstructure:"dataset_table"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type StatsSnapshot struct {
	CronSchedule string `mapstructure:"stats_snapshot_cron"`
	Enabled      bool   `mapstructure:"stats_snapshot_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_USERNAME", "admin")
	// Hash bcrypt de "password123", a credencial de demonstração
	viper.SetDefault("AUTH_PASSWORD_HASH", "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")
	viper.SetDefault("AUTH_USER_DISABLED", false)
	viper.SetDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 30)

	viper.SetDefault("DATASET_SOURCE_TYPE", "file")
	viper.SetDefault("DATASET_URL", "")
	viper.SetDefault("DATASET_FILE_PATH", "data/shopify.csv")
	viper.SetDefault("DATASET_TABLE", "orders")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/retail")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("STATS_SNAPSHOT_CRON", "0 6 * * *")
	viper.SetDefault("STATS_SNAPSHOT_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile tenta carregar o arquivo .env das localizações conhecidas
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}
}
