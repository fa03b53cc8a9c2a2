package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the catalog server configuration.
type Config struct {
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	DBDriver      string `mapstructure:"DB_DRIVER"`
	JWTSecret     string `mapstructure:"JWT_SECRET"`
	Port          string `mapstructure:"PORT"`
	UploadDir     string `mapstructure:"UPLOAD_DIR"`
	Languages     string `mapstructure:"LANGUAGES"`
	AdminUsername string `mapstructure:"ADMIN_USERNAME"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`
	CORSOrigins   string `mapstructure:"CORS_ORIGINS"`
}

var AppConfig *Config

func setServerDefaults(v *viper.Viper) {
	v.SetDefault("DATABASE_URL", "catalog.db")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("LANGUAGES", "en,vi,fr,ja")
	v.SetDefault("ADMIN_USERNAME", "")
	v.SetDefault("ADMIN_PASSWORD", "")
	v.SetDefault("CORS_ORIGINS", "")
}

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	v := viper.New()
	v.AddConfigPath(".")
	v.SetConfigName(".env")
	v.SetConfigType("env")

	// Defaults make every key known to viper so AutomaticEnv reaches Unmarshal.
	setServerDefaults(v)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	if err := v.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	if AppConfig.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET is empty, write endpoints will reject every token")
	}
}
