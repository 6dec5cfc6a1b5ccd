package core

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	// ServerConfig holds the API server settings.
	ServerConfig struct {
		Host               string
		Port               int
		AllowedOrigins     []string
		JWTExpirationDelta time.Duration
		ShutdownTimeout    time.Duration
	}

	// DatabaseConfig holds the backing store settings.
	DatabaseConfig struct {
		Engine        string
		Name          string
		User          string
		Password      string
		AdminUser     string
		AdminPassword string
		Host          string
		Port          int
		DisableTLS    bool
	}

	Config struct {
		Debug        bool
		TestMode     bool
		Env          string
		AppName      string
		SecretKey    string
		Build        string
		RollbarToken string
		Server       ServerConfig
		Database     DatabaseConfig
	}
)

func (c DatabaseConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Conf is the application configuration; loaded once at startup.
var Conf *Config

func init() {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Tutor1")
	v.SetDefault("secretKey", "h^$cegm2emy-wer)enb$+57=dz&uoxh2(h!x)#*c2(#yg4poq5")
	v.SetDefault("build", "dev")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.allowedOrigins", []string{"*"})
	v.SetDefault("server.jwtExpirationDelta", 24*time.Hour)
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("database.engine", "postgres")
	v.SetDefault("database.name", "tutor1")
	v.SetDefault("database.user", "tutor1")
	v.SetDefault("database.password", "")
	v.SetDefault("database.adminUser", "")
	v.SetDefault("database.adminPassword", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.disableTLS", true)

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	if env == "" {
		env = "DEV"
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	Conf = &Config{
		Debug:        v.GetBool("debug"),
		TestMode:     env == "TEST",
		Env:          env,
		AppName:      v.GetString("appName"),
		SecretKey:    v.GetString("secretKey"),
		Build:        v.GetString("build"),
		RollbarToken: v.GetString("rollbarToken"),
		Server: ServerConfig{
			Host:               v.GetString("server.host"),
			Port:               v.GetInt("server.port"),
			AllowedOrigins:     v.GetStringSlice("server.allowedOrigins"),
			JWTExpirationDelta: v.GetDuration("server.jwtExpirationDelta"),
			ShutdownTimeout:    v.GetDuration("server.shutdownTimeout"),
		},
		Database: DatabaseConfig{
			Engine:        v.GetString("database.engine"),
			Name:          v.GetString("database.name"),
			User:          v.GetString("database.user"),
			Password:      v.GetString("database.password"),
			AdminUser:     v.GetString("database.adminUser"),
			AdminPassword: v.GetString("database.adminPassword"),
			Host:          v.GetString("database.host"),
			Port:          v.GetInt("database.port"),
			DisableTLS:    v.GetBool("database.disableTLS"),
		},
	}
}
