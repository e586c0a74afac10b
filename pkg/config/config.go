package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Drivers de almacenamiento soportados.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	DB    DBConfig
	JWT   JWTConfig
	HTTP  HTTPConfig
	Mail  MailConfig
	Redis RedisConfig
	Auth  AuthConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env         string // development, staging, production
	Name        string
	LogLevel    string
	FrontendURL string // base de los enlaces que se envían por correo (reset de contraseña)
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	Driver      string // postgres | memory
	AutoMigrate bool
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración del token de sesión.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// TTL devuelve la validez del token como duración.
func (c JWTConfig) TTL() time.Duration {
	return time.Duration(c.Expiration) * time.Minute
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	AllowOrigin string // CORS
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// MailConfig credenciales SMTP. Sin Host los correos solo se registran en el log.
type MailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	FromName string
}

// Enabled indica si hay un servidor SMTP configurado.
func (c MailConfig) Enabled() bool {
	return c.Host != "" && c.User != ""
}

// RedisConfig conexión opcional a Redis (límite de reenvíos de OTP compartido entre instancias).
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled indica si hay Redis configurado.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// AuthConfig parámetros del ciclo de vida de la cuenta.
type AuthConfig struct {
	OTPResendLimit  int
	OTPResendWindow time.Duration
	// OTPVerifyLimit intentos de verificación por email dentro de OTPResendWindow.
	OTPVerifyLimit int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, JWT_SECRET, MAIL_HOST, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// PORT es la variable que usan los PaaS; HTTP_PORT tiene prioridad.
	port := getInt(v, "PORT", 5000)

	cfg := &Config{
		App: AppConfig{
			Env:         getString(v, "APP_ENV", "development"),
			Name:        getString(v, "APP_NAME", "stockmate-api"),
			LogLevel:    getString(v, "LOG_LEVEL", "info"),
			FrontendURL: strings.TrimRight(getString(v, "APP_FRONTEND_URL", "http://localhost:3000"), "/"),
		},
		DB: DBConfig{
			Driver:      strings.ToLower(getString(v, "STORAGE_DRIVER", StoragePostgres)),
			AutoMigrate: getBool(v, "DB_AUTO_MIGRATE", true),
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "stockmate"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 7*24*60),
			Issuer:     getString(v, "JWT_ISSUER", "stockmate-api"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", port),
			AllowOrigin: getString(v, "CORS_ALLOW_ORIGINS", "*"),
		},
		Mail: MailConfig{
			Host:     getString(v, "MAIL_HOST", ""),
			Port:     getInt(v, "MAIL_PORT", 587),
			User:     getString(v, "MAIL_USER", ""),
			Password: getString(v, "MAIL_PASSWORD", ""),
			FromName: getString(v, "MAIL_FROM_NAME", "StockMate"),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", ""),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		Auth: AuthConfig{
			OTPResendLimit:  getInt(v, "OTP_RESEND_LIMIT", 3),
			OTPResendWindow: time.Duration(getInt(v, "OTP_RESEND_WINDOW_MINUTES", 10)) * time.Minute,
			OTPVerifyLimit:  getInt(v, "OTP_VERIFY_LIMIT", 5),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rechaza configuraciones con las que el servicio no puede arrancar.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("config: JWT_SECRET es obligatorio")
	}
	if c.JWT.Expiration <= 0 {
		return errors.New("config: JWT_EXPIRATION_MINUTES debe ser positivo")
	}
	switch c.DB.Driver {
	case StoragePostgres, StorageMemory:
	default:
		return fmt.Errorf("config: STORAGE_DRIVER desconocido %q", c.DB.Driver)
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
