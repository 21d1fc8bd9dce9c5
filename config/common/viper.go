package common

import (
	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/viper"
)

type Config struct {
	Viper *viper.Viper
}

func NewViper() *Config {
	config := viper.New()
	config.SetConfigFile(".env")
	config.AddConfigPath("../")
	config.AutomaticEnv()

	log.Trace("Checking file .env ....")
	if err := config.ReadInConfig(); err != nil {
		panic("failed read config")
	}
	return &Config{Viper: config}
}

func (c *Config) GetAppConfig() (appName string) {
	return c.Viper.GetString("APP_NAME")
}

func (c *Config) GetDatabaseConfig() (dbHost, dbUser, dbPassword, dbName, dbPort string) {
	dbHost = c.Viper.GetString("DB_HOSTNAME")
	dbUser = c.Viper.GetString("DB_USER")
	dbPassword = c.Viper.GetString("DB_PASSWORD")
	dbName = c.Viper.GetString("DB_NAME")
	dbPort = c.Viper.GetString("DB_PORT")

	return dbHost, dbUser, dbPassword, dbName, dbPort
}

func (c *Config) GetRedisConfig() (addr, password string, db int) {
	addr = c.Viper.GetString("REDIS_ADDR")
	password = c.Viper.GetString("REDIS_PASSWORD")
	db = c.Viper.GetInt("REDIS_DB")

	return addr, password, db
}

func (c *Config) GetSmtpConfig() (host string, port int, user, password, from string) {
	host = c.Viper.GetString("SMTP_HOST")
	port = c.Viper.GetInt("SMTP_PORT")
	user = c.Viper.GetString("SMTP_USER")
	password = c.Viper.GetString("SMTP_PASSWORD")
	from = c.Viper.GetString("SMTP_FROM")

	return host, port, user, password, from
}

func (c *Config) GetJwtConfig() []byte {
	jwtSecret := c.Viper.GetString("JWT_SECRET")
	return []byte(jwtSecret)
}
