package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBPort         string
	AppPort        string
	AppEnv         string
	DefaultStaffID string
	UPIPayeeVPA    string
	UPIPayeeName   string
	QRServiceURL   string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:         os.Getenv("DB_HOST"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBPort:         os.Getenv("DB_PORT"),
		AppPort:        os.Getenv("APP_PORT"),
		AppEnv:         os.Getenv("APP_ENV"),
		DefaultStaffID: os.Getenv("DEFAULT_STAFF_ID"),
		UPIPayeeVPA:    os.Getenv("UPI_PAYEE_VPA"),
		UPIPayeeName:   os.Getenv("UPI_PAYEE_NAME"),
		QRServiceURL:   os.Getenv("QR_SERVICE_URL"),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	if cfg.DefaultStaffID == "" {
		cfg.DefaultStaffID = "owner"
	}
	if cfg.QRServiceURL == "" {
		cfg.QRServiceURL = "https://api.qrserver.com/v1/create-qr-code/"
	}

	return cfg
}
