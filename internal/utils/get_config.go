package utils

import (
	"gopkg.in/yaml.v2"
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server configuration
	AppPort string `yaml:"APP_PORT"`
	LogDir  string `yaml:"LOG_DIR"`

	// Storage configuration
	DataDir    string `yaml:"DATA_DIR"`
	DataFile   string `yaml:"DATA_FILE"`
	BackupFile string `yaml:"BACKUP_FILE"`

	// Expiry alert configuration
	ExpiryHorizonDays int    `yaml:"EXPIRY_HORIZON_DAYS"`
	StartupAlertDelay string `yaml:"STARTUP_ALERT_DELAY"`
	AlertEmail        string `yaml:"ALERT_EMAIL"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`
}

var config Config

// LoadConfig reads config.yaml from the working directory. A missing or
// broken file leaves the defaults in place.
func LoadConfig() {
	if err := LoadConfigFile("config.yaml"); err != nil {
		log.Printf("Error loading config file: %s\n", err)
	}
}

func LoadConfigFile(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var loaded Config
	if err := yaml.Unmarshal(file, &loaded); err != nil {
		return err
	}

	config = loaded
	return nil
}

// ResetConfig drops any loaded values.
func ResetConfig() {
	config = Config{}
}

// GetConfig returns the value for key. Environment variables take precedence
// over config.yaml.
func GetConfig(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	switch key {
	case "APP_PORT":
		return config.AppPort
	case "LOG_DIR":
		return config.LogDir
	case "DATA_DIR":
		return config.DataDir
	case "DATA_FILE":
		return config.DataFile
	case "BACKUP_FILE":
		return config.BackupFile
	case "EXPIRY_HORIZON_DAYS":
		if config.ExpiryHorizonDays == 0 {
			return ""
		}
		return strconv.Itoa(config.ExpiryHorizonDays)
	case "STARTUP_ALERT_DELAY":
		return config.StartupAlertDelay
	case "ALERT_EMAIL":
		return config.AlertEmail
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	default:
		return ""
	}
}

func GetConfigString(key, defaultVal string) string {
	if v := GetConfig(key); v != "" {
		return v
	}
	return defaultVal
}

func GetConfigInt(key string, defaultVal int) int {
	v := GetConfig(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func GetConfigDuration(key string, defaultVal time.Duration) time.Duration {
	v := GetConfig(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
