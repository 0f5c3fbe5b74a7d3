package main

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all environment variables for the storefront.
type Config struct {
	Port       string        // HTTP port (default: 3000)
	Env        string        // "production" switches to JSON logging
	DataDir    string        // directory holding products.json / users.json
	UploadDir  string        // directory for uploaded product images
	SessionTTL time.Duration // session lifetime (default: 24h)
}

// LoadConfig loads environment variables into a Config struct, applying
// defaults for anything unset.
func LoadConfig() *Config {
	cfg := &Config{
		Port:      os.Getenv("PORT"),
		Env:       os.Getenv("APP_ENV"),
		DataDir:   os.Getenv("DATA_DIR"),
		UploadDir: os.Getenv("UPLOAD_DIR"),
	}

	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}

	ttlHours := 24
	if v := os.Getenv("SESSION_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttlHours = n
		}
	}
	cfg.SessionTTL = time.Duration(ttlHours) * time.Hour

	return cfg
}

// ProductsFile is the path of the product store file.
func (c *Config) ProductsFile() string {
	return filepath.Join(c.DataDir, "products.json")
}

// UsersFile is the path of the credential store file.
func (c *Config) UsersFile() string {
	return filepath.Join(c.DataDir, "users.json")
}
