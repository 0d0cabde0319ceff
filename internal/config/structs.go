package config

import (
	"time"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Storage   Storage
	Title     string
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	Domain       string  // domain name for the webserver
	Port         int     // listening port for the webserver
	ShutDownTime int     // wait time for shutdown
	URL          string  // base url for the webserver
	Session      Session // session settings
}

// Storage implements object storage settings for uploaded images.
type Storage struct {
	Driver        string // disk or minio
	PublicBaseURL string // prefix for served image URLs, e.g. /storage or a CDN base
	Disk          Disk
	Minio         Minio
}

// Disk implements local filesystem storage settings.
type Disk struct {
	Root string // directory uploaded files are written under
}

// Minio implements MinIO/S3 storage settings.
type Minio struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}
