package config

// Supported database engines.
const (
	DBEngineSQLite = "sqlite"
	DBEngineMySQL  = "mysql"
)

// DBFileMemory is the sqlite file value selecting an in-memory database.
const DBFileMemory = ":memory:"

// Supported storage drivers.
const (
	StorageDriverDisk  = "disk"
	StorageDriverMinio = "minio"
)

// DB holds the database configuration settings.
type DB struct {
	Engine   string // sqlite or mysql
	File     string // database file path (sqlite only)
	Extras   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}
