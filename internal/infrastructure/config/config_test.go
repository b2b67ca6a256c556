package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	return dir
}

func TestLoadFrom_DefaultsAndFile(t *testing.T) {
	dir := writeConfig(t, "config.yaml", `
server:
  port: 8081
database:
  driver: sqlite
  path: /tmp/catalog.db
`)

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/catalog.db?_journal_mode=WAL&_busy_timeout=5000", cfg.Database.DSN())
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
}

func TestDatabaseConfig_SQLiteDSN(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"文件库", "data/catalog.db", "data/catalog.db?_journal_mode=WAL&_busy_timeout=2000"},
		{"已有参数", "file:catalog.db?cache=private", "file:catalog.db?cache=private&_journal_mode=WAL&_busy_timeout=2000"},
		{"内存库", ":memory:", ":memory:"},
		{"共享内存库", "file:t1?mode=memory&cache=shared", "file:t1?mode=memory&cache=shared"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DatabaseConfig{Driver: DriverSQLite, Path: tt.path, BusyTimeout: 2 * time.Second}
			assert.Equal(t, tt.want, d.DSN())
		})
	}
}

func TestLoadFrom_EnvOverride(t *testing.T) {
	dir := writeConfig(t, "config.yaml", `
server:
  port: 8081
database:
  driver: mysql
  host: db.local
  port: 3306
  user: catalog
  password: from-file
  dbname: catalog
  loc: Asia/Shanghai
`)
	t.Setenv("CATALOG_DATABASE_PASSWORD", "from-env")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t,
		"catalog:from-env@tcp(db.local:3306)/catalog?charset=utf8mb4&parseTime=false&loc=Asia%2FShanghai",
		cfg.Database.DSN())
}

func TestLoadFrom_EnvSpecificFile(t *testing.T) {
	dir := writeConfig(t, "config.prod.yaml", `
server:
  port: 9000
  mode: release
`)
	t.Setenv("CATALOG_ENV", "prod")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"端口越界", "server:\n  port: 70000\n"},
		{"未知驱动", "database:\n  driver: oracle\n"},
		{"mysql缺少host", "database:\n  driver: mysql\n  dbname: x\n"},
		{"credentials配合通配origin", "cors:\n  allow_credentials: true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, "config.yaml", tt.body)
			_, err := LoadFrom(dir)
			assert.Error(t, err)
		})
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	_, err := LoadFrom(t.TempDir())
	assert.Error(t, err)
}

// 仓库自带的config/config.yaml必须能通过校验
func TestLoadFrom_ShippedConfig(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join("..", "..", "..", "config"))
	require.NoError(t, err)

	assert.Equal(t, 5001, cfg.Server.Port)
	assert.Equal(t, time.Second, cfg.Server.SlowRequest)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.False(t, cfg.Database.ParseTime)
	assert.False(t, cfg.Database.InMemory())
	assert.Equal(t, 5*time.Second, cfg.Database.BusyTimeout)
	assert.Equal(t, 600, cfg.CORS.MaxAge)
}
