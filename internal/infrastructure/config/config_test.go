package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, BackendDynamoDB, cfg.StorageBackend)
	assert.Equal(t, MirrorAuto, cfg.MirrorTable)
	assert.Equal(t, "us-east-1", cfg.DynamoDB.Region)
	assert.Equal(t, "client_orders", cfg.DynamoDB.ClientOrdersTable)
	assert.Equal(t, 10, cfg.Postgres.MaxOpenConns)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("STORAGE_BACKEND", "Postgres")
	t.Setenv("DATABASE_DSN", "postgres://printhub@localhost/printhub")
	t.Setenv("MIRROR_TABLE", "disabled")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("CLIENT_ORDERS_TABLE", "client_orders_v2")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendPostgres, cfg.StorageBackend)
	assert.Equal(t, "postgres://printhub@localhost/printhub", cfg.Postgres.DSN)
	assert.Equal(t, MirrorDisabled, cfg.MirrorTable)
	assert.Equal(t, 25, cfg.Postgres.MaxOpenConns)
	assert.Equal(t, "client_orders_v2", cfg.DynamoDB.ClientOrdersTable)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"dynamodb", Config{StorageBackend: BackendDynamoDB, MirrorTable: MirrorAuto}, true},
		{"postgres without dsn", Config{StorageBackend: BackendPostgres, MirrorTable: MirrorAuto}, false},
		{"postgres with dsn", Config{StorageBackend: BackendPostgres, MirrorTable: MirrorEnabled, Postgres: PostgresConfig{DSN: "x"}}, true},
		{"unknown backend", Config{StorageBackend: "mysql", MirrorTable: MirrorAuto}, false},
		{"unknown mirror mode", Config{StorageBackend: BackendDynamoDB, MirrorTable: "maybe"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
