package database

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Driver:         DriverMySQL,
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "tasks",
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "oracle"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported database driver")
		assert.Nil(t, db)
	})

	t.Run("SQLite In Memory", func(t *testing.T) {
		db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
		assert.NoError(t, err)
		assert.NotNil(t, db)
	})
}

func TestSSLMode(t *testing.T) {
	assert.Equal(t, "disable", sslMode(""))
	assert.Equal(t, "require", sslMode("require"))
}

func TestPostgresDSN(t *testing.T) {
	cfg := Config{
		Host:     "db.internal",
		Port:     5433,
		User:     "sync user",
		Password: "p@ss w'rd/=?",
		Name:     "tareas",
	}

	u, err := url.Parse(postgresDSN(cfg, 7))
	require.NoError(t, err)

	assert.Equal(t, "postgres", u.Scheme)
	assert.Equal(t, "db.internal", u.Hostname())
	assert.Equal(t, "5433", u.Port())
	assert.Equal(t, "/tareas", u.Path)
	assert.Equal(t, "sync user", u.User.Username())
	password, ok := u.User.Password()
	assert.True(t, ok)
	assert.Equal(t, "p@ss w'rd/=?", password)
	assert.Equal(t, "disable", u.Query().Get("sslmode"))
	assert.Equal(t, "7", u.Query().Get("connect_timeout"))
}
