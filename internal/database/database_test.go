package database_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/noah-isme/formation-api/internal/database"
	"github.com/noah-isme/formation-api/internal/models"
)

func TestMigrateCreatesEveryTable(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:migrate?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))
	for _, model := range models.All() {
		require.True(t, db.Migrator().HasTable(model))
	}
}

func TestConnectRedisOptional(t *testing.T) {
	client, err := database.ConnectRedis(context.Background(), "")
	require.NoError(t, err)
	require.Nil(t, client)

	mini := miniredis.RunT(t)
	client, err = database.ConnectRedis(context.Background(), "redis://"+mini.Addr())
	require.NoError(t, err)
	require.NotNil(t, client)
	require.NoError(t, client.Close())
}

func TestConnectRedisRejectsInvalidURL(t *testing.T) {
	_, err := database.ConnectRedis(context.Background(), "://nope")
	require.Error(t, err)
}

func TestConnectPostgresRequiresDSN(t *testing.T) {
	_, err := database.ConnectPostgres("")
	require.Error(t, err)
}

func TestConnectNATSOptional(t *testing.T) {
	conn, err := database.ConnectNATS("", "test")
	require.NoError(t, err)
	require.Nil(t, conn)
}
