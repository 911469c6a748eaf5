package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"

	"social-im/config"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{
		Host:     "127.0.0.1",
		Port:     3306,
		Username: "root",
		Password: "secret",
		Database: "social_im",
		Charset:  "utf8mb4",
	})
	assert.Equal(t, "root:secret@tcp(127.0.0.1:3306)/social_im?charset=utf8mb4&parseTime=True&loc=Local", dsn)
}

func TestGormConfig(t *testing.T) {
	cfg := GormConfig("prod")
	assert.True(t, cfg.SkipDefaultTransaction)
	assert.True(t, cfg.PrepareStmt)
	assert.Equal(t, "user", cfg.NamingStrategy.TableName("User"))
	assert.NotNil(t, cfg.Logger.LogMode(logger.Silent))
}

func TestHealthCheck_Uninitialized(t *testing.T) {
	old := DB
	DB = nil
	defer func() { DB = old }()

	assert.Error(t, HealthCheck())
	assert.Error(t, AutoMigrate())
	assert.NoError(t, CloseDB())
}
