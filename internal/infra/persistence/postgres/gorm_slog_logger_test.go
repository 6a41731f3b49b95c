package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"profile/config"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestGormSlogLogger_SlowThresholdFromConfig(t *testing.T) {
	cfg := &config.Config{Database: &config.DatabaseConfig{SlowThreshold: time.Second}}

	l := newGormSlogLogger(slog.Default(), cfg).(*gormSlogLogger)

	assert.Equal(t, time.Second, l.slowThreshold)
	assert.Equal(t, logger.Warn, l.level)
}

func TestGormSlogLogger_ParamsFilterDropsValues(t *testing.T) {
	l := newGormSlogLogger(slog.Default(), nil).(*gormSlogLogger)

	sql, params := l.ParamsFilter(context.Background(), "SELECT * FROM customers WHERE email_hash = $1", "abc")

	assert.Equal(t, "SELECT * FROM customers WHERE email_hash = $1", sql)
	assert.Nil(t, params)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), nil)
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM slow query")

	buf.Reset()
	l.Trace(context.Background(), time.Now(), sqlFn, assert.AnError)
	assert.Contains(t, buf.String(), "GORM query failed")
}

func TestGormSlogLogger_TagsProfileTable(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), nil)

	l.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) {
		return `SELECT * FROM "delivery_partners" WHERE "delivery_partners"."deleted" = $1`, 0
	}, nil)

	assert.Contains(t, buf.String(), "profile_table=delivery_partners")
}

func TestProfileTableOf(t *testing.T) {
	assert.Equal(t, "customers", profileTableOf(`UPDATE "customers" SET "deleted"=$1`))
	assert.Equal(t, "merchants", profileTableOf("SELECT count(*) FROM `merchants`"))
	assert.Empty(t, profileTableOf("SELECT 1"))
}
