package main

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestBackoffDelay(t *testing.T) {
	base := 1500 * time.Millisecond
	maxDelay := 30 * time.Second

	var got []time.Duration
	for attempt := 1; attempt <= 8; attempt++ {
		got = append(got, backoffDelay(attempt, base, maxDelay))
	}
	want := []time.Duration{
		1500 * time.Millisecond,
		3 * time.Second,
		6 * time.Second,
		12 * time.Second,
		24 * time.Second,
		30 * time.Second,
		30 * time.Second,
		30 * time.Second,
	}
	require.Equal(t, want, got)
}

func TestGormLogLevel(t *testing.T) {
	require.Equal(t, logger.Info, gormLogLevel(logrus.DebugLevel))
	require.Equal(t, logger.Warn, gormLogLevel(logrus.InfoLevel))
	require.Equal(t, logger.Error, gormLogLevel(logrus.ErrorLevel))
}

func TestEnsureDatabaseExistsSkipsDefaultDB(t *testing.T) {
	require.NoError(t, ensureDatabaseExists("postgres://u:p@127.0.0.1:1/postgres"))
	require.NoError(t, ensureDatabaseExists("postgres://u:p@127.0.0.1:1/"))
}
