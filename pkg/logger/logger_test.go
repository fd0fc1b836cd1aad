package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestNew(t *testing.T) {
	testCases := map[string]struct {
		level string
		want  zerolog.Level
	}{
		"debug":   {level: "debug", want: zerolog.DebugLevel},
		"warn":    {level: "warn", want: zerolog.WarnLevel},
		"empty":   {level: "", want: zerolog.InfoLevel},
		"unknown": {level: "loud", want: zerolog.InfoLevel},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, New("production", tc.level).GetLevel())
		})
	}
}

func TestGormLogger_Trace(t *testing.T) {
	sql := func() (string, int64) { return "SELECT * FROM questions", 2 }

	testCases := map[string]struct {
		level   gormlogger.LogLevel
		begin   time.Time
		err     error
		want    string
		wantLvl string
	}{
		"failure": {
			level:   gormlogger.Warn,
			begin:   time.Now(),
			err:     errors.New("no such table"),
			want:    "query failed",
			wantLvl: `"level":"error"`,
		},
		"slow": {
			level:   gormlogger.Warn,
			begin:   time.Now().Add(-time.Second),
			want:    "slow query",
			wantLvl: `"level":"warn"`,
		},
		"missing record is not a failure": {
			level:   gormlogger.Warn,
			begin:   time.Now(),
			err:     gorm.ErrRecordNotFound,
			want:    `"message":"query"`,
			wantLvl: `"level":"debug"`,
		},
		"silent": {
			level: gormlogger.Silent,
			begin: time.Now(),
			err:   errors.New("no such table"),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewGormLogger(zerolog.New(&buf)).LogMode(tc.level)
			l.Trace(context.Background(), tc.begin, sql, tc.err)

			if tc.want == "" {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), tc.want)
			assert.Contains(t, buf.String(), tc.wantLvl)
			assert.Contains(t, buf.String(), `"component":"gorm"`)
		})
	}
}
