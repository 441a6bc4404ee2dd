package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"sugarrush/config"
	deliverycontext "sugarrush/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(buf *bytes.Buffer, debug bool) *gormSlogLogger {
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg).(*gormSlogLogger)
}

func sqlFn() (string, int64) { return "SELECT 1", 1 }

func TestGormSlogLogger_TraceFailureSkipsNotFound(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferedGormLogger(&buf, false)

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "boom")
}

func TestGormSlogLogger_TraceSlowQuery(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferedGormLogger(&buf, false)
	begin := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return begin.Add(time.Second) }

	l.Trace(context.Background(), begin, sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_FastQueryOnlyInDebug(t *testing.T) {
	var quiet bytes.Buffer
	newBufferedGormLogger(&quiet, false).Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, quiet.String())

	var loud bytes.Buffer
	newBufferedGormLogger(&loud, true).Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Contains(t, loud.String(), "SELECT 1")
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newBufferedGormLogger(&base, false)
	reqLogger := slog.New(slog.NewTextHandler(&scoped, nil)).With(slog.String("request_id", "req-1"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Warn(ctx, "pool %s", "busy")

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-1")
	assert.Contains(t, scoped.String(), "pool busy")
}

func TestGormSlogLogger_SilentMode(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferedGormLogger(&buf, true).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	l.Error(context.Background(), "nope")
	assert.Empty(t, buf.String())
}
