package core

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogConfig GORM 日志配置
type GormLogConfig struct {
	Level                     string `mapstructure:"level" json:"level" yaml:"level"`                                                                // silent/error/warn/info
	SlowThresholdMs           int    `mapstructure:"slowThresholdMs" json:"slowThresholdMs" yaml:"slowThresholdMs"`                                  // 慢查询阈值（毫秒）
	IgnoreRecordNotFoundError bool   `mapstructure:"ignoreRecordNotFoundError" json:"ignoreRecordNotFoundError" yaml:"ignoreRecordNotFoundError"`   // 是否忽略 ErrRecordNotFound
}

// gormLogger 将 GORM 的日志桥接到 zap
type gormLogger struct {
	logger                    *zap.Logger
	level                     gormlogger.LogLevel
	slowThreshold             time.Duration
	ignoreRecordNotFoundError bool
}

// NewGormLogger 基于 ZapLogger 构建 GORM 的 logger.Interface 实现。
func NewGormLogger(zl *ZapLogger, cfg GormLogConfig) gormlogger.Interface {
	level := gormlogger.Warn
	switch cfg.Level {
	case "silent":
		level = gormlogger.Silent
	case "error":
		level = gormlogger.Error
	case "warn":
		level = gormlogger.Warn
	case "info":
		level = gormlogger.Info
	}

	slow := time.Duration(cfg.SlowThresholdMs) * time.Millisecond
	if slow <= 0 {
		slow = 200 * time.Millisecond
	}

	return &gormLogger{
		logger:                    zl.Logger(),
		level:                     level,
		slowThreshold:             slow,
		ignoreRecordNotFoundError: cfg.IgnoreRecordNotFoundError,
	}
}

func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *gormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		l.logger.Sugar().Infof(msg, args...)
	}
}

func (l *gormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.logger.Sugar().Warnf(msg, args...)
	}
}

func (l *gormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		l.logger.Sugar().Errorf(msg, args...)
	}
}

// Trace 记录 SQL 执行情况，慢查询与错误分别提升日志级别
func (l *gormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := []zap.Field{
		zap.Duration("elapsed", elapsed),
		zap.Int64("rows", rows),
		zap.String("sql", sql),
	}

	switch {
	case err != nil && l.level >= gormlogger.Error &&
		(!errors.Is(err, gorm.ErrRecordNotFound) || !l.ignoreRecordNotFoundError):
		l.logger.Error("SQL 执行出错", append(fields, zap.Error(err))...)
	case elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		l.logger.Warn("慢查询", fields...)
	case l.level >= gormlogger.Info:
		l.logger.Debug("SQL 执行", fields...)
	}
}
