package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel 將 LOG_LEVEL 字串轉為 zap 等級，未知值回退為 info
func ParseLevel(logLevel string) zapcore.Level {
	switch logLevel {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	case "fatal":
		return zap.FatalLevel
	default:
		return zap.InfoLevel
	}
}

// New 建立輸出 JSON 到 stderr 的 zap logger
func New(logLevel string) *zap.Logger {
	return NewWithSyncer(logLevel, zapcore.Lock(os.Stderr))
}

// NewWithSyncer 與 New 相同，但可指定輸出目標
func NewWithSyncer(logLevel string, ws zapcore.WriteSyncer) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), ws, ParseLevel(logLevel))
	return zap.New(core, zap.AddCaller())
}
