package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options 日志配置
type Options struct {
	Level  string // debug/info/warn/error
	Format string // json/console
	Output io.Writer
}

// New 创建进程日志器
// 学习要点：
// 1. 结构化日志：字段化输出，便于ELK/Loki检索
// 2. 设置为zerolog.DefaultContextLogger后，未挂载请求日志器的ctx也能写日志
func New(opts Options) zerolog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if strings.EqualFold(opts.Format, "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}

	l := zerolog.New(out).Level(level).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &l
	return l
}
