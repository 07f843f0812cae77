// createadmin 创建初始管理员账号
//
// 用法:
//
//	go run ./cmd/createadmin --email admin@bookstore.com --password admin123
//
// 未指定的参数取配置中的admin段(默认 Admin / admin@bookstore.com / admin123)
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"github.com/AhmadAyoub1/bookstore-backend-render/internal/domain/admin"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/infrastructure/config"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/infrastructure/persistence/mysql"
	"github.com/AhmadAyoub1/bookstore-backend-render/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	fs := flag.NewFlagSet("createadmin", flag.ExitOnError)
	name := fs.String("name", cfg.Admin.Name, "管理员名称")
	email := fs.String("email", cfg.Admin.Email, "登录邮箱")
	password := fs.String("password", cfg.Admin.Password, "登录密码")
	_ = fs.Parse(os.Args[1:])

	log := logger.New(logger.Options{Level: cfg.Log.Level, Format: "console"})
	if err := run(cfg, log, *name, *email, *password); err != nil {
		log.Fatal().Err(err).Str("email", *email).Msg("创建管理员失败")
	}
}

func run(cfg *config.Config, log zerolog.Logger, name, email, password string) error {
	db, err := mysql.NewDB(cfg)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	a, err := admin.NewService(mysql.NewUserRepository(db)).CreateAdmin(ctx, name, email, password)
	if errors.Is(err, admin.ErrEmailTaken) {
		log.Warn().Str("email", email).Msg("管理员已存在,跳过")
		return nil
	}
	if err != nil {
		return err
	}

	log.Info().Uint("id", a.ID).Str("email", a.Email).Msg("管理员已创建")
	return nil
}
