package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"strconv"

	"github.com/go-sql-driver/mysql"

	"github.com/01moynul/storefront/internal/config"
)

// DSN builds the MySQL data source name for cfg.
func DSN(cfg config.DBConfig) string {
	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	mc.DBName = cfg.Name
	mc.ParseTime = true
	mc.Timeout = cfg.Timeout
	mc.ReadTimeout = cfg.Timeout
	mc.WriteTimeout = cfg.Timeout
	return mc.FormatDSN()
}

// OpenDB opens the connection pool described by cfg and verifies it with a ping.
func OpenDB(ctx context.Context, cfg config.DBConfig) (*sql.DB, error) {
	return OpenDBWithDSN(ctx, DSN(cfg), cfg)
}

// OpenDBWithDSN opens a pool for an explicit DSN, applying the pool limits from cfg.
func OpenDBWithDSN(ctx context.Context, dsn string, cfg config.DBConfig) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx := ctx
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping mysql at %s: %w", cfg.Host, err)
	}

	log.Printf("Connected to MySQL database %q on %s:%d", cfg.Name, cfg.Host, cfg.Port)
	return db, nil
}
