package db

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/DanRulev/kotoba.git/internal/config"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jmoiron/sqlx"
)

// DSN builds the driver name and data source name for cfg.
func DSN(cfg config.DBConfig) (string, string) {
	if cfg.Driver == "sqlite3" {
		return "sqlite3", fmt.Sprintf("file:%s?mode=ro&_foreign_keys=on", cfg.Conn.Path)
	}

	return "postgres", fmt.Sprintf("host=%s port=%s dbname=%s user=%s password=%s sslmode=%s",
		quote(cfg.Conn.Host), quote(cfg.Conn.Port), quote(cfg.Conn.Name),
		quote(cfg.Conn.User), quote(cfg.Conn.Password), quote(cfg.Conn.SSL))
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// quote wraps a key/value DSN value in single quotes so spaces and quotes
// in passwords survive lib/pq's parser.
func quote(v string) string {
	return "'" + dsnEscaper.Replace(v) + "'"
}

// MigrateURL is the database URL golang-migrate expects for cfg.
func MigrateURL(cfg config.DBConfig) string {
	if cfg.Driver == "sqlite3" {
		return fmt.Sprintf("sqlite3://%s", cfg.Conn.Path)
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.Conn.User, cfg.Conn.Password),
		Host:     net.JoinHostPort(cfg.Conn.Host, cfg.Conn.Port),
		Path:     "/" + cfg.Conn.Name,
		RawQuery: url.Values{"sslmode": {cfg.Conn.SSL}}.Encode(),
	}
	return u.String()
}

func InitDB(cfg config.DBConfig) (*sqlx.DB, error) {
	driver, dsn := DSN(cfg)
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	db.SetMaxOpenConns(cfg.Cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Cfg.ConnMaxLifeTime)
	db.SetConnMaxIdleTime(cfg.Cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	return db, nil
}
