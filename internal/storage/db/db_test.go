package db

import (
	"testing"

	"github.com/DanRulev/kotoba.git/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		cfg        config.DBConfig
		wantDriver string
		wantDSN    string
		wantURL    string
	}{
		{
			name: "postgres",
			cfg: config.DBConfig{
				Driver: "postgres",
				Conn:   config.DBConn{Host: "db", Port: "5432", User: "u", Password: "p", Name: "kotoba", SSL: "disable"},
			},
			wantDriver: "postgres",
			wantDSN:    "host='db' port='5432' dbname='kotoba' user='u' password='p' sslmode='disable'",
			wantURL:    "postgres://u:p@db:5432/kotoba?sslmode=disable",
		},
		{
			name: "postgres password with reserved characters",
			cfg: config.DBConfig{
				Driver: "postgres",
				Conn:   config.DBConn{Host: "db", Port: "5432", User: "kotoba", Password: `p @/x'\`, Name: "kotoba", SSL: "require"},
			},
			wantDriver: "postgres",
			wantDSN:    `host='db' port='5432' dbname='kotoba' user='kotoba' password='p @/x\'\\' sslmode='require'`,
			wantURL:    "postgres://kotoba:p%20%40%2Fx%27%5C@db:5432/kotoba?sslmode=require",
		},
		{
			name:       "sqlite",
			cfg:        config.DBConfig{Driver: "sqlite3", Conn: config.DBConn{Path: "deck.db"}},
			wantDriver: "sqlite3",
			wantDSN:    "file:deck.db?mode=ro&_foreign_keys=on",
			wantURL:    "sqlite3://deck.db",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			driver, dsn := DSN(tt.cfg)
			assert.Equal(t, tt.wantDriver, driver)
			assert.Equal(t, tt.wantDSN, dsn)
			assert.Equal(t, tt.wantURL, MigrateURL(tt.cfg))
		})
	}
}
