// Package store wraps the SurrealDB connection used as the hosted data
// backend. Repositories depend on the narrow Conn interface so tests can
// substitute a fake without a running database.
package store

import (
	"fmt"

	surrealdb "github.com/surrealdb/surrealdb.go"
)

// Conn is the query surface repositories need from the store.
type Conn interface {
	Query(sql string, vars map[string]any) (any, error)
}

type Config struct {
	URL       string
	Username  string
	Password  string
	Namespace string
	Database  string
}

// Client owns a live SurrealDB connection.
type Client struct {
	db *surrealdb.DB
}

var _ Conn = (*Client)(nil)

// Connect dials the database, signs in, and selects the configured
// namespace and database.
func Connect(cfg Config) (*Client, error) {
	db, err := surrealdb.New(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to surrealdb at %s: %w", cfg.URL, err)
	}

	if _, err := db.Signin(map[string]any{
		"user": cfg.Username,
		"pass": cfg.Password,
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to sign in to surrealdb: %w", err)
	}

	if _, err := db.Use(cfg.Namespace, cfg.Database); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to select namespace %s/%s: %w", cfg.Namespace, cfg.Database, err)
	}

	return &Client{db: db}, nil
}

func (c *Client) Query(sql string, vars map[string]any) (any, error) {
	return c.db.Query(sql, vars)
}

func (c *Client) Close() {
	c.db.Close()
}
