package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/jhoicas/ferreteria-api/pkg/config"
)

// Open abre (o crea) la base SQLite en fichero y garantiza el esquema.
// Con ":memory:" limita el pool a una conexión para que todas vean la misma DB.
func Open(cfg config.DBConfig) (*sqlx.DB, error) {
	dsn := cfg.Path
	if dsn != ":memory:" {
		// foreign_keys se aplica por conexión; el parámetro _pragma lo fija en todas las del pool
		dsn = "file:" + dsn + "?_pragma=foreign_keys(1)"
	}
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	if cfg.Path == ":memory:" {
		db.SetMaxOpenConns(1)
		if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
			return nil, fmt.Errorf("pragma foreign_keys: %w", err)
		}
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := ensureSchema(db); err != nil {
		return nil, fmt.Errorf("crear esquema: %w", err)
	}
	return db, nil
}

// ensureSchema crea las tablas si no existen. FKs con ON DELETE RESTRICT:
// borrar un cliente/vendedor/producto referenciado falla en vez de dejar huérfanos.
func ensureSchema(db *sqlx.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS users(
  id            INTEGER PRIMARY KEY AUTOINCREMENT,
  username      TEXT NOT NULL UNIQUE,
  email         TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  role          TEXT NOT NULL DEFAULT 'vendedor' CHECK (role IN ('admin','vendedor'))
);

CREATE TABLE IF NOT EXISTS sellers(
  id    INTEGER PRIMARY KEY AUTOINCREMENT,
  name  TEXT NOT NULL,
  zone  TEXT NOT NULL,
  phone TEXT NOT NULL DEFAULT '',
  email TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS clients(
  id      INTEGER PRIMARY KEY AUTOINCREMENT,
  name    TEXT NOT NULL,
  phone   TEXT NOT NULL DEFAULT '',
  email   TEXT NOT NULL UNIQUE,
  address TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS products(
  id          INTEGER PRIMARY KEY AUTOINCREMENT,
  name        TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  price       NUMERIC NOT NULL,
  stock       INTEGER NOT NULL DEFAULT 0,
  category    TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS orders(
  id        INTEGER PRIMARY KEY AUTOINCREMENT,
  client_id INTEGER NOT NULL REFERENCES clients(id) ON DELETE RESTRICT,
  seller_id INTEGER NOT NULL REFERENCES sellers(id) ON DELETE RESTRICT,
  date      TEXT NOT NULL,
  total     NUMERIC NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_orders_client ON orders(client_id);
CREATE INDEX IF NOT EXISTS idx_orders_seller ON orders(seller_id);

CREATE TABLE IF NOT EXISTS order_details(
  id         INTEGER PRIMARY KEY AUTOINCREMENT,
  order_id   INTEGER NOT NULL REFERENCES orders(id) ON DELETE RESTRICT,
  product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE RESTRICT,
  quantity   INTEGER NOT NULL,
  unit_price NUMERIC NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_order_details_order ON order_details(order_id);

CREATE TABLE IF NOT EXISTS audit_logs(
  id          INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id     INTEGER NULL REFERENCES users(id) ON DELETE SET NULL,
  action      TEXT NOT NULL,
  target_type TEXT NOT NULL,
  target_id   INTEGER NULL,
  created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`
	_, err := db.Exec(schema)
	return err
}
