package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/vfg2006/clinic-financial-model/internal/config"
	"github.com/vfg2006/clinic-financial-model/pkg/log"
)

const (
	pingTimeout     = 5 * time.Second
	maxOpenConns    = 4
	connMaxLifetime = 30 * time.Minute
)

// Conn é o subconjunto de *sql.DB usado pelo destino de exportação
type Conn interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Ping(context.Context) error
	Close() error
}

type Connection struct {
	*sql.DB
}

// NewConnection abre o pool e valida a conexão antes de devolvê-lo
func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	if !cfg.Enabled() {
		return nil, errors.New("DATABASE_URL não configurada")
	}

	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir conexão")
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	conn := &Connection{DB: db}
	if err := conn.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	log.ForContext(ctx).WithField("max_open_conns", maxOpenConns).Info("Conexão com PostgreSQL estabelecida")

	return conn, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := c.DB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "erro ao validar conexão")
	}
	return nil
}
