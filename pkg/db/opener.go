package db

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/angelmondragon/adspend-backend/pkg/config"
	"github.com/angelmondragon/adspend-backend/pkg/logger"
	"go.uber.org/multierr"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Mode selects how a scoped handle is opened.
type Mode int

const (
	ReadWrite Mode = iota
	ReadOnly
)

func (m Mode) String() string {
	if m == ReadOnly {
		return "read_only"
	}
	return "read_write"
}

// ErrStoreMissing is returned when a read-only handle is requested for a
// store file that has not been created yet.
var ErrStoreMissing = errors.New("store does not exist")

// Opener hands out one short-lived Client per request. Callers own the
// returned handle and must Close it.
type Opener struct {
	cfg  config.DBConfig
	logg *logger.Logger
}

func NewOpener(cfg config.DBConfig, logg *logger.Logger) *Opener {
	return &Opener{cfg: cfg, logg: logg}
}

// Location describes the store for responses and logs. Credentials are never included.
func (o *Opener) Location() string {
	if o.cfg.IsSQLite() {
		return o.cfg.Path
	}
	u, err := url.Parse(o.cfg.DSN)
	if err != nil || u.Host == "" {
		return config.DriverPostgres
	}
	return fmt.Sprintf("%s://%s%s", u.Scheme, u.Host, u.Path)
}

func (o *Opener) Open(ctx context.Context, mode Mode) (*Client, error) {
	var dialector gorm.Dialector
	if o.cfg.IsSQLite() {
		dsn, err := o.sqliteDSN(mode)
		if err != nil {
			return nil, err
		}
		dialector = sqlite.Open(dsn)
	} else {
		dialector = postgres.New(postgres.Config{
			DSN:                  o.cfg.DSN,
			PreferSimpleProtocol: true,
		})
	}

	conn, err := gorm.Open(dialector, gormConfig())
	if err != nil {
		return nil, fmt.Errorf("opening db connection: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql db handle: %w", err)
	}
	// handles live for one request; keep at most one idle connection
	sqlDB.SetMaxIdleConns(1)

	if o.logg != nil {
		o.logg.Debug(o.logg.WithField(ctx, "db_mode", mode.String()), "db.handle.opened")
	}

	return &Client{conn: conn}, nil
}

func (o *Opener) sqliteDSN(mode Mode) (string, error) {
	q := url.Values{}
	if ms := o.cfg.BusyTimeout.Milliseconds(); ms > 0 {
		q.Set("_busy_timeout", fmt.Sprintf("%d", ms))
	}

	switch mode {
	case ReadOnly:
		if _, err := os.Stat(o.cfg.Path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return "", ErrStoreMissing
			}
			return "", fmt.Errorf("stat store %q: %w", o.cfg.Path, err)
		}
		q.Set("mode", "ro")
	default:
		if dir := filepath.Dir(o.cfg.Path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return "", fmt.Errorf("create store dir %q: %w", dir, err)
			}
		}
	}

	// escape so '?', '#' and '%' in the path are not read as URI syntax
	path := (&url.URL{Path: o.cfg.Path}).EscapedPath()
	return fmt.Sprintf("file:%s?%s", path, q.Encode()), nil
}

// Ping opens a read-only handle and pings it. A store that has not been
// created yet is healthy.
func (o *Opener) Ping(ctx context.Context) (err error) {
	client, err := o.Open(ctx, ReadOnly)
	if errors.Is(err, ErrStoreMissing) {
		return nil
	}
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, client.Close())
	}()
	return client.Ping(ctx)
}
