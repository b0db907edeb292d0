package client

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/eapache/go-resiliency/retrier"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/Slach/chartfmt/pkg/config"
	"github.com/Slach/chartfmt/pkg/dataset"
)

// Client runs queries against one ClickHouse context and returns the
// results as datasets.
type Client struct {
	config  config.Context
	db      *sql.DB
	version string
	loc     *time.Location
	retrier *retrier.Retrier
}

// ConnectAttempts and ConnectBackoff bound the retries of the initial ping.
const (
	ConnectAttempts = 3
	ConnectBackoff  = 200 * time.Millisecond
)

func NewClient(cfg config.Context, version string, loc *time.Location) *Client {
	if loc == nil {
		loc = time.UTC
	}
	return &Client{
		config:  cfg,
		version: version,
		loc:     loc,
		retrier: retrier.New(retrier.ExponentialBackoff(ConnectAttempts, ConnectBackoff), nil),
	}
}

func (c *Client) tlsConfig() (*tls.Config, error) {
	if !c.config.Secure && (c.config.TLSCert == "" || c.config.TLSKey == "") && c.config.TLSCa == "" && !c.config.TLSVerify {
		return nil, nil
	}
	tlsConfig := &tls.Config{
		InsecureSkipVerify: !c.config.TLSVerify,
	}

	if c.config.TLSCert != "" && c.config.TLSKey != "" {
		cert, err := tls.LoadX509KeyPair(c.config.TLSCert, c.config.TLSKey)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load client certificate")
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	if c.config.TLSCa != "" {
		caCert, err := os.ReadFile(c.config.TLSCa)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read CA certificate")
		}
		caCertPool := x509.NewCertPool()
		caCertPool.AppendCertsFromPEM(caCert)
		tlsConfig.RootCAs = caCertPool
	}
	return tlsConfig, nil
}

func (c *Client) connect(ctx context.Context) error {
	if c.db != nil {
		return nil
	}
	tlsConfig, err := c.tlsConfig()
	if err != nil {
		return err
	}

	options := &clickhouse.Options{
		Addr: []string{fmt.Sprintf("%s:%d", c.config.Host, c.config.Port)},
		Auth: clickhouse.Auth{
			Database: c.config.Database,
			Username: c.config.Username,
			Password: c.config.Password,
		},
		TLS: tlsConfig,
	}
	options.ClientInfo.Products = append(options.ClientInfo.Products, struct{ Name, Version string }{
		"chartfmt",
		c.version,
	})

	options.Protocol = clickhouse.Native
	if c.config.Protocol == "http" {
		options.Protocol = clickhouse.HTTP
	}

	db := clickhouse.OpenDB(options)
	err = c.retrier.RunCtx(ctx, func(ctx context.Context) error {
		pingErr := db.PingContext(ctx)
		if pingErr != nil {
			log.Warn().Err(pingErr).Str("host", c.config.Host).Msg("ping failed")
		}
		return pingErr
	})
	if err != nil {
		_ = db.Close()
		return errors.Wrapf(err, "failed to connect to %s:%d", c.config.Host, c.config.Port)
	}

	c.db = db
	return nil
}

// QueryDataset runs query and converts the result into a dataset whose
// column metadata is inferred from the ClickHouse column types.
func (c *Client) QueryDataset(ctx context.Context, query string) (dataset.Dataset, error) {
	if err := c.connect(ctx); err != nil {
		return dataset.Dataset{}, err
	}
	log.Info().Str("context", c.config.Name).Msg(query)

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return dataset.Dataset{}, errors.Wrap(err, "query failed")
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return dataset.Dataset{}, errors.Wrap(err, "failed to read columns")
	}
	columnTypes, err := rows.ColumnTypes()
	if err != nil {
		return dataset.Dataset{}, errors.Wrap(err, "failed to read column types")
	}
	dbTypes := make([]string, len(columnTypes))
	for i, ct := range columnTypes {
		dbTypes[i] = ct.DatabaseTypeName()
	}

	var values [][]any
	for rows.Next() {
		raw := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return dataset.Dataset{}, errors.Wrapf(err, "failed to scan row %d", len(values))
		}
		values = append(values, raw)
	}
	if err := rows.Err(); err != nil {
		return dataset.Dataset{}, errors.Wrap(err, "failed to read rows")
	}
	return BuildDataset(columns, dbTypes, values, c.loc), nil
}

// BuildDataset turns scanned values into a dataset. Metadata is inferred
// from dbTypes, one per column.
func BuildDataset(columns, dbTypes []string, values [][]any, loc *time.Location) dataset.Dataset {
	metadata := make([]dataset.ColumnMetadata, len(columns))
	for i, name := range columns {
		dbType := ""
		if i < len(dbTypes) {
			dbType = dbTypes[i]
		}
		metadata[i] = InferMetadata(name, dbType)
	}

	rows := make([]dataset.Row, len(values))
	for r, raw := range values {
		row := make(dataset.Row, len(columns))
		for i, name := range columns {
			var v any
			if i < len(raw) {
				v = raw[i]
			}
			row[i] = dataset.Cell{Column: name, Value: dataset.Resolve(v, &metadata[i], loc)}
		}
		rows[r] = row
	}
	return dataset.New(columns, rows, metadata)
}

// InferMetadata maps a ClickHouse type name to column metadata.
// Nullable and LowCardinality wrappers are ignored.
func InferMetadata(column, dbType string) dataset.ColumnMetadata {
	t := unwrapType(dbType)
	md := dataset.ColumnMetadata{ColumnName: column, DataType: dataset.Text}
	switch {
	case strings.HasPrefix(t, "Int"), strings.HasPrefix(t, "UInt"),
		strings.HasPrefix(t, "Float"), strings.HasPrefix(t, "Decimal"):
		md.DataType = dataset.Number
	case strings.HasPrefix(t, "Date"):
		md.DataType = dataset.Date
	}
	return md
}

func unwrapType(t string) string {
	t = strings.TrimSpace(t)
	for {
		unwrapped := false
		for _, wrapper := range []string{"Nullable(", "LowCardinality("} {
			if strings.HasPrefix(t, wrapper) && strings.HasSuffix(t, ")") {
				t = t[len(wrapper) : len(t)-1]
				unwrapped = true
			}
		}
		if !unwrapped {
			return t
		}
	}
}

func (c *Client) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
