package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/Slach/chartfmt/pkg/layout"
	"github.com/Slach/chartfmt/pkg/legend"
	"github.com/Slach/chartfmt/pkg/tableview"
	"github.com/Slach/chartfmt/pkg/tickformat"
	"github.com/Slach/chartfmt/pkg/timezone"
)

// Context is a named ClickHouse connection.
type Context struct {
	Name      string `yaml:"name"`
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Database  string `yaml:"database"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	Protocol  string `yaml:"protocol"` // http or native
	Secure    bool   `yaml:"secure"`
	TLSVerify bool   `yaml:"tls_verify"`
	TLSCert   string `yaml:"tls_cert"`
	TLSKey    string `yaml:"tls_key"`
	TLSCa     string `yaml:"tls_ca"`
}

type Format struct {
	Locale               string            `yaml:"locale"`
	EmptyMarker          string            `yaml:"empty_marker"`
	MaxFractionDigits    int               `yaml:"max_fraction_digits"`
	AbbreviationDecimals int               `yaml:"abbreviation_decimals"`
	Units                []tickformat.Unit `yaml:"units"`
	CurrencySymbols      map[string]string `yaml:"currency_symbols"`
	DateLayout           string            `yaml:"date_layout"`
	Timezone             string            `yaml:"timezone"`
}

type Layout struct {
	PreviewWidth       float64 `yaml:"preview_width"`
	FullWidth          float64 `yaml:"full_width"`
	PixelsPerCharacter float64 `yaml:"pixels_per_character"`
	HorizontalMargin   float64 `yaml:"horizontal_margin"`
	SmallScreenPixels  int     `yaml:"small_screen_pixels"`
	MobilePadding      int     `yaml:"mobile_padding"`
	PreviewPadding     int     `yaml:"preview_padding"`
	FullPadding        int     `yaml:"full_padding"`
}

type Table struct {
	PageThreshold           int    `yaml:"page_threshold"`
	AlwaysPaginate          bool   `yaml:"always_paginate"`
	MobileNavigationColumns int    `yaml:"mobile_navigation_columns"`
	PageSize                int    `yaml:"page_size"`
	Border                  string `yaml:"border"`
}

type Legend struct {
	ResetOnDatasetChange bool    `yaml:"reset_on_dataset_change"`
	DimmedOpacity        float64 `yaml:"dimmed_opacity"`
}

type Config struct {
	Format   Format    `yaml:"format"`
	Layout   Layout    `yaml:"layout"`
	Table    Table     `yaml:"table"`
	Legend   Legend    `yaml:"legend"`
	Contexts []Context `yaml:"contexts"`
}

// Default returns the built-in settings; a config file only overrides the
// keys it sets.
func Default() *Config {
	f := tickformat.DefaultOptions()
	e := layout.DefaultEstimator()
	p := layout.DefaultPadding()
	return &Config{
		Format: Format{
			Locale:               f.Locale,
			EmptyMarker:          f.EmptyMarker,
			MaxFractionDigits:    f.MaxFractionDigits,
			AbbreviationDecimals: f.AbbreviationDecimals,
			Units:                f.Units,
			DateLayout:           f.DateLayout,
			Timezone:             "UTC",
		},
		Layout: Layout{
			PreviewWidth:       e.PreviewWidth,
			FullWidth:          e.FullWidth,
			PixelsPerCharacter: e.PixelsPerCharacter,
			HorizontalMargin:   e.HorizontalMargin,
			SmallScreenPixels:  p.SmallScreen,
			MobilePadding:      p.Mobile,
			PreviewPadding:     p.Preview,
			FullPadding:        p.Full,
		},
		Table: Table{
			PageThreshold:           tableview.DefaultPageThreshold,
			MobileNavigationColumns: tableview.DefaultMobileNavigationColumns,
			PageSize:                tableview.DefaultPageThreshold,
			Border:                  "rounded",
		},
		Legend: Legend{DimmedOpacity: legend.DefaultDimmedOpacity},
	}
}

// DefaultPath is ~/.chartfmt/chartfmt.yml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user home directory")
	}
	return filepath.Join(home, ".chartfmt", "chartfmt.yml"), nil
}

// Load reads path over Default. An empty path means DefaultPath, which may
// be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Format.MaxFractionDigits < 0 || c.Format.AbbreviationDecimals < 0 {
		return errors.New("format: fraction digits must not be negative")
	}
	for _, u := range c.Format.Units {
		if u.Threshold <= 0 {
			return errors.Errorf("format: unit %q has non-positive threshold %v", u.Suffix, u.Threshold)
		}
	}
	if _, err := timezone.Load(c.Format.Timezone); err != nil {
		return errors.Wrap(err, "format")
	}
	if c.Legend.DimmedOpacity < 0 || c.Legend.DimmedOpacity > 1 {
		return errors.Errorf("legend: dimmed_opacity %v is outside [0, 1]", c.Legend.DimmedOpacity)
	}
	return nil
}

// Location is the configured timezone, UTC when unset or invalid. The value
// "local" selects the system timezone.
func (c *Config) Location() *time.Location {
	loc, err := timezone.Load(c.Format.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) FormatterOptions() tickformat.Options {
	opts := tickformat.DefaultOptions()
	opts.Locale = c.Format.Locale
	opts.EmptyMarker = c.Format.EmptyMarker
	opts.MaxFractionDigits = c.Format.MaxFractionDigits
	opts.AbbreviationDecimals = c.Format.AbbreviationDecimals
	if len(c.Format.Units) > 0 {
		opts.Units = c.Format.Units
	}
	if len(c.Format.CurrencySymbols) > 0 {
		symbols := make(map[string]string, len(opts.CurrencySymbols)+len(c.Format.CurrencySymbols))
		for k, v := range opts.CurrencySymbols {
			symbols[k] = v
		}
		for k, v := range c.Format.CurrencySymbols {
			symbols[k] = v
		}
		opts.CurrencySymbols = symbols
	}
	if c.Format.DateLayout != "" {
		opts.DateLayout = c.Format.DateLayout
	}
	opts.Location = c.Location()
	return opts
}

func (c *Config) Formatter() *tickformat.Formatter {
	return tickformat.New(c.FormatterOptions())
}

func (c *Config) Estimator() layout.Estimator {
	return layout.Estimator{
		PreviewWidth:       c.Layout.PreviewWidth,
		FullWidth:          c.Layout.FullWidth,
		PixelsPerCharacter: c.Layout.PixelsPerCharacter,
		HorizontalMargin:   c.Layout.HorizontalMargin,
	}
}

func (c *Config) Padding() layout.Padding {
	return layout.Padding{
		SmallScreen: c.Layout.SmallScreenPixels,
		Mobile:      c.Layout.MobilePadding,
		Preview:     c.Layout.PreviewPadding,
		Full:        c.Layout.FullPadding,
	}
}

func (c *Config) Paging() tableview.Paging {
	return tableview.Paging{Threshold: c.Table.PageThreshold, AlwaysPaginate: c.Table.AlwaysPaginate}
}

func (c *Config) ResetPolicy() legend.ResetPolicy {
	if c.Legend.ResetOnDatasetChange {
		return legend.ResetOnDatasetChange
	}
	return legend.KeepHidden
}

// NewLegend builds a legend state with the configured policy and opacity.
func (c *Config) NewLegend() *legend.Visibility {
	v := legend.New(c.ResetPolicy())
	v.SetDimmedOpacity(c.Legend.DimmedOpacity)
	return v
}

// Context finds a connection context by name. An empty name selects the
// first one.
func (c *Config) Context(name string) (Context, error) {
	if len(c.Contexts) == 0 {
		return Context{}, errors.New("no contexts configured")
	}
	if name == "" {
		return c.Contexts[0], nil
	}
	for _, ctx := range c.Contexts {
		if ctx.Name == name {
			return ctx, nil
		}
	}
	return Context{}, errors.Errorf("context %q not found", name)
}
