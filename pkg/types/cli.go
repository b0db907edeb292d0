package types

// CLI holds every command line flag.
type CLI struct {
	ConfigPath string
	LogPath    string
	LogLevel   string
	Pprof      bool
	PprofPath  string

	Input     string
	Query     string
	ShowQuery bool
	ConnectTo string
	Locale    string
	Timezone  string

	SignificantDigits bool
	Stacked           bool
	Preview           bool
	MobilePreview     bool
	HorizontalScroll  bool
	HideDataLabels    bool
	Hide              []string
	Width             int
	NoColor           bool

	Table  TableParams
	Metric MetricParams
	Value  ValueParams
}

type TableParams struct {
	SortBy         string
	SortDesc       bool
	Page           int
	AlwaysPaginate bool
	Border         string
}

type MetricParams struct {
	Titles     []string
	Percentage bool
	Currency   string
	PerRow     int
}

// ValueParams describe a single value for the format subcommand.
type ValueParams struct {
	Scope    float64
	DataType string
	Currency string
	Prefix   string
	Suffix   string
}

