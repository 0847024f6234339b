package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"intf-report/internal/filter"
	"intf-report/internal/model"
)

// TimestampLayout is the layout of the prefix put in front of every output file name
const TimestampLayout = "2006-01-02_15-04-05"

// Config represents the application configuration
type Config struct {
	IPFabric IPFabricConfig `mapstructure:"ipfabric"`
	Report   ReportConfig   `mapstructure:"report"`
	Output   OutputConfig   `mapstructure:"output"`
	InfluxDB InfluxDBConfig `mapstructure:"influxdb"`
}

// IPFabricConfig holds the upstream platform settings
type IPFabricConfig struct {
	URL        string        `mapstructure:"url"`         // Base URL of the IP Fabric instance
	Token      string        `mapstructure:"token"`       // API token
	Verify     bool          `mapstructure:"verify"`      // Verify the TLS certificate
	Snapshot   string        `mapstructure:"snapshot"`    // Snapshot ID, "$last" for the latest
	APIVersion string        `mapstructure:"api_version"` // API version path segment (e.g., "v6.8")
	Timeout    time.Duration `mapstructure:"timeout"`     // Per request timeout
	PageSize   int           `mapstructure:"page_size"`   // Rows per table request
}

// ReportConfig holds the report computation settings
type ReportConfig struct {
	ExcludePattern   string   `mapstructure:"exclude_pattern"`    // Regex on interface names to leave out
	CaseSensitive    bool     `mapstructure:"case_sensitive"`     // Match the pattern case-sensitively
	AdminDownReasons []string `mapstructure:"admin_down_reasons"` // Reasons counted as admin down
	FailOnEmpty      bool     `mapstructure:"fail_on_empty"`      // Fail when no interface is left
	SortBy           string   `mapstructure:"sort_by"`            // Device order: "", "hostname", "utilisation"
}

// OutputConfig holds output settings
type OutputConfig struct {
	Dir         string   `mapstructure:"dir"`          // Output directory
	FileName    string   `mapstructure:"file_name"`    // Base file name (without timestamp or extension)
	Formats     []string `mapstructure:"formats"`      // Output formats (xlsx, csv, html, docx, json)
	CSVEncoding string   `mapstructure:"csv_encoding"` // Character encoding of the CSV file
	MetricsFile string   `mapstructure:"metrics_file"` // Prometheus textfile path, disabled when empty

	// Timestamp is resolved once per run by Stamp and prefixes every file name
	Timestamp string `mapstructure:"-"`
}

// InfluxDBConfig holds the optional InfluxDB sink settings
type InfluxDBConfig struct {
	URL    string `mapstructure:"url"` // Disabled when empty
	Token  string `mapstructure:"token"`
	Org    string `mapstructure:"org"`
	Bucket string `mapstructure:"bucket"`
}

// envBindings maps config keys to the environment variables that can set them.
// The first variable that is set wins.
var envBindings = map[string][]string{
	"ipfabric.url":           {"IPF_URL", "IPF_URL_TS"},
	"ipfabric.token":         {"IPF_TOKEN", "IPF_TOKEN_TS"},
	"ipfabric.verify":        {"IPF_VERIFY"},
	"ipfabric.snapshot":      {"IPF_SNAPSHOT"},
	"ipfabric.api_version":   {"IPF_API_VERSION"},
	"ipfabric.timeout":       {"IPF_TIMEOUT"},
	"ipfabric.page_size":     {"IPF_PAGE_SIZE"},
	"report.exclude_pattern": {"REPORT_EXCLUDE_PATTERN"},
	"report.case_sensitive":  {"REPORT_CASE_SENSITIVE"},
	"report.fail_on_empty":   {"REPORT_FAIL_ON_EMPTY"},
	"report.sort_by":         {"REPORT_SORT_BY"},
	"output.dir":             {"REPORT_DIR"},
	"output.file_name":       {"REPORT_OUTPUT"},
	"output.formats":         {"REPORT_FORMATS"},
	"output.csv_encoding":    {"REPORT_CSV_ENCODING"},
	"output.metrics_file":    {"METRICS_FILE"},
	"influxdb.url":           {"INFLUX_URL"},
	"influxdb.token":         {"INFLUX_TOKEN"},
	"influxdb.org":           {"INFLUX_ORG"},
	"influxdb.bucket":        {"INFLUX_BUCKET"},
}

// LoadEnvFile loads a .env file into the process environment, overriding
// variables that are already set. An empty path searches the working
// directory and its parents. It returns the file used, or "" if none was found.
func LoadEnvFile(path string) (string, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to resolve working directory: %w", err)
		}
		path = findDotEnv(wd)
		if path == "" {
			return "", nil
		}
	}

	if err := godotenv.Overload(path); err != nil {
		return "", fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return path, nil
}

// findDotEnv walks up from dir and returns the first .env file found
func findDotEnv(dir string) string {
	for {
		candidate := filepath.Join(dir, ".env")
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Load reads the configuration from a file, the environment and defaults.
// A missing config file is not an error: environment and defaults apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)
	if err := bindEnv(v); err != nil {
		return nil, err
	}

	if configPath == "" {
		configPath = "config.yaml"
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) ||
			strings.Contains(err.Error(), "no such file") {
			fmt.Printf("Config file %s not found, using environment and defaults\n", configPath)
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		fmt.Printf("Loaded config from: %s\n", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Viper skips empty variables, an explicitly empty pattern disables exclusion
	if val, ok := os.LookupEnv("REPORT_EXCLUDE_PATTERN"); ok && val == "" {
		cfg.Report.ExcludePattern = ""
	}

	cfg.Output.Formats = normalizeFormats(cfg.Output.Formats)

	if err := cfg.normalizePaths(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults configures default values
func setDefaults(v *viper.Viper) {
	v.SetDefault("ipfabric.url", "")
	v.SetDefault("ipfabric.token", "")
	v.SetDefault("ipfabric.verify", false)
	v.SetDefault("ipfabric.snapshot", "$last")
	v.SetDefault("ipfabric.api_version", "v6.8")
	v.SetDefault("ipfabric.timeout", "60s")
	v.SetDefault("ipfabric.page_size", 1000)

	v.SetDefault("report.exclude_pattern", filter.DefaultExcludePattern)
	v.SetDefault("report.case_sensitive", false)
	v.SetDefault("report.admin_down_reasons", []string{
		"admin",
		"admin-down",
		"parent-admin-down",
		"disable",
		"disabled",
	})
	v.SetDefault("report.fail_on_empty", false)
	v.SetDefault("report.sort_by", "")

	v.SetDefault("output.dir", "./output")
	v.SetDefault("output.file_name", "devices_interface_report")
	v.SetDefault("output.formats", []string{"xlsx"})
	v.SetDefault("output.csv_encoding", "utf-8")
	v.SetDefault("output.metrics_file", "")

	v.SetDefault("influxdb.url", "")
	v.SetDefault("influxdb.token", "")
	v.SetDefault("influxdb.org", "")
	v.SetDefault("influxdb.bucket", "interfaces")
}

func bindEnv(v *viper.Viper) error {
	for key, names := range envBindings {
		args := append([]string{key}, names...)
		if err := v.BindEnv(args...); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}
	return nil
}

// normalizeFormats lower-cases format names and splits comma-separated entries
func normalizeFormats(formats []string) []string {
	var out []string
	for _, f := range formats {
		for _, part := range strings.Split(f, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// normalizePaths converts relative paths to absolute paths
func (c *Config) normalizePaths() error {
	absOutput, err := filepath.Abs(c.Output.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve output.dir: %w", err)
	}
	c.Output.Dir = absOutput
	return nil
}

// SetFormats replaces the output formats, e.g. from command line flags
func (c *Config) SetFormats(formats ...string) {
	c.Output.Formats = normalizeFormats(formats)
}

// EnsureOutputDir creates the output directory if it doesn't exist
func (c *Config) EnsureOutputDir() error {
	if err := os.MkdirAll(c.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// Stamp fixes the timestamp prefix used by every output file of this run
func (c *Config) Stamp(t time.Time) {
	c.Output.Timestamp = t.Format(TimestampLayout)
}

// BaseName returns "<timestamp>-<file_name>", or just the file name before Stamp is called
func (c *Config) BaseName() string {
	if c.Output.Timestamp == "" {
		return c.Output.FileName
	}
	return c.Output.Timestamp + "-" + c.Output.FileName
}

// GetOutputPath returns the full path of the output file with the given extension
func (c *Config) GetOutputPath(ext string) string {
	return filepath.Join(c.Output.Dir, c.BaseName()+"."+strings.TrimPrefix(ext, "."))
}

// Validate checks that the settings required for a run are present and usable
func (c *Config) Validate() error {
	if c.IPFabric.URL == "" {
		return fmt.Errorf("%w: ipfabric.url (IPF_URL) is required", model.ErrConfiguration)
	}
	if c.IPFabric.Token == "" {
		return fmt.Errorf("%w: ipfabric.token (IPF_TOKEN) is required", model.ErrConfiguration)
	}
	if c.IPFabric.PageSize <= 0 {
		return fmt.Errorf("%w: ipfabric.page_size must be positive", model.ErrConfiguration)
	}
	if c.Output.FileName == "" {
		return fmt.Errorf("%w: output.file_name cannot be empty", model.ErrConfiguration)
	}
	if len(c.Output.Formats) == 0 {
		return fmt.Errorf("%w: output.formats must contain at least one format", model.ErrConfiguration)
	}
	switch c.Report.SortBy {
	case "", "hostname", "utilisation":
	default:
		return fmt.Errorf("%w: report.sort_by must be hostname or utilisation, got %q", model.ErrConfiguration, c.Report.SortBy)
	}
	if _, err := filter.Compile(c.Report.ExcludePattern, c.Report.CaseSensitive); err != nil {
		return err
	}
	return nil
}

// Print displays the current configuration, without secrets
func (c *Config) Print() {
	fmt.Println("=== Interfaces Report Configuration ===")
	fmt.Printf("IP Fabric URL:    %s\n", c.IPFabric.URL)
	fmt.Printf("Snapshot:         %s\n", c.IPFabric.Snapshot)
	fmt.Printf("Verify TLS:       %v\n", c.IPFabric.Verify)
	fmt.Printf("Exclude Pattern:  %s\n", c.Report.ExcludePattern)
	fmt.Printf("Formats:          %v\n", c.Output.Formats)
	fmt.Printf("Output Directory: %s\n", c.Output.Dir)
	fmt.Printf("Output Base Name: %s\n", c.BaseName())
	if c.Output.MetricsFile != "" {
		fmt.Printf("Metrics File:     %s\n", c.Output.MetricsFile)
	}
	if c.InfluxDB.URL != "" {
		fmt.Printf("InfluxDB:         %s (%s/%s)\n", c.InfluxDB.URL, c.InfluxDB.Org, c.InfluxDB.Bucket)
	}
	fmt.Println("=======================================")
}
