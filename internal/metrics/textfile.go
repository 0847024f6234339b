// Package metrics exposes the report as Prometheus gauges written to a
// node_exporter textfile.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"intf-report/internal/model"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every metric name
const Namespace = "intf_report"

// NewRegistry returns a registry holding the gauges of one report run.
func NewRegistry(result *model.ReportResult, generated time.Time) *prometheus.Registry {
	registry := prometheus.NewRegistry()

	interfaces := newGaugeVec(registry, "interfaces", "Kept interfaces per device and link state category.", "hostname", "site", "category")
	utilisation := newGaugeVec(registry, "port_utilisation_percent", "Percentage of device ports in use.", "hostname", "site")
	availability := newGaugeVec(registry, "port_availability_percent", "Percentage of device ports l1&l2 down.", "hostname", "site")
	fleet := newGaugeVec(registry, "fleet_interfaces", "Kept interfaces of the whole fleet per link state category.", "category")
	fleetPercent := newGaugeVec(registry, "fleet_interfaces_percent", "Share of the kept interfaces per link state category.", "category")

	excluded := newGauge(registry, "excluded_interfaces", "Interfaces left out by the exclusion pattern.")
	adminDown := newGauge(registry, "admin_down_interfaces", "Kept interfaces that are administratively down.")
	errDisabled := newGauge(registry, "err_disabled_interfaces", "Kept interfaces that are err-disabled.")
	timestamp := newGauge(registry, "generated_timestamp_seconds", "Unix time the report was generated.")

	for _, d := range result.Summary.Devices {
		for _, c := range model.Categories {
			interfaces.WithLabelValues(d.Hostname, d.SiteName, string(c)).Set(float64(d.Count(c)))
		}
		utilisation.WithLabelValues(d.Hostname, d.SiteName).Set(d.Utilisation)
		availability.WithLabelValues(d.Hostname, d.SiteName).Set(d.Availability)
	}
	for _, st := range result.Summary.Categories {
		fleet.WithLabelValues(string(st.Category)).Set(float64(st.Count))
		fleetPercent.WithLabelValues(string(st.Category)).Set(st.Percent)
	}

	excluded.Set(float64(result.Excluded))
	adminDown.Set(float64(result.Summary.AdminDown))
	errDisabled.Set(float64(result.Summary.ErrDisabled))
	timestamp.Set(float64(generated.Unix()))

	return registry
}

// WriteTextfile writes the gauges of a run to path, atomically.
func WriteTextfile(path string, result *model.ReportResult, generated time.Time) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create metrics directory: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, NewRegistry(result, generated)); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}

func newGauge(registry *prometheus.Registry, name string, help string) prometheus.Gauge {
	metric := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      name,
		Help:      help,
	})
	registry.MustRegister(metric)
	return metric
}

func newGaugeVec(registry *prometheus.Registry, name string, help string, labels ...string) *prometheus.GaugeVec {
	metric := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      name,
		Help:      help,
	}, labels)
	registry.MustRegister(metric)
	return metric
}
