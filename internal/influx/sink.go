// Package influx publishes report runs to InfluxDB v2.
package influx

import (
	"context"
	"fmt"
	"time"

	"intf-report/internal/config"
	"intf-report/internal/logger"
	"intf-report/internal/model"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// Measurement names
const (
	DeviceMeasurement = "intf_report_device"
	FleetMeasurement  = "intf_report_fleet"
)

// Points converts a report into one point per device and one for the fleet.
func Points(result *model.ReportResult, ts time.Time) []*write.Point {
	points := make([]*write.Point, 0, len(result.Summary.Devices)+1)

	for _, d := range result.Summary.Devices {
		tags := map[string]string{"hostname": d.Hostname}
		if d.SiteName != "" {
			tags["site"] = d.SiteName
		}
		if d.SN != "" {
			tags["sn"] = d.SN
		}

		fields := map[string]interface{}{
			"total":                d.Total,
			"l1l2_up":              d.UpUp,
			"l1l2_down":            d.DownDown,
			"l1_up_l2_down":        d.UpDown,
			"l1l2_unknown":         d.Unknown,
			"admin_down":           d.AdminDown,
			"err_disabled":         d.ErrDisabled,
			"utilisation_percent":  d.Utilisation,
			"availability_percent": d.Availability,
		}
		points = append(points, influxdb2.NewPoint(DeviceMeasurement, tags, fields, ts))
	}

	fleet := map[string]interface{}{
		"total":        result.Summary.Total,
		"excluded":     result.Excluded,
		"admin_down":   result.Summary.AdminDown,
		"err_disabled": result.Summary.ErrDisabled,
	}
	for _, st := range result.Summary.Categories {
		key := fieldKey(st.Category)
		fleet[key] = st.Count
		fleet[key+"_percent"] = st.Percent
	}
	points = append(points, influxdb2.NewPoint(FleetMeasurement, map[string]string{}, fleet, ts))

	return points
}

// Publish writes the points of a report to the configured bucket.
func Publish(ctx context.Context, cfg config.InfluxDBConfig, result *model.ReportResult, ts time.Time) error {
	if cfg.URL == "" {
		return nil
	}

	client := influxdb2.NewClient(cfg.URL, cfg.Token)
	defer client.Close()

	points := Points(result, ts)
	writeAPI := client.WriteAPIBlocking(cfg.Org, cfg.Bucket)
	if err := writeAPI.WritePoint(ctx, points...); err != nil {
		return fmt.Errorf("failed to write to InfluxDB %s: %w", cfg.URL, err)
	}

	logger.WithFields(logger.Fields{
		"bucket": cfg.Bucket,
		"points": len(points),
	}).Debug("Published report to InfluxDB")
	return nil
}

func fieldKey(c model.Category) string {
	switch c {
	case model.CategoryUpUp:
		return "l1l2_up"
	case model.CategoryDownDown:
		return "l1l2_down"
	case model.CategoryUpDown:
		return "l1_up_l2_down"
	default:
		return "l1l2_unknown"
	}
}
