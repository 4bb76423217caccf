package store

import (
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"time"

	"envirotrack/internal/classify"
	"envirotrack/internal/hw"
)

//go:embed sql/insert-log.sql
var insertLogSQL string

//go:embed sql/get-latest-logs.sql
var getLatestLogsSQL string

// TimeLayout is the UTC timestamp format stored in the ts column.
const TimeLayout = "2006-01-02 15:04:05"

// Record is the unit of durable persistence: one classified reading with its
// acquisition time. Records are append-only; the monitor never updates or
// deletes them.
type Record struct {
	ID      int64
	Reading hw.Reading
	Labels  classify.Classification
	Time    time.Time
}

// SensorLog is the append-only persistence sink for classified readings.
type SensorLog interface {
	// Append durably stores one record as a single atomic insert. On
	// failure nothing is written and the error is returned to the caller,
	// which decides whether to continue.
	Append(rec Record) error
	// Latest returns up to n records, newest first. The monitor loops never
	// call this; it exists for tooling and tests.
	Latest(n int) ([]Record, error)
}

type sensorLogImpl struct {
	db *sql.DB
}

func NewSensorLog(db *sql.DB) SensorLog {
	return &sensorLogImpl{db: db}
}

func (s *sensorLogImpl) Append(rec Record) error {
	_, err := s.db.Exec(insertLogSQL,
		rec.Reading.Temperature, rec.Reading.Humidity, rec.Reading.Pressure,
		rec.Reading.Pitch, rec.Reading.Roll, rec.Reading.Yaw,
		string(rec.Labels.Temperature), string(rec.Labels.Humidity),
		string(rec.Labels.Pressure), string(rec.Labels.Orientation),
		rec.Time.UTC().Format(TimeLayout),
	)
	if err != nil {
		return fmt.Errorf("append sensor log: %w", err)
	}
	return nil
}

func (s *sensorLogImpl) Latest(n int) ([]Record, error) {
	rows, err := s.db.Query(getLatestLogsSQL, n)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("close sensor log rows", "error", err)
		}
	}()

	var out []Record
	for rows.Next() {
		var rec Record
		var ts string
		var tempStatus, humStatus, prsStatus, oriStatus string
		if err := rows.Scan(&rec.ID,
			&rec.Reading.Temperature, &rec.Reading.Humidity, &rec.Reading.Pressure,
			&rec.Reading.Pitch, &rec.Reading.Roll, &rec.Reading.Yaw,
			&tempStatus, &humStatus, &prsStatus, &oriStatus, &ts,
		); err != nil {
			return nil, err
		}
		rec.Labels = classify.Classification{
			Temperature: classify.Status(tempStatus),
			Humidity:    classify.Status(humStatus),
			Pressure:    classify.Status(prsStatus),
			Orientation: classify.Status(oriStatus),
		}
		t, err := time.Parse(TimeLayout, ts)
		if err != nil {
			return nil, fmt.Errorf("parse timestamp %q: %w", ts, err)
		}
		rec.Time = t
		out = append(out, rec)
	}
	return out, rows.Err()
}
