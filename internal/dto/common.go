package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Date accepts either YYYY-MM-DD or an RFC3339 timestamp and renders as YYYY-MM-DD.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	d.Time = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

// FlexibleAmount decodes any JSON value into a decimal. Numbers and numeric
// strings are parsed; anything else (booleans, null, objects, bad strings) becomes zero.
type FlexibleAmount struct {
	decimal.Decimal
}

func (f *FlexibleAmount) UnmarshalJSON(b []byte) error {
	f.Decimal = decimal.Zero

	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}
	switch v := raw.(type) {
	case float64:
		if d, err := decimal.NewFromString(strings.TrimSpace(string(b))); err == nil {
			f.Decimal = d
		} else {
			f.Decimal = decimal.NewFromFloat(v)
		}
	case string:
		if d, err := decimal.NewFromString(strings.TrimSpace(v)); err == nil {
			f.Decimal = d
		}
	}
	return nil
}

// IDResponse is returned by create endpoints.
type IDResponse struct {
	ID string `json:"id"`
}

// SuccessResponse is returned by mutating endpoints that have nothing else to report.
type SuccessResponse struct {
	Success bool `json:"success"`
}
