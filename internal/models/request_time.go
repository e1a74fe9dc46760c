package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// requestTimeLayouts перебираются по порядку. Значения без смещения
// читаются в локальном часовом поясе сервера.
var requestTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// UnmarshalJSON принимает timeFrom и timeTo в RFC 3339, а также без
// смещения ("2024-01-01T00:00:00") и только дату ("2024-01-01").
// Отсутствующее или null время остается нулевым.
func (r *UserStatisticRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		UserID   string  `json:"userId"`
		TimeFrom *string `json:"timeFrom"`
		TimeTo   *string `json:"timeTo"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	from, err := parseRequestTime(raw.TimeFrom)
	if err != nil {
		return fmt.Errorf("timeFrom: %w", err)
	}
	to, err := parseRequestTime(raw.TimeTo)
	if err != nil {
		return fmt.Errorf("timeTo: %w", err)
	}

	r.UserID = raw.UserID
	r.TimeFrom = from
	r.TimeTo = to
	return nil
}

func parseRequestTime(value *string) (time.Time, error) {
	if value == nil {
		return time.Time{}, nil
	}
	for _, layout := range requestTimeLayouts {
		if t, err := time.ParseInLocation(layout, *value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported time format %q", *value)
}
