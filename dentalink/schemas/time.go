package schemas

import (
	"time"

	"dentalink-client/internal/pkg/constvars"

	"github.com/goccy/go-json"
)

// Date wraps a calendar date serialized as "2006-01-02".
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: t}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(constvars.DateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := time.Parse(constvars.DateLayout, raw)
	if err != nil {
		return err
	}
	d.Time = parsed
	return nil
}

// DateTime wraps a timestamp serialized as "2006-01-02 15:04:05".
type DateTime struct {
	time.Time
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(constvars.DateTimeLayout))
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := time.Parse(constvars.DateTimeLayout, raw)
	if err != nil {
		return err
	}
	d.Time = parsed
	return nil
}
