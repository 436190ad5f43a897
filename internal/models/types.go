package models

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FlexInt is an integer column whose JSON form in the wild may be a
// number, a numeric string, a junk string, or null. Anything that does
// not parse reads as zero.
type FlexInt int

func (f FlexInt) Int() int { return int(f) }

func (f FlexInt) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(f))), nil
}

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), "\"")
	if s == "null" || s == "" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexInt(n)
	return nil
}

func (f FlexInt) Value() (driver.Value, error) {
	return int64(f), nil
}

func (f *FlexInt) Scan(v any) error {
	switch value := v.(type) {
	case nil:
		*f = 0
	case int64:
		*f = FlexInt(value)
	case int32:
		*f = FlexInt(value)
	case string:
		n, err := strconv.Atoi(value)
		if err != nil {
			*f = 0
			return nil
		}
		*f = FlexInt(n)
	default:
		return fmt.Errorf("can not convert %v to integer", v)
	}
	return nil
}

// Date is a nullable calendar date. The zero value marshals as null and
// is stored as NULL.
type Date time.Time

const dateLayout = "2006-01-02"

func (d Date) IsZero() bool { return time.Time(d).IsZero() }

func (d Date) ToTime() time.Time { return time.Time(d) }

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return time.Time(d).Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + time.Time(d).Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), "\"")
	if s == "null" || s == "" {
		*d = Date(time.Time{})
		return nil
	}
	// Accept plain dates as well as full timestamps.
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("can not parse %q as date", s)
		}
	}
	*d = Date(t)
	return nil
}

func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return time.Time(d), nil
}

func (d *Date) Scan(v any) error {
	switch value := v.(type) {
	case nil:
		*d = Date(time.Time{})
	case time.Time:
		*d = Date(value)
	case string:
		t, err := time.Parse(dateLayout, value)
		if err != nil {
			return fmt.Errorf("can not parse %q as date", value)
		}
		*d = Date(t)
	default:
		return fmt.Errorf("can not convert %v to date", v)
	}
	return nil
}
