// Package timex provides a JSON and database friendly time type
// Package timex 提供对 JSON 和数据库友好的时间类型
package timex

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const layout = "2006-01-02 15:04:05"

// Time wraps time.Time, serialized as "2006-01-02 15:04:05"
// Time 封装 time.Time，序列化格式为 "2006-01-02 15:04:05"
type Time time.Time

// Now returns the current time as timex.Time
// Now 返回当前时间
func Now() Time {
	return Time(time.Now())
}

func (t Time) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, len(layout)+2)
	b = append(b, '"')
	b = time.Time(t).AppendFormat(b, layout)
	b = append(b, '"')
	return b, nil
}

func (t *Time) UnmarshalJSON(data []byte) error {
	if len(data) == 2 || string(data) == "null" {
		*t = Time(time.Time{})
		return nil
	}
	now, err := time.ParseInLocation(`"`+layout+`"`, string(data), time.Local)
	if err != nil {
		return err
	}
	*t = Time(now)
	return nil
}

// Value implements driver.Valuer for database writes
// Value 实现 driver.Valuer 用于数据库写入
func (t Time) Value() (driver.Value, error) {
	tt := time.Time(t)
	if tt.IsZero() {
		return nil, nil
	}
	return tt, nil
}

// Scan implements sql.Scanner for database reads
// Scan 实现 sql.Scanner 用于数据库读取
func (t *Time) Scan(v interface{}) error {
	switch value := v.(type) {
	case time.Time:
		*t = Time(value)
		return nil
	case string:
		tt, err := time.ParseInLocation(layout, value, time.Local)
		if err != nil {
			return err
		}
		*t = Time(tt)
		return nil
	case nil:
		*t = Time(time.Time{})
		return nil
	default:
		return fmt.Errorf("can not convert %v to timex.Time", v)
	}
}

func (t Time) String() string {
	return time.Time(t).Format(layout)
}

func (t Time) IsZero() bool {
	return time.Time(t).IsZero()
}

func (t Time) Unix() int64 {
	return time.Time(t).Unix()
}

func (t Time) UnixMilli() int64 {
	return time.Time(t).UnixMilli()
}

func (t Time) UnixMicro() int64 {
	return time.Time(t).UnixMicro()
}

func (t Time) UnixNano() int64 {
	return time.Time(t).UnixNano()
}
