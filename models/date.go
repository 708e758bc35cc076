package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

// leapYear 는 월/일 유효성 검사에 쓰는 기준 연도다. 2월 29일을 허용하기 위해 윤년을 쓴다.
const leapYear = 2000

// DateKey 는 연도와 무관한 월/일 쌍이다. 모든 생일 조회는 이 값을 키로 사용한다.
type DateKey struct {
	Month time.Month
	Day   int
}

func NewDateKey(month time.Month, day int) (DateKey, error) {
	if month < time.January || month > time.December || day < 1 {
		return DateKey{}, fmt.Errorf("%w: month=%d day=%d", ErrInvalidDate, month, day)
	}
	t := time.Date(leapYear, month, day, 0, 0, 0, 0, time.UTC)
	if t.Month() != month || t.Day() != day {
		return DateKey{}, fmt.Errorf("%w: month=%d day=%d", ErrInvalidDate, month, day)
	}
	return DateKey{Month: month, Day: day}, nil
}

// DateKeyFromTime 은 연도와 시각 정보를 버리고 월/일만 취한다.
func DateKeyFromTime(t time.Time) DateKey {
	return DateKey{Month: t.Month(), Day: t.Day()}
}

// ParseDateKey 는 "YYYY-MM-DD" 또는 "MM-DD" 를 받는다. 연도는 검증만 하고 버린다.
func ParseDateKey(s string) (DateKey, error) {
	s = strings.TrimSpace(s)
	switch strings.Count(s, "-") {
	case 2:
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return DateKey{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		return DateKeyFromTime(t), nil
	case 1:
		monthStr, dayStr, _ := strings.Cut(s, "-")
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			return DateKey{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		day, err := strconv.Atoi(dayStr)
		if err != nil {
			return DateKey{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		return NewDateKey(time.Month(month), day)
	default:
		return DateKey{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
}

func (d DateKey) IsZero() bool {
	return d.Month == 0 && d.Day == 0
}

// String 은 캐시 키 등에 쓰는 "MM-DD" 형식이다.
func (d DateKey) String() string {
	return fmt.Sprintf("%02d-%02d", int(d.Month), d.Day)
}

// Display 는 자연어 질의와 카드에 쓰는 "February 29" 형식이다.
func (d DateKey) Display() string {
	return fmt.Sprintf("%s %d", d.Month.String(), d.Day)
}

func (d DateKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DateKey) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDate, string(data))
	}
	parsed, err := ParseDateKey(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
