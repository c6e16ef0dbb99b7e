package reservation

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

type CustomerName struct {
	value string
}

func NewCustomerName(s string) (CustomerName, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return CustomerName{}, ErrBlankName
	}
	return CustomerName{value: t}, nil
}

func (n CustomerName) String() string { return n.value }

// ParseDate reads a civil date. The result is midnight UTC and only its
// year, month and day are meaningful.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}
