package utils

import (
	"crypto/rand"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	NewTimestampID(t time.Time) int64
	FormatRupees(amount float64) string
}

type utils struct{}

func New() IUtils {
	return &utils{}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// NewTimestampID returns t as milliseconds since the Unix epoch. Two calls within the
// same millisecond return the same id.
func (u *utils) NewTimestampID(t time.Time) int64 {
	return t.UnixMilli()
}

// FormatRupees groups digits the Indian way (1,10,000) and keeps two decimals only
// when the amount has a fractional part.
func (u *utils) FormatRupees(amount float64) string {
	negative := amount < 0
	amount = math.Abs(amount)

	whole := math.Floor(amount)
	frac := math.Round((amount-whole)*100) / 100
	if frac >= 1 {
		whole++
		frac = 0
	}

	digits := strconv.FormatFloat(whole, 'f', 0, 64)

	var grouped string
	if len(digits) <= 3 {
		grouped = digits
	} else {
		head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		if head != "" {
			parts = append([]string{head}, parts...)
		}
		grouped = strings.Join(append(parts, tail), ",")
	}

	if frac > 0 {
		grouped += strings.TrimPrefix(strconv.FormatFloat(frac, 'f', 2, 64), "0")
	}

	if negative {
		return "-" + grouped
	}
	return grouped
}
