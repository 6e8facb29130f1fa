package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var errInvalidPrice = errors.New("price must be a non-negative amount with at most two decimals")

// maxPriceUnits keeps units*100+cents inside int64.
const maxPriceUnits = (math.MaxInt64 - 99) / 100

// Price is an amount in cents. It is stored and rendered as a decimal string ("10.00").
type Price int64

func ParsePrice(s string) (Price, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return 0, errInvalidPrice
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if hasFrac && (frac == "" || len(frac) > 2 || strings.ContainsAny(frac, "+-")) {
		return 0, errInvalidPrice
	}
	for len(frac) < 2 {
		frac += "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units < 0 || units > maxPriceUnits {
		return 0, errInvalidPrice
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, errInvalidPrice
	}

	return Price(units*100 + cents), nil
}

func (p Price) String() string {
	return fmt.Sprintf("%d.%02d", int64(p)/100, int64(p)%100)
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(p.String())), nil
}

// UnmarshalJSON accepts both "10.00" and 10.00.
func (p *Price) UnmarshalJSON(data []byte) error {
	s := string(data)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	v, err := ParsePrice(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}
