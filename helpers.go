// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package segmeta

import (
	"encoding"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Rational is implemented by both Rat[uint32] and Rat[int32].
type Rational interface {
	Float64() float64
	String() string
}

// Rat is a rational number.
type Rat[T int32 | uint32] interface {
	Num() T
	Den() T
	Float64() float64

	// String returns the string representation of the rational number.
	// If the denominator is 1, the string will be the numerator only.
	String() string
}

var (
	_ encoding.TextUnmarshaler = (*rat[int32])(nil)
	_ encoding.TextMarshaler   = rat[int32]{}
	_ Rational                 = rat[uint32]{}
)

var errZeroDenominator = errors.New("denominator must be non-zero")

// rat is a rational number.
// It's a lightweight version of math/big.rat.
type rat[T int32 | uint32] struct {
	num T
	den T
}

// Num returns the numerator of the rational number.
func (r rat[T]) Num() T {
	return r.num
}

// Den returns the denominator of the rational number.
func (r rat[T]) Den() T {
	return r.den
}

// Float64 returns the float64 representation of the rational number.
// A zero denominator gives ±Inf or NaN.
func (r rat[T]) Float64() float64 {
	return float64(r.num) / float64(r.den)
}

// String returns the string representation of the rational number.
// If the denominator is 1, the string will be the numerator only.
func (r rat[T]) String() string {
	if r.den == 1 {
		return fmt.Sprintf("%d", r.num)
	}
	return fmt.Sprintf("%d/%d", r.num, r.den)
}

// Format implements fmt.Formatter so %f and friends print the float value.
func (r rat[T]) Format(f fmt.State, verb rune) {
	switch verb {
	case 'f', 'g', 'e':
		prec, ok := f.Precision()
		if !ok {
			prec = -1
		}
		fmt.Fprint(f, strconv.FormatFloat(r.Float64(), byte(verb), prec, 64))
	default:
		fmt.Fprint(f, r.String())
	}
}

func (r *rat[T]) UnmarshalText(text []byte) error {
	s := string(text)
	if !strings.Contains(s, "/") {
		num, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("failed to parse %q as a rational number: %w", s, err)
		}
		r.num = T(num)
		r.den = 1
		return nil
	}
	if _, err := fmt.Sscanf(s, "%d/%d", &r.num, &r.den); err != nil {
		return fmt.Errorf("failed to parse %q as a rational number: %w", s, err)
	}
	return nil
}

func (r rat[T]) MarshalText() (text []byte, err error) {
	return []byte(r.String()), nil
}

// NewRat returns a new Rat with the given numerator and denominator.
// The result is normalized: the greatest common divisor is removed and the denominator is positive.
func NewRat[T int32 | uint32](num, den T) (Rat[T], error) {
	if den == 0 {
		return nil, errZeroDenominator
	}

	// Remove the greatest common divisor.
	gcd := func(a, b T) T {
		for b != 0 {
			a, b = b, a%b
		}
		return a
	}
	d := gcd(num, den)
	if d != 1 && d != 0 {
		num, den = num/d, den/d
	}

	// Denominator must be positive.
	if den < 0 {
		num, den = -num, -den
	}

	return &rat[T]{num: num, den: den}, nil
}

// newRatRaw returns the rational exactly as stored on the wire,
// zero denominators included.
func newRatRaw[T int32 | uint32](num, den T) Rat[T] {
	return &rat[T]{num: num, den: den}
}

func printableString(s string) string {
	ss := strings.Map(func(r rune) rune {
		if unicode.IsGraphic(r) {
			return r
		}
		return -1
	}, s)

	return strings.TrimSpace(ss)
}

func trimTrailingNulls(b []byte) []byte {
	hi := len(b)
	for hi > 0 && b[hi-1] == 0 {
		hi--
	}
	return b[:hi]
}
