package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/libx/internal/buf"
)

// ParseSize converts sizes such as "512", "64k", "4M" or "1g" to bytes.
// Suffixes are binary (k = 1024).
func ParseSize(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty size")
	}

	mul := 1
	switch s[len(s)-1] {
	case 'k':
		mul = 1 << 10
	case 'm':
		mul = 1 << 20
	case 'g':
		mul = 1 << 30
	}
	digits := s
	if mul != 1 {
		digits = strings.TrimSpace(s[:len(s)-1])
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative size %q", s)
	}
	total, ok := buf.Mul(n, mul)
	if !ok {
		return 0, fmt.Errorf("size %q overflows", s)
	}
	return total, nil
}
