package config

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"
)

var metricName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

func isLogLevel(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return fmt.Errorf("unknown log level %q", s)
	}
	return nil
}

func isDuration(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return stderrors.New("must be a duration such as 10s")
	}
	if d <= 0 {
		return stderrors.New("must be positive")
	}
	return nil
}
