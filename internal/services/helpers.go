package services

import "time"

func tokenExpiry(ttl time.Duration) *time.Time {
	t := time.Now().Add(ttl)
	return &t
}

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}
