package config

import "net/url"

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		// key=value DSN или мусор — не печатаем вовсе
		return "[redacted]"
	}
	return u.Redacted()
}
