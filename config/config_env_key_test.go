package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"db": map[string]any{
			"maxOpenConns": 100,
			"queryTimeout": "10s",
		},
		"http": map[string]any{
			"allowOrigins": []any{},
			"rateLimit": map[string]any{
				"requestsPerMinute": 5,
			},
		},
		"secret": map[string]any{
			"key": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DB_MAXOPENCONNS", want: "db.maxOpenConns"},
		{envKey: "DB_QUERYTIMEOUT", want: "db.queryTimeout"},
		{envKey: "HTTP_RATELIMIT_REQUESTSPERMINUTE", want: "http.rateLimit.requestsPerMinute"},
		{envKey: "SECRET_KEY", want: "secret.key"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
