package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"database": map[string]any{
			"isolationLevel": "",
			"migrateOnStart": true,
		},
		"steam": map[string]any{
			"apiKey":       "",
			"importMode":   "additive",
			"deletePolicy": "user_only",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "DATABASE_ISOLATIONLEVEL", want: "database.isolationLevel"},
		{envKey: "STEAM_APIKEY", want: "steam.apiKey"},
		{envKey: "STEAM_IMPORTMODE", want: "steam.importMode"},
		{envKey: "STEAM_DELETEPOLICY", want: "steam.deletePolicy"},
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
