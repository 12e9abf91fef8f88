package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_AlignsWithYAMLKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"dbName":  "biblio",
		},
	}

	assert.Equal(t, "postgres.sslMode", canonicalizeEnvKey("POSTGRES_SSLMODE", existing))
	assert.Equal(t, "postgres.dbName", canonicalizeEnvKey("POSTGRES_DBNAME", existing))
}

func TestCanonicalizeEnvKey_UnknownSegmentsFallThrough(t *testing.T) {
	existing := map[string]any{
		"http": map[string]any{
			"port": 8080,
		},
	}

	assert.Equal(t, "http.port", canonicalizeEnvKey("HTTP_PORT", existing))
	assert.Equal(t, "unknown.key", canonicalizeEnvKey("UNKNOWN_KEY", existing))
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "sslmode", normalizeToken("sslMode"))
	assert.Equal(t, "dbname", normalizeToken("db-name"))
}
