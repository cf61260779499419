package database

import (
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	client, err := InitRedis(&RedisConfig{
		ServiceName: "blog-test",
		Host:        mr.Host(),
		Port:        port,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.Set(t.Context(), "k", "v", 0).Err())
	mr.CheckGet(t, "k", "v")
}

func TestInitRedis_Errors(t *testing.T) {
	_, err := InitRedis(nil)
	assert.Error(t, err)

	_, err = InitRedis(&RedisConfig{Host: "127.0.0.1", Port: 1})
	assert.Error(t, err)
}

func TestBuildDSN(t *testing.T) {
	conf := &PostgresConfig{Username: "u", Password: "p", Database: "blog"}
	setDefaults(conf)

	assert.Equal(t,
		"host=localhost user=u password=p dbname=blog port=5432 sslmode=disable TimeZone=UTC",
		buildDSN(conf))

	conf.SSLMode = true
	assert.Contains(t, buildDSN(conf), "sslmode=require")
}

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Go", "%go%"},
		{"100%", `%100\%%`},
		{"snake_case", `%snake\_case%`},
		{`a\b`, `%a\\b%`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ContainsPattern(tt.input))
		})
	}
}
