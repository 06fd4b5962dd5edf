package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"90s"`, want: 90 * time.Second},
		{name: "nanoseconds", input: `1000000000`, want: time.Second},
		{name: "bad string", input: `"ninety"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(time.Minute))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m0s"`, string(b))
}

func TestParseJSON_AllGroups(t *testing.T) {
	path := writeTempJSONConfig(t, `{
		"app": {"token_sign_key": "k", "token_issuer": "iss", "version": "v2"},
		"storage": {
			"db": {"dsn": "file:x.db"},
			"files": {"binary_data_dir": "/var/rpmtw"},
			"minio": {"endpoint": "minio:9000", "bucket": "b", "use_ssl": true}
		},
		"server": {"http_address": ":8080", "grpc_address": ":9090", "request_timeout": "5s", "max_upload_size": 1024},
		"rate_limit": {"quota": 7, "cleanup_interval": "10m", "redis": {"address": "redis:6379", "db": 2}},
		"oauth": {"timeout": "3s", "discord": {"client_id": "id", "redirect_uri": "http://cb"}}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "k", cfg.App.TokenSignKey)
	assert.Equal(t, "v2", cfg.App.Version)
	assert.Equal(t, "/var/rpmtw", cfg.Storage.Files.BinaryDataDir)
	assert.Equal(t, "minio:9000", cfg.Storage.Minio.Endpoint)
	assert.True(t, cfg.Storage.Minio.UseSSL)
	assert.Equal(t, ":9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, int64(1024), cfg.Server.MaxUploadSize)
	assert.Equal(t, 7, cfg.RateLimit.Quota)
	assert.Equal(t, 10*time.Minute, cfg.RateLimit.CleanupInterval)
	assert.Equal(t, 2, cfg.RateLimit.Redis.DB)
	assert.Equal(t, 3*time.Second, cfg.OAuth.Timeout)
	assert.Equal(t, "http://cb", cfg.OAuth.Discord.RedirectURI)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Malformed(t *testing.T) {
	path := writeTempJSONConfig(t, `{"app": `)

	_, err := parseJSON(path)
	assert.Error(t, err)
}
