// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files, with
// durations accepted either as strings ("30s") or as nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey   string   `json:"token_sign_key"`
		TokenIssuer    string   `json:"token_issuer"`
		TokenDuration  Duration `json:"token_duration"`
		TokenClockSkew Duration `json:"token_clock_skew"`
		Version        string   `json:"version"`
		LogLevel       string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			BinaryDataDir string `json:"binary_data_dir"`
		} `json:"files,omitempty"`

		Minio struct {
			Endpoint  string `json:"endpoint"`
			AccessKey string `json:"access_key"`
			SecretKey string `json:"secret_key"`
			Bucket    string `json:"bucket"`
			UseSSL    bool   `json:"use_ssl"`
		} `json:"minio,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxUploadSize  int64    `json:"max_upload_size"`
	} `json:"server,omitempty"`

	RateLimit struct {
		Quota           int      `json:"quota"`
		Window          Duration `json:"window"`
		BlockDuration   Duration `json:"block_duration"`
		CleanupInterval Duration `json:"cleanup_interval"`
		Redis           struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`
	} `json:"rate_limit,omitempty"`

	OAuth struct {
		Timeout Duration `json:"timeout"`
		Discord struct {
			ClientID     string `json:"client_id"`
			ClientSecret string `json:"client_secret"`
			RedirectURI  string `json:"redirect_uri"`
			TokenURL     string `json:"token_url"`
		} `json:"discord,omitempty"`
	} `json:"oauth,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:   jsonCfg.App.TokenSignKey,
			TokenIssuer:    jsonCfg.App.TokenIssuer,
			TokenDuration:  time.Duration(jsonCfg.App.TokenDuration),
			TokenClockSkew: time.Duration(jsonCfg.App.TokenClockSkew),
			Version:        jsonCfg.App.Version,
			LogLevel:       jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				BinaryDataDir: jsonCfg.Storage.Files.BinaryDataDir,
			},
			Minio: Minio{
				Endpoint:  jsonCfg.Storage.Minio.Endpoint,
				AccessKey: jsonCfg.Storage.Minio.AccessKey,
				SecretKey: jsonCfg.Storage.Minio.SecretKey,
				Bucket:    jsonCfg.Storage.Minio.Bucket,
				UseSSL:    jsonCfg.Storage.Minio.UseSSL,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			MaxUploadSize:  jsonCfg.Server.MaxUploadSize,
		},
		RateLimit: RateLimit{
			Quota:           jsonCfg.RateLimit.Quota,
			Window:          time.Duration(jsonCfg.RateLimit.Window),
			BlockDuration:   time.Duration(jsonCfg.RateLimit.BlockDuration),
			CleanupInterval: time.Duration(jsonCfg.RateLimit.CleanupInterval),
			Redis: Redis{
				Address:  jsonCfg.RateLimit.Redis.Address,
				Password: jsonCfg.RateLimit.Redis.Password,
				DB:       jsonCfg.RateLimit.Redis.DB,
			},
		},
		OAuth: OAuth{
			Timeout: time.Duration(jsonCfg.OAuth.Timeout),
			Discord: OAuthProvider{
				ClientID:     jsonCfg.OAuth.Discord.ClientID,
				ClientSecret: jsonCfg.OAuth.Discord.ClientSecret,
				RedirectURI:  jsonCfg.OAuth.Discord.RedirectURI,
				TokenURL:     jsonCfg.OAuth.Discord.TokenURL,
			},
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
