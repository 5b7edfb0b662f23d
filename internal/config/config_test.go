package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(overrides map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.Set("auth.secret_key", "0123456789abcdef")
	for k, val := range overrides {
		v.Set(k, val)
	}
	return v
}

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		overrides map[string]any
		wantErr   bool
		check     func(*testing.T, *Config)
	}{
		{
			name: "defaults",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DriverMongo, cfg.Store.Driver)
				assert.Equal(t, ":5000", cfg.HTTP.Addr)
				assert.Equal(t, []string{"google", "pythonanywhere", "mymemory"}, cfg.Translator.Providers)
				assert.Equal(t, 5*time.Second, cfg.Quiz.TranslateTimeout)
				assert.Equal(t, 10*time.Second, cfg.Quiz.Timeout)
			},
		},
		{
			name:      "durations from strings",
			overrides: map[string]any{"quiz.timeout": "3s", "auth.session_ttl": "2h"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 3*time.Second, cfg.Quiz.Timeout)
				assert.Equal(t, 2*time.Hour, cfg.Auth.SessionTTL)
			},
		},
		{
			name:      "missing secret",
			overrides: map[string]any{"auth.secret_key": ""},
			wantErr:   true,
		},
		{
			name:      "unknown driver",
			overrides: map[string]any{"store.driver": "redis"},
			wantErr:   true,
		},
		{
			name:      "postgres without connection",
			overrides: map[string]any{"store.driver": DriverPostgres},
			wantErr:   true,
		},
		{
			name: "postgres with connection",
			overrides: map[string]any{
				"store.driver":                 DriverPostgres,
				"store.postgres.conn.host":     "localhost",
				"store.postgres.conn.port":     "5432",
				"store.postgres.conn.user":     "u",
				"store.postgres.conn.password": "p",
				"store.postgres.conn.name":     "db",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "disable", cfg.Store.Postgres.Conn.SSL)
				assert.Equal(t, 10, cfg.Store.Postgres.Cfg.MaxOpenConns)
			},
		},
		{
			name:      "unknown provider",
			overrides: map[string]any{"translator.providers": []string{"deepl"}},
			wantErr:   true,
		},
		{
			name:      "bad env",
			overrides: map[string]any{"env": "qa"},
			wantErr:   true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := load(newViper(tt.overrides))
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}
