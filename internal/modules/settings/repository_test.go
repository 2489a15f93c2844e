package settings

import (
	"database/sql"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, InitSchema(db))

	return NewRepository(db, zerolog.Nop())
}

func TestRepositoryGetSet(t *testing.T) {
	repo := newTestRepo(t)

	t.Run("missing key returns nil", func(t *testing.T) {
		value, err := repo.Get(KeyDefaultBenchmark)
		require.NoError(t, err)
		assert.Nil(t, value)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, repo.Set(KeyDefaultBenchmark, "^GSPC"))

		value, err := repo.Get(KeyDefaultBenchmark)
		require.NoError(t, err)
		require.NotNil(t, value)
		assert.Equal(t, "^GSPC", *value)
	})

	t.Run("set overwrites", func(t *testing.T) {
		require.NoError(t, repo.Set(KeyDefaultBenchmark, "^IXIC"))

		value, err := repo.Get(KeyDefaultBenchmark)
		require.NoError(t, err)
		require.NotNil(t, value)
		assert.Equal(t, "^IXIC", *value)
	})
}

func TestRepositoryGetFloat(t *testing.T) {
	repo := newTestRepo(t)

	t.Run("missing key returns nil", func(t *testing.T) {
		value, err := repo.GetFloat(KeyRiskFreeRate)
		require.NoError(t, err)
		assert.Nil(t, value)
	})

	t.Run("numeric value parses", func(t *testing.T) {
		require.NoError(t, repo.Set(KeyRiskFreeRate, "0.035"))

		value, err := repo.GetFloat(KeyRiskFreeRate)
		require.NoError(t, err)
		require.NotNil(t, value)
		assert.InDelta(t, 0.035, *value, 1e-12)
	})

	t.Run("non numeric value reads as nil", func(t *testing.T) {
		require.NoError(t, repo.Set(KeyRiskFreeRate, "three percent"))

		value, err := repo.GetFloat(KeyRiskFreeRate)
		require.NoError(t, err)
		assert.Nil(t, value)
	})
}

func TestRepositoryGetAll(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Set(KeyDefaultBenchmark, "^GSPC"))
	require.NoError(t, repo.Set(KeyDefaultPeriod, "3y"))

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		KeyDefaultBenchmark: "^GSPC",
		KeyDefaultPeriod:    "3y",
	}, all)
}

func TestValidateSetting(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		want    string
		wantErr bool
	}{
		{
			name:  "benchmark normalizes aliases",
			key:   KeyDefaultBenchmark,
			value: "s&p 500",
			want:  "^GSPC",
		},
		{
			name:    "empty benchmark rejected",
			key:     KeyDefaultBenchmark,
			value:   "  ",
			wantErr: true,
		},
		{
			name:  "valid period",
			key:   KeyDefaultPeriod,
			value: "5y",
			want:  "5y",
		},
		{
			name:    "unsupported period rejected",
			key:     KeyDefaultPeriod,
			value:   "2y",
			wantErr: true,
		},
		{
			name:  "valid risk free rate",
			key:   KeyRiskFreeRate,
			value: "0.04",
			want:  "0.04",
		},
		{
			name:    "risk free rate above one rejected",
			key:     KeyRiskFreeRate,
			value:   "4",
			wantErr: true,
		},
		{
			name:    "negative risk free rate rejected",
			key:     KeyRiskFreeRate,
			value:   "-0.01",
			wantErr: true,
		},
		{
			name:    "unknown key rejected",
			key:     "theme",
			value:   "dark",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateSetting(tt.key, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
