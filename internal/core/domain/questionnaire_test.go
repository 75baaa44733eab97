package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
)

func TestParseSortOrder(t *testing.T) {
	tests := map[string]struct {
		raw  string
		want domain.SortOrder
	}{
		"empty":   {raw: "", want: domain.SortLatest},
		"latest":  {raw: "latest", want: domain.SortLatest},
		"popular": {raw: "popular", want: domain.SortPopular},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := domain.ParseSortOrder(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseSortOrder_Unknown(t *testing.T) {
	for _, raw := range []string{"hot", "Popular", " latest"} {
		_, err := domain.ParseSortOrder(raw)
		assert.ErrorIs(t, err, domain.ErrInvalidSort)
	}
}
