package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/quickpoll/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
)

func newSearchFixture() *memory.Store {
	store := memory.NewStore()
	store.Seed([]domain.QuestionnaireRecord{
		{ID: "t1", Title: "Best ramen in Tokyo", Choices: `["Ichiran","Afuri"]`},
		{ID: "t2", Title: "Ramen or udon", Choices: `["Ramen","Udon"]`},
		{ID: "t3", Title: "好きなラーメン屋", Choices: `["一蘭","天下一品"]`},
		{ID: "t4", Title: "ラーメン 2026", Choices: `["yes","no"]`},
		{ID: "t5", Title: "Weekend plans", Choices: `["Hiking","Sleep"]`},
	}, nil, nil)
	return store
}

func TestSearch(t *testing.T) {
	store := newSearchFixture()
	svc := NewSearchService(newQuestionnaireService(store, nil))
	ctx := context.Background()

	got, err := svc.Search(ctx, "RAMEN")
	require.NoError(t, err)
	assert.Equal(t, []string{"t2", "t1"}, ids(got))

	got, err = svc.Search(ctx, "hiking")
	require.NoError(t, err)
	assert.Equal(t, []string{"t5"}, ids(got))

	got, err = svc.Search(ctx, "一蘭")
	require.NoError(t, err)
	assert.Equal(t, []string{"t3"}, ids(got))

	got, err = svc.Search(ctx, "   ")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTrends(t *testing.T) {
	store := newSearchFixture()
	svc := NewSearchService(newQuestionnaireService(store, nil))

	got, err := svc.Trends(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, domain.TrendWord{Word: "ラーメン", Count: 2}, got[0])
	for _, w := range got {
		assert.NotEqual(t, "2026", w.Word)
		assert.NotEqual(t, "Best", w.Word)
	}
}

func TestTrends_EmptyStore(t *testing.T) {
	svc := NewSearchService(newQuestionnaireService(memory.NewStore(), nil))

	got, err := svc.Trends(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWords(t *testing.T) {
	tests := map[string]struct {
		text string
		want []string
	}{
		"spaces and punctuation": {text: "Ramen, or udon?", want: []string{"Ramen", "or", "udon"}},
		"script changes":         {text: "好きなラーメン屋", want: []string{"好", "きな", "ラーメン", "屋"}},
		"mixed latin and kana":   {text: "iPhoneとAndroid", want: []string{"iPhone", "と", "Android"}},
		"digits stay with latin": {text: "Top10 games", want: []string{"Top10", "games"}},
		"empty":                  {text: "", want: nil},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Words(tc.text))
		})
	}
}
