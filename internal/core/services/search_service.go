package services

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

const DefaultTrendLimit = 10

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"の", "が", "は", "に", "を", "へ", "と", "より", "から", "で", "や",
		"し", "て", "ない", "ある", "いる", "こと", "もの", "ため", "よう",
		"さん", "くん", "ちゃん", "これ", "それ", "あれ", "どれ", "なん", "どう",
		"投票", "アンケート", "質問", "募集", "今日", "明日", "昨日", "好き", "嫌い",
		"について", "みんな", "その他", "おねがい", "選択", "結果", "一番", "いつ",
		"the", "and", "for", "you", "your", "what", "which", "who", "how", "is", "are",
		"do", "or", "of", "to", "in", "on", "best", "poll", "vote",
	} {
		stopWords[w] = struct{}{}
	}
}

type searchService struct {
	questionnaires ports.QuestionnaireService
}

func NewSearchService(questionnaires ports.QuestionnaireService) ports.SearchService {
	return &searchService{questionnaires: questionnaires}
}

// Search matches query case-insensitively against titles and choices. An empty
// query matches nothing.
func (s *searchService) Search(ctx context.Context, query string) ([]domain.EnrichedQuestionnaire, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []domain.EnrichedQuestionnaire{}, nil
	}

	all, err := s.questionnaires.List(ctx, domain.ListOptions{})
	if err != nil {
		return nil, err
	}

	out := make([]domain.EnrichedQuestionnaire, 0)
	for _, item := range all {
		if matches(item, q) {
			out = append(out, item)
		}
	}
	return out, nil
}

func matches(item domain.EnrichedQuestionnaire, q string) bool {
	if strings.Contains(strings.ToLower(item.Title), q) {
		return true
	}
	for _, c := range item.Choices {
		if strings.Contains(strings.ToLower(c), q) {
			return true
		}
	}
	return false
}

// Trends returns the most frequent words across all questionnaire titles.
func (s *searchService) Trends(ctx context.Context, limit int) ([]domain.TrendWord, error) {
	if limit <= 0 {
		limit = DefaultTrendLimit
	}

	all, err := s.questionnaires.List(ctx, domain.ListOptions{})
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	var order []string
	for _, item := range all {
		for _, word := range Words(item.Title) {
			if !isTrendWord(word) {
				continue
			}
			if _, seen := counts[word]; !seen {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	trends := make([]domain.TrendWord, 0, len(order))
	for _, w := range order {
		trends = append(trends, domain.TrendWord{Word: w, Count: counts[w]})
	}
	sort.SliceStable(trends, func(i, j int) bool {
		return trends[i].Count > trends[j].Count
	})

	if len(trends) > limit {
		trends = trends[:limit]
	}
	return trends, nil
}

func isTrendWord(word string) bool {
	if len([]rune(word)) <= 1 {
		return false
	}
	if _, stop := stopWords[strings.ToLower(word)]; stop {
		return false
	}
	for _, r := range word {
		if !unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

type script int

const (
	scriptOther script = iota
	scriptHan
	scriptHiragana
	scriptKatakana
)

func scriptOf(r rune) script {
	switch {
	case unicode.Is(unicode.Han, r):
		return scriptHan
	case unicode.Is(unicode.Hiragana, r):
		return scriptHiragana
	case unicode.Is(unicode.Katakana, r), r == 'ー':
		return scriptKatakana
	default:
		return scriptOther
	}
}

// Words splits text into words. Words break on anything that is not a letter or
// digit, and on a change between Han, Hiragana, Katakana, and other scripts, which
// approximates word boundaries in Japanese text that has no spaces.
func Words(text string) []string {
	var words []string
	var current []rune
	last := scriptOther

	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	for _, r := range text {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != 'ー' {
			flush()
			continue
		}
		sc := scriptOf(r)
		if len(current) > 0 && sc != last {
			flush()
		}
		current = append(current, r)
		last = sc
	}
	flush()
	return words
}
