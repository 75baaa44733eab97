package domain

type DailyCount struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

// OwnerAnalytics summarizes the votes received by every questionnaire of one owner.
type OwnerAnalytics struct {
	DailyStats []DailyCount `json:"dailyStats"`
	TotalVotes int          `json:"totalVotes"`
	Today      int          `json:"today"`
	Week       int          `json:"week"`
	Month      int          `json:"month"`
}

type TrendWord struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}
