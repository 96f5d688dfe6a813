package domain

import "sort"

// DailySubscriberGrowth representa novos inscritos num período do histórico da audiência
type DailySubscriberGrowth struct {
	Date           string `json:"date"`
	NewSubscribers int    `json:"newSubscribers"`
}

// SortGrowthHistory ordena o histórico do mais antigo para o mais recente
func SortGrowthHistory(history []DailySubscriberGrowth) []DailySubscriberGrowth {
	sorted := make([]DailySubscriberGrowth, len(history))
	copy(sorted, history)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	return sorted
}
