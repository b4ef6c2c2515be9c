package utils

import "time"

// ParseDate interpreta uma data YYYY-MM-DD; string vazia resulta em nil,
// deixando a obrigatoriedade a cargo do chamador
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// TruncateToDay normaliza o instante para meia-noite no mesmo fuso
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DatesBetween gera as datas entre start e end (inclusive), normalizadas para meia-noite
func DatesBetween(start, end time.Time) []time.Time {
	startDay := TruncateToDay(start)
	endDay := TruncateToDay(end)

	if startDay.After(endDay) {
		return []time.Time{}
	}

	var dates []time.Time
	for current := startDay; !current.After(endDay); current = current.AddDate(0, 0, 1) {
		dates = append(dates, current)
	}

	return dates
}
