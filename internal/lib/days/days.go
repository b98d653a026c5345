// Package days считает календарные дни между датами дополнительных периодов опций.
package days

import "time"

// Count возвращает количество границ суток (полуночей) в интервале (begin, end].
// Даты приводятся к зоне begin, поэтому переход на летнее время не даёт лишних или потерянных суток.
// Если end раньше begin, результат отрицательный.
func Count(begin, end time.Time) int {
	end = end.In(begin.Location())

	from := civil(begin)
	to := civil(end)

	return int(to.Sub(from).Hours() / 24)
}

// Sum складывает количество дней по набору интервалов.
func Sum(intervals [][2]time.Time) int {
	total := 0
	for _, in := range intervals {
		total += Count(in[0], in[1])
	}
	return total
}

// civil переносит календарную дату t в полночь UTC, где все сутки длятся ровно 24 часа.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
