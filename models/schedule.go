package models

// Колонки недели: понедельник = 1 ... суббота = 6
const (
	Monday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

const WeekdayColumns = 6

// Подписи колонок для отображения, индекс = номер колонки - 1
var WeekdayLabels = [WeekdayColumns]string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}

type RowOrder string

const (
	RowOrderFirstSeen     RowOrder = "first-seen"
	RowOrderChronological RowOrder = "chronological"
)

type GridStatus string

const (
	GridStatusComplete GridStatus = "complete"
	GridStatusPartial  GridStatus = "partial"
	GridStatusEmpty    GridStatus = "empty"
)

type SkipKind string

const (
	SkipMalformedTime   SkipKind = "malformed_time"
	SkipInvalidInterval SkipKind = "invalid_interval"
	SkipUnknownWeekday  SkipKind = "unknown_weekday"
)

// GridRow - строка сетки для получасового слота
type GridRow struct {
	Label   string                 `json:"label"`
	Minutes int                    `json:"minutes"`
	Columns [WeekdayColumns]string `json:"columns"`
}

// Cells возвращает строку для таблицы: подпись времени и шесть дней
func (r GridRow) Cells() []string {
	cells := make([]string, 0, WeekdayColumns+1)
	cells = append(cells, r.Label)
	cells = append(cells, r.Columns[:]...)
	return cells
}

type SkippedInterval struct {
	Index    int      `json:"index"`
	Interval Interval `json:"interval"`
	Kind     SkipKind `json:"kind"`
	Reason   string   `json:"reason"`
}

type GridResult struct {
	Teacher string            `json:"teacher"`
	Order   RowOrder          `json:"order"`
	Status  GridStatus        `json:"status"`
	Rows    []GridRow         `json:"rows"`
	Skipped []SkippedInterval `json:"skipped"`
}

// Labels возвращает подписи строк в порядке сетки
func (g *GridResult) Labels() []string {
	labels := make([]string, 0, len(g.Rows))
	for _, row := range g.Rows {
		labels = append(labels, row.Label)
	}
	return labels
}
