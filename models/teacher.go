package models

// Документ с расписанием консультаций, как он приходит из удалённого источника
type TutorshipsDocument struct {
	Teachers []TeacherRecord `json:"Teachers"`
}

type TeacherRecord struct {
	Name       string     `json:"Name" validate:"required"`
	Tutorships Tutorships `json:"Tutorships"`
}

type Tutorships struct {
	Planned []Interval `json:"Planned"`
}

// Interval - одна запланированная консультация. Время хранится в виде строк "HH:MM",
// разбор происходит при построении сетки.
type Interval struct {
	Day        string `json:"Day"`
	StartTime  string `json:"start_time"`
	EndingTime string `json:"ending_time"`
}

type Teacher struct {
	Name      string     `json:"name"`
	Intervals []Interval `json:"intervals"`
}

// ToTeacher переводит запись документа в модель преподавателя
func (r TeacherRecord) ToTeacher() Teacher {
	intervals := make([]Interval, len(r.Tutorships.Planned))
	copy(intervals, r.Tutorships.Planned)
	return Teacher{
		Name:      r.Name,
		Intervals: intervals,
	}
}
