package recurrence

type RecurrenceKind string

const (
	KindIncome  RecurrenceKind = "receita"
	KindExpense RecurrenceKind = "despesa"
)

func (k RecurrenceKind) IsValid() bool {
	switch k {
	case KindIncome, KindExpense:
		return true
	}
	return false
}

type Periodicity string

const (
	PeriodWeekly  Periodicity = "semanal"
	PeriodMonthly Periodicity = "mensal"
	PeriodYearly  Periodicity = "anual"
)

func (p Periodicity) IsValid() bool {
	switch p {
	case PeriodWeekly, PeriodMonthly, PeriodYearly:
		return true
	}
	return false
}
