package invoice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPeriodFor(t *testing.T) {
	tests := []struct {
		name      string
		closing   int
		ref       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "antes do fechamento fica no ciclo atual",
			closing:   10,
			ref:       day(2025, time.March, 5),
			wantStart: day(2025, time.February, 11),
			wantEnd:   day(2025, time.March, 10),
		},
		{
			name:      "depois do fechamento rola para o próximo ciclo",
			closing:   10,
			ref:       day(2025, time.March, 15),
			wantStart: day(2025, time.March, 11),
			wantEnd:   day(2025, time.April, 10),
		},
		{
			name:      "dia de fechamento conta para o ciclo atual",
			closing:   10,
			ref:       day(2025, time.March, 10),
			wantStart: day(2025, time.February, 11),
			wantEnd:   day(2025, time.March, 10),
		},
		{
			name:      "fechamento 31 encolhe em fevereiro",
			closing:   31,
			ref:       day(2025, time.February, 15),
			wantStart: day(2025, time.February, 1),
			wantEnd:   day(2025, time.February, 28),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := PeriodFor(tt.closing, tt.ref)
			assert.True(t, start.Equal(tt.wantStart), "início esperado %s, obteve %s", tt.wantStart, start)
			assert.True(t, end.Equal(tt.wantEnd), "fim esperado %s, obteve %s", tt.wantEnd, end)
		})
	}
}
