package domain

import (
	"errors"
	"time"

	"github.com/vfg2006/site-analytics-api/pkg/utils"
)

// Period é um token simbólico de período relativo aceito pela API
type Period string

const (
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	Period7Days     Period = "7daysAgo"
	Period14Days    Period = "14daysAgo"
	Period30Days    Period = "30daysAgo"
	Period90Days    Period = "90daysAgo"
)

// ErrUnknownPeriod indica que o token de período não pertence ao vocabulário aceito
var ErrUnknownPeriod = errors.New("período de relatório desconhecido")

// lookbackDays mapeia cada token para o número de dias antes de hoje em que a janela atual começa
var lookbackDays = map[Period]int{
	PeriodToday:     0,
	PeriodYesterday: 1,
	Period7Days:     7,
	Period14Days:    14,
	Period30Days:    30,
	Period90Days:    90,
}

// Window é um intervalo fechado de datas [Start, End]
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Days retorna o tamanho da janela em dias (intervalo inclusivo)
func (w Window) Days() int {
	return int(w.End.Sub(w.Start).Hours()/24) + 1
}

// WindowPair agrupa a janela atual e a janela anterior de comparação.
// Invariante: Previous.End + 1 dia = Current.Start, e ambas têm o mesmo tamanho.
type WindowPair struct {
	Current  Window `json:"current"`
	Previous Window `json:"previous"`
}

// ParsePeriod valida um token de período vindo da query string
func ParsePeriod(raw string) (Period, error) {
	period := Period(raw)
	if _, ok := lookbackDays[period]; !ok {
		return "", ErrUnknownPeriod
	}
	return period, nil
}

// ResolveWindows resolve um token de período no par de janelas concretas.
// Tokens "NdaysAgo" produzem a janela [hoje-N, hoje]; "today" e "yesterday"
// produzem janelas de um único dia. A janela anterior é o intervalo
// imediatamente precedente de mesmo tamanho, sem sobreposição nem lacuna.
func ResolveWindows(period Period, now time.Time) (WindowPair, error) {
	lookback, ok := lookbackDays[period]
	if !ok {
		return WindowPair{}, ErrUnknownPeriod
	}

	today := utils.StartOfDay(now)

	current := Window{
		Start: today.AddDate(0, 0, -lookback),
		End:   today,
	}

	if period == PeriodYesterday {
		current = Window{
			Start: today.AddDate(0, 0, -1),
			End:   today.AddDate(0, 0, -1),
		}
	}

	length := current.Days()
	previousEnd := current.Start.AddDate(0, 0, -1)
	previous := Window{
		Start: previousEnd.AddDate(0, 0, -(length - 1)),
		End:   previousEnd,
	}

	return WindowPair{Current: current, Previous: previous}, nil
}
