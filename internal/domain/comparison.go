package domain

import (
	"math"

	"github.com/vfg2006/site-analytics-api/pkg/utils"
)

// Trend é a direção da variação entre dois valores de métrica
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// ComparisonResult representa a variação percentual entre o valor atual e o anterior.
// Delta é sempre não-negativo; a direção fica em Trend.
type ComparisonResult struct {
	Delta float64 `json:"delta"`
	Trend Trend   `json:"trend"`
}

// ComputeChange calcula a variação percentual e a tendência entre dois valores.
// Quando o valor anterior é zero não existe base de comparação, então o
// resultado é neutro com delta zero (evita divisão por zero e percentuais
// infinitos sem significado). A inversão de apresentação (ex.: bounce rate
// menor ser "bom") é decisão da camada de exibição, não deste cálculo.
func ComputeChange(current, previous float64) ComparisonResult {
	if previous == 0 {
		return ComparisonResult{Delta: 0, Trend: TrendNeutral}
	}

	delta := utils.RoundWithTwoDecimalPlace(math.Abs(current-previous) / previous * 100)

	trend := TrendNeutral
	switch {
	case current > previous:
		trend = TrendUp
	case current < previous:
		trend = TrendDown
	}

	return ComparisonResult{Delta: delta, Trend: trend}
}
