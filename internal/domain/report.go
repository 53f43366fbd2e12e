package domain

// SectionName identifica uma seção independente do relatório do dashboard
type SectionName string

const (
	SectionOverview      SectionName = "overview"
	SectionSources       SectionName = "sources"
	SectionDevices       SectionName = "devices"
	SectionGeo           SectionName = "geo"
	SectionRealtimeUsers SectionName = "realtimeUsers"
	SectionSourceMedium  SectionName = "sourceMedium"
	SectionCampaigns     SectionName = "campaigns"
)

// ReportSections é o conjunto fixo de seções consultadas a cada relatório
var ReportSections = []SectionName{
	SectionOverview,
	SectionSources,
	SectionDevices,
	SectionGeo,
	SectionRealtimeUsers,
	SectionSourceMedium,
	SectionCampaigns,
}

// MetricSnapshot agrupa as métricas numéricas de uma janela de datas
type MetricSnapshot struct {
	PageViews          int64   `json:"pageViews"`
	Visitors           int64   `json:"visitors"`
	Sessions           int64   `json:"sessions"`
	BounceRate         float64 `json:"bounceRate"`
	AvgSessionDuration float64 `json:"avgSessionDuration"`
	NewUsers           int64   `json:"newUsers"`
}

// OverviewChanges traz a comparação período-a-período de cada métrica da visão geral
type OverviewChanges struct {
	PageViews          ComparisonResult `json:"pageViews"`
	Visitors           ComparisonResult `json:"visitors"`
	Sessions           ComparisonResult `json:"sessions"`
	BounceRate         ComparisonResult `json:"bounceRate"`
	AvgSessionDuration ComparisonResult `json:"avgSessionDuration"`
	NewUsers           ComparisonResult `json:"newUsers"`
}

// Overview é a seção principal do relatório: métricas da janela atual,
// da janela anterior e as variações entre elas
type Overview struct {
	Current  MetricSnapshot  `json:"current"`
	Previous MetricSnapshot  `json:"previous"`
	Changes  OverviewChanges `json:"changes"`
}

// CompareWindows preenche as variações a partir dos snapshots atual e anterior
func CompareWindows(current, previous MetricSnapshot) OverviewChanges {
	return OverviewChanges{
		PageViews:          ComputeChange(float64(current.PageViews), float64(previous.PageViews)),
		Visitors:           ComputeChange(float64(current.Visitors), float64(previous.Visitors)),
		Sessions:           ComputeChange(float64(current.Sessions), float64(previous.Sessions)),
		BounceRate:         ComputeChange(current.BounceRate, previous.BounceRate),
		AvgSessionDuration: ComputeChange(current.AvgSessionDuration, previous.AvgSessionDuration),
		NewUsers:           ComputeChange(float64(current.NewUsers), float64(previous.NewUsers)),
	}
}

// SourceEntry é uma origem de tráfego agregada
type SourceEntry struct {
	Source   string `json:"source"`
	Sessions int64  `json:"sessions"`
	Visitors int64  `json:"visitors"`
}

// DeviceEntry é a quebra por categoria de dispositivo (desktop, mobile, tablet)
type DeviceEntry struct {
	Category string `json:"category"`
	Sessions int64  `json:"sessions"`
	Visitors int64  `json:"visitors"`
}

// GeoEntry é a quebra por país
type GeoEntry struct {
	Country  string `json:"country"`
	Sessions int64  `json:"sessions"`
	Visitors int64  `json:"visitors"`
}

// RealtimeUsers traz o número de usuários ativos no momento da consulta
type RealtimeUsers struct {
	ActiveUsers int64 `json:"activeUsers"`
}

// SourceMediumEntry é a quebra combinada origem/mídia
type SourceMediumEntry struct {
	Source   string `json:"source"`
	Medium   string `json:"medium"`
	Sessions int64  `json:"sessions"`
	Visitors int64  `json:"visitors"`
}

// CampaignEntry é a quebra por campanha
type CampaignEntry struct {
	Campaign string `json:"campaign"`
	Sessions int64  `json:"sessions"`
	Visitors int64  `json:"visitors"`
}

// Report é a resposta completa do relatório. O conjunto de chaves é fixo:
// seções que falharam aparecem com coleções vazias ou zeros, nunca ausentes,
// para que o cliente renderize estados vazios sem checagens de existência.
type Report struct {
	Overview      Overview            `json:"overview"`
	Sources       []SourceEntry       `json:"sources"`
	Devices       []DeviceEntry       `json:"devices"`
	Geo           []GeoEntry          `json:"geo"`
	RealtimeUsers RealtimeUsers       `json:"realtimeUsers"`
	SourceMedium  []SourceMediumEntry `json:"sourceMedium"`
	Campaigns     []CampaignEntry     `json:"campaigns"`
}

// BlogPost é uma entrada do relatório de posts do blog
type BlogPost struct {
	Path      string `json:"path"`
	Title     string `json:"title"`
	PageViews int64  `json:"pageViews"`
}

// BlogReport é a resposta do endpoint /analytics/blog
type BlogReport struct {
	Posts []BlogPost `json:"posts"`
}

// PageEntry é uma entrada do relatório de páginas mais acessadas
type PageEntry struct {
	Path      string `json:"path"`
	PageViews int64  `json:"pageViews"`
	Visitors  int64  `json:"visitors"`
}

// PagesReport é a resposta do endpoint /analytics/pages
type PagesReport struct {
	Pages []PageEntry `json:"pages"`
}

// DailyClicks é o total de cliques de um dia
type DailyClicks struct {
	Date   string `json:"date"`
	Clicks int64  `json:"clicks"`
}

// ClicksReport é a resposta do endpoint /analytics/clicks
type ClicksReport struct {
	TotalClicks int64         `json:"totalClicks"`
	DailyClicks []DailyClicks `json:"dailyClicks"`
}
