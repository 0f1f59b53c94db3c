package models

// DailyRecord summarises one calendar day of demand in MW.
// Actual, PeakDemand and LowestDemand are nil for days after the last
// observed date.
type DailyRecord struct {
	Date                 string `json:"date"`
	Actual               *int   `json:"actual"`
	Predicted            int    `json:"predicted"`
	PeakDemand           *int   `json:"peakDemand"`
	PeakDemandForecast   int    `json:"peakDemandForecast"`
	LowestDemand         *int   `json:"lowestDemand"`
	LowestDemandForecast int    `json:"lowestDemandForecast"`
}

// HourlyRecord captures demand for a single hour of a day.
type HourlyRecord struct {
	Hour      int  `json:"hour"`
	Actual    *int `json:"actual"`
	Predicted int  `json:"predicted"`
}

// EnergySourceShare is one slice of the generation mix, in percent.
type EnergySourceShare struct {
	Source  string `json:"source"`
	Percent int    `json:"percent"`
}

// Insight is a short headline shown alongside the trends charts.
type Insight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
