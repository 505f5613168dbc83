package model

// BandPosition locates the current price relative to the Bollinger bands.
type BandPosition string

const (
	BandUpper  BandPosition = "Banda superior"
	BandMiddle BandPosition = "Banda media"
	BandLower  BandPosition = "Banda inferior"
)

// RSIZone classifies an RSI reading.
type RSIZone string

const (
	RSIOverbought RSIZone = "Sobrecompra"
	RSIOversold   RSIZone = "Sobreventa"
	RSINeutral    RSIZone = "Zona neutra"
)

// EntryZoneState reports whether the current price sits inside the
// support-based entry zone.
type EntryZoneState string

const (
	EntryActive       EntryZoneState = "Zona de entrada activa"
	EntryAwaitPull    EntryZoneState = "Esperar retroceso"
	EntryInsufficient EntryZoneState = "Datos insuficientes"
)

// RiskLevel is a qualitative risk grade for one horizon.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Bajo"
	RiskMedium RiskLevel = "Medio"
	RiskHigh   RiskLevel = "Alto"
)

// MovingAverage carries one SMA value and whether price sits above it.
type MovingAverage struct {
	Value      float64 `json:"value"`
	PriceAbove bool    `json:"price_above"`
}

// MovingAverages groups the 50/100/200-session simple moving averages.
// Nil entries mean the series is too short for that period.
type MovingAverages struct {
	MM50  *MovingAverage `json:"mm50,omitempty"`
	MM100 *MovingAverage `json:"mm100,omitempty"`
	MM200 *MovingAverage `json:"mm200,omitempty"`
}

// RSISignal is the Wilder-smoothed RSI reading with its zone.
type RSISignal struct {
	Value float64 `json:"value"`
	Zone  RSIZone `json:"zone"`
}

// MACDSignal holds the MACD line, its signal line and the trend reading.
// Signal stays 0 until at least 9 MACD values exist (35 bars).
type MACDSignal struct {
	Value   float64 `json:"macd_value"`
	Signal  float64 `json:"signal_value"`
	Bullish bool    `json:"is_bullish"`
}

// BollingerBands holds the 20-session mean and the ±2σ bands.
type BollingerBands struct {
	Upper    float64      `json:"upper"`
	Middle   float64      `json:"middle"`
	Lower    float64      `json:"lower"`
	Position BandPosition `json:"position"`
}

// VolumeAnalysis compares the latest session volume to the 30-day mean.
type VolumeAnalysis struct {
	Current      float64 `json:"current"`
	Average30d   float64 `json:"average_30d"`
	DeviationPct float64 `json:"deviation_pct"`
}

// EntryZone is the support range between the MM200 and the lower Bollinger
// band, with the percentage pullback needed to reach it when inactive.
type EntryZone struct {
	Min         float64        `json:"min"`
	Max         float64        `json:"max"`
	State       EntryZoneState `json:"state"`
	DistancePct float64        `json:"distance_pct"`
}

// RiskProfile carries the qualitative risk levels per horizon.
type RiskProfile struct {
	ShortTerm  RiskLevel `json:"short_term"`
	MediumTerm RiskLevel `json:"medium_term"`
	LongTerm   RiskLevel `json:"long_term"`
}

// IndicatorBundle holds every computed technical indicator for one ticker.
// It is built fresh from a price series on every analysis and never mutated.
type IndicatorBundle struct {
	CurrentPrice   float64         `json:"current_price"`
	MovingAverages MovingAverages  `json:"moving_averages"`
	RSI            *RSISignal      `json:"rsi,omitempty"`
	MACD           MACDSignal      `json:"macd"`
	Bollinger      *BollingerBands `json:"bollinger,omitempty"`
	Volume         *VolumeAnalysis `json:"volume,omitempty"`
	EntryZone      EntryZone       `json:"entry_zone"`
	Risk           RiskProfile     `json:"risk_levels"`
}
