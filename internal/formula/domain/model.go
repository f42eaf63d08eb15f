package domain

import "strings"

// WeightType records which side of the actual/volumetric comparison won.
type WeightType string

const (
	WeightTypeActual     WeightType = "actual"
	WeightTypeVolumetric WeightType = "volumetric"
)

// TransportMode is a static rating table entry. Factor is the authoritative
// kg/m3 multiplier; Divisor is the industry display form (cm3 per kg) and is
// not required to be the exact reciprocal.
type TransportMode struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Factor  float64 `json:"factor"`
	Divisor float64 `json:"divisor"`
}

// transportModes is the single source of truth for mode rating. Keys are
// uppercase; lookups normalize before matching.
var transportModes = map[string]TransportMode{
	"AIR":     {Code: "AIR", Name: "Air Freight", Factor: 167, Divisor: 6000},
	"SEA_LCL": {Code: "SEA_LCL", Name: "Sea Freight (LCL)", Factor: 1000, Divisor: 1000},
	"SEA_FCL": {Code: "SEA_FCL", Name: "Sea Freight (FCL)", Factor: 1000, Divisor: 1000},
	"RAIL":    {Code: "RAIL", Name: "Rail Freight", Factor: 333, Divisor: 3000},
	"ROAD":    {Code: "ROAD", Name: "Road Freight", Factor: 500, Divisor: 2000},
}

// LookupTransportMode resolves a mode key case-insensitively.
func LookupTransportMode(code string) (TransportMode, bool) {
	mode, ok := transportModes[strings.ToUpper(strings.TrimSpace(code))]
	return mode, ok
}

// TransportModes returns a copy of the rating table keyed by mode code.
func TransportModes() map[string]TransportMode {
	out := make(map[string]TransportMode, len(transportModes))
	for code, mode := range transportModes {
		out[code] = mode
	}
	return out
}

// CalculationRequest is the raw input for an end-to-end calculation.
type CalculationRequest struct {
	Length       float64 `json:"length"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	Pieces       int     `json:"pieces"`
	ActualWeight float64 `json:"actual_weight"`
	Mode         string  `json:"mode"`
}

// CalculationResult carries every derived figure for a shipment.
type CalculationResult struct {
	CBM              float64    `json:"cbm"`
	VolumetricWeight float64    `json:"volumetric_weight"`
	ChargeableWeight float64    `json:"chargeable_weight"`
	WeightType       WeightType `json:"weight_type"`
}
