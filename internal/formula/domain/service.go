package domain

// Service converts physical shipment dimensions and weight into the billable
// weight figures. All operations are pure; no call performs I/O.
type Service interface {
	CalculateCBM(length, width, height float64, pieces int) (float64, error)
	CalculateVolumetricWeight(cbm float64, mode string) (float64, error)
	ChargeableWeight(actual, volumetric float64) (float64, WeightType, error)
	CalculateAll(req CalculationRequest) (*CalculationResult, error)
	SupportedModes() map[string]TransportMode
}
