package service

import (
	"fmt"

	formuladomain "github.com/swiftcargo/freightd/internal/formula/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type ServiceParams struct {
	fx.In

	Log *zap.Logger
}

type Service struct {
	log *zap.Logger
}

func NewService(p ServiceParams) formuladomain.Service {
	return &Service{
		log: p.Log.Named("formula.service"),
	}
}

// CalculateCBM returns the shipment volume in cubic meters from centimeter
// dimensions. Dimensions must be strictly positive and pieces at least 1;
// nothing is clamped.
func (s *Service) CalculateCBM(length, width, height float64, pieces int) (float64, error) {
	if length <= 0 {
		return 0, fmt.Errorf("%w: length must be greater than zero", formuladomain.ErrInvalidInput)
	}
	if width <= 0 {
		return 0, fmt.Errorf("%w: width must be greater than zero", formuladomain.ErrInvalidInput)
	}
	if height <= 0 {
		return 0, fmt.Errorf("%w: height must be greater than zero", formuladomain.ErrInvalidInput)
	}
	if pieces < 1 {
		return 0, fmt.Errorf("%w: pieces must be at least 1", formuladomain.ErrInvalidInput)
	}

	return (length * width * height * float64(pieces)) / 1_000_000, nil
}

// CalculateVolumetricWeight converts volume to kg using the mode's factor.
// Zero cbm is valid and yields zero.
func (s *Service) CalculateVolumetricWeight(cbm float64, mode string) (float64, error) {
	if cbm < 0 {
		return 0, fmt.Errorf("%w: cbm must not be negative", formuladomain.ErrInvalidInput)
	}

	entry, ok := formuladomain.LookupTransportMode(mode)
	if !ok {
		return 0, fmt.Errorf("%w: unknown transport mode %q", formuladomain.ErrInvalidInput, mode)
	}

	return cbm * entry.Factor, nil
}

// ChargeableWeight returns the greater of actual and volumetric weight.
// Ties resolve to the actual side.
func (s *Service) ChargeableWeight(actual, volumetric float64) (float64, formuladomain.WeightType, error) {
	if actual < 0 {
		return 0, "", fmt.Errorf("%w: actual weight must not be negative", formuladomain.ErrInvalidInput)
	}
	if volumetric < 0 {
		return 0, "", fmt.Errorf("%w: volumetric weight must not be negative", formuladomain.ErrInvalidInput)
	}

	if actual >= volumetric {
		return actual, formuladomain.WeightTypeActual, nil
	}
	return volumetric, formuladomain.WeightTypeVolumetric, nil
}

// CalculateAll composes the three conversions end to end. Any sub-step
// failure aborts the whole calculation.
func (s *Service) CalculateAll(req formuladomain.CalculationRequest) (*formuladomain.CalculationResult, error) {
	cbm, err := s.CalculateCBM(req.Length, req.Width, req.Height, req.Pieces)
	if err != nil {
		return nil, err
	}

	volumetric, err := s.CalculateVolumetricWeight(cbm, req.Mode)
	if err != nil {
		return nil, err
	}

	chargeable, weightType, err := s.ChargeableWeight(req.ActualWeight, volumetric)
	if err != nil {
		return nil, err
	}

	return &formuladomain.CalculationResult{
		CBM:              cbm,
		VolumetricWeight: volumetric,
		ChargeableWeight: chargeable,
		WeightType:       weightType,
	}, nil
}

// SupportedModes exposes the rating table for display use.
func (s *Service) SupportedModes() map[string]formuladomain.TransportMode {
	return formuladomain.TransportModes()
}
