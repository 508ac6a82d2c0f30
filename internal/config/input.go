package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/marisk/marisk/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of analysis input files
type InputParser struct {
	Regulatory *domain.RegulatoryConfig
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{Regulatory: domain.DefaultRegulatory()}
}

// LoadFromFile loads an analysis configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// LoadRegulatoryFromFile loads a regulatory table override from a YAML file.
// Sections absent from the file keep their built-in defaults.
func LoadRegulatoryFromFile(filename string) (*domain.RegulatoryConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	regulatory := domain.DefaultRegulatory()
	if err := yaml.Unmarshal(data, regulatory); err != nil {
		return nil, fmt.Errorf("failed to parse regulatory YAML: %w", err)
	}
	return regulatory, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateAnalysisSettings(&config.Analysis); err != nil {
		return fmt.Errorf("analysis settings validation failed: %w", err)
	}
	for i, voyage := range config.Voyages {
		if err := ip.validateVoyage(&voyage); err != nil {
			return fmt.Errorf("voyage %d (%s) validation failed: %w", i, voyage.Reference, err)
		}
	}
	for i, position := range config.FFAPositions {
		if err := ip.validatePosition(&position); err != nil {
			return fmt.Errorf("ffa position %d (%s) validation failed: %w", i, position.Route, err)
		}
	}
	for i, payment := range config.Payments {
		if err := ip.validatePayment(&payment); err != nil {
			return fmt.Errorf("payment %d (%s) validation failed: %w", i, payment.Reference, err)
		}
	}
	return nil
}

func (ip *InputParser) validateAnalysisSettings(settings *domain.AnalysisSettings) error {
	if settings.Year < 2023 || settings.Year > 2100 {
		return fmt.Errorf("analysis year must be between 2023 and 2100")
	}
	if settings.ReferenceDate.IsZero() {
		return fmt.Errorf("reference date is required")
	}
	if settings.EtsPriceEur != nil && settings.EtsPriceEur.IsNegative() {
		return fmt.Errorf("ETS allowance price cannot be negative")
	}
	if !settings.VaRConfidence.IsZero() {
		if !settings.VaRConfidence.IsPositive() || !settings.VaRConfidence.LessThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("VaR confidence must be between 0 and 1 exclusive")
		}
	}
	if settings.VaRMethod != "" && settings.VaRMethod != "historical" && settings.VaRMethod != "parametric" {
		return fmt.Errorf("VaR method must be 'historical' or 'parametric'")
	}
	if settings.AnnualVolatility.IsNegative() {
		return fmt.Errorf("annual volatility cannot be negative")
	}
	if settings.CashFlowFreq != "" && settings.CashFlowFreq != domain.FrequencyWeekly && settings.CashFlowFreq != domain.FrequencyMonthly {
		return fmt.Errorf("cash flow frequency must be 'weekly' or 'monthly'")
	}
	if settings.CashFlowPeriods < 0 {
		return fmt.Errorf("cash flow periods cannot be negative")
	}
	if settings.PeriodDays < 0 {
		return fmt.Errorf("period days cannot be negative")
	}
	for _, fuel := range settings.CompareFuels {
		if !ip.Regulatory.Fuels.Known(fuel) {
			return fmt.Errorf("unknown fuel type in comparison list: %s", fuel)
		}
	}
	return nil
}

func (ip *InputParser) validateVoyage(voyage *domain.Voyage) error {
	if voyage.Reference == "" {
		return fmt.Errorf("voyage reference is required")
	}
	if voyage.VesselType == "" {
		return fmt.Errorf("vessel type is required")
	}
	if !voyage.Dwt.IsPositive() {
		return fmt.Errorf("deadweight must be positive")
	}
	if !voyage.DistanceNm.IsPositive() {
		return fmt.Errorf("distance must be positive")
	}
	if !ip.Regulatory.Fuels.Known(voyage.FuelType) {
		return fmt.Errorf("unknown fuel type: %s", voyage.FuelType)
	}
	if voyage.DailyConsumptionMt.IsNegative() {
		return fmt.Errorf("daily consumption cannot be negative")
	}
	if voyage.VoyageDays.IsNegative() {
		return fmt.Errorf("voyage days cannot be negative")
	}
	switch voyage.VoyageType {
	case domain.VoyageIntraEU, domain.VoyageEURelated, domain.VoyageNonEU:
	default:
		return fmt.Errorf("voyage type must be 'intra_eu', 'eu_related' or 'non_eu'")
	}
	return nil
}

func (ip *InputParser) validatePosition(position *domain.FFAPosition) error {
	if position.Route == "" {
		return fmt.Errorf("route is required")
	}
	if position.EntryPrice.IsNegative() {
		return fmt.Errorf("entry price cannot be negative")
	}
	if position.CurrentPrice.IsNegative() {
		return fmt.Errorf("current price cannot be negative")
	}
	if !position.Quantity.IsPositive() {
		return fmt.Errorf("quantity must be positive")
	}
	if !position.LotSize.IsPositive() {
		return fmt.Errorf("lot size must be positive")
	}
	if position.Direction != domain.DirectionLong && position.Direction != domain.DirectionShort {
		return fmt.Errorf("direction must be 'long' or 'short'")
	}
	return nil
}

func (ip *InputParser) validatePayment(payment *domain.PaymentRecord) error {
	if payment.Reference == "" {
		return fmt.Errorf("payment reference is required")
	}
	if payment.Amount.IsNegative() {
		return fmt.Errorf("amount cannot be negative")
	}
	if payment.DueDate.IsZero() {
		return fmt.Errorf("due date is required")
	}
	switch payment.Status {
	case domain.StatusPending, domain.StatusOverdue, domain.StatusDisputed,
		domain.StatusPaid, domain.StatusCancelled, domain.StatusWrittenOff:
	default:
		return fmt.Errorf("unknown payment status: %s", payment.Status)
	}
	if payment.Kind != domain.KindReceivable && payment.Kind != domain.KindPayable {
		return fmt.Errorf("payment kind must be 'receivable' or 'payable'")
	}
	if payment.Currency != "" && len(strings.TrimSpace(payment.Currency)) != 3 {
		return fmt.Errorf("currency must be a three-letter code")
	}
	return nil
}
