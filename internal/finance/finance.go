// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package finance evaluates whether a vehicle fits the user's disclosed
// finances: estimated monthly payment, debt-to-income ratio, an
// affordability score in [0,1], a five-year cost of ownership, and the
// warnings a lender would raise.
package finance

import (
	"math"

	"github.com/pdiddy/drivematch/pkg/types"
)

// Evaluate runs the affordability model for one vehicle against the
// financial profile. It always returns a result; fields that cannot be
// computed from the disclosure (a DTI without income, for instance) are
// left at their marked-unknown state rather than guessed.
func Evaluate(v types.Vehicle, fp types.FinancialProfile, cfg types.FinanceConfig) types.AffordabilityResult {
	term := fp.LoanTermMonths
	if term <= 0 {
		term = cfg.DefaultTermMonths
	}

	principal := v.Price - fp.DownPayment - fp.TradeInValue
	if principal < 0 {
		principal = 0
	}

	rate := annualRate(fp, cfg)
	payment := MonthlyPayment(principal, rate, term)

	res := types.AffordabilityResult{
		MonthlyPayment: payment,
		TCO5Yr:         costOfOwnership(v, cfg),
	}

	income := fp.MonthlyIncomeOrDerived()
	if income > 0 {
		res.DTIKnown = true
		res.DTIPercent = payment / income * 100
	}

	res.AffordabilityScore = affordabilityScore(res, v, fp, term, cfg)
	res.Warnings = warnings(res, v, fp, term, cfg)
	return res
}

// annualRate looks up the interest rate for the profile's credit band.
// An undisclosed band borrows the mid-table fair rate so affordability
// stays estimable.
func annualRate(fp types.FinancialProfile, cfg types.FinanceConfig) float64 {
	band := fp.CreditBand
	if band == "" {
		band = types.CreditFair
	}
	return cfg.InterestRates[band]
}

// MonthlyPayment amortizes a loan: P*r*(1+r)^n / ((1+r)^n - 1) with r
// the monthly rate and n the term in months. A zero rate degenerates to
// straight division.
func MonthlyPayment(principal, annualRate float64, termMonths int) float64 {
	if principal <= 0 || termMonths <= 0 {
		return 0
	}
	r := annualRate / 12
	if r == 0 {
		return principal / float64(termMonths)
	}
	growth := math.Pow(1+r, float64(termMonths))
	return principal * r * growth / (growth - 1)
}

// affordabilityScore maps the DTI onto [0,1]: full marks at or below
// the comfortable threshold, linear decay to zero at the unaffordable
// threshold, then penalties for a thin down payment and an over-long
// term. Without income the score sits at the neutral 0.5 so unknown
// finances neither reward nor punish a vehicle.
func affordabilityScore(res types.AffordabilityResult, v types.Vehicle, fp types.FinancialProfile, term int, cfg types.FinanceConfig) float64 {
	if !res.DTIKnown {
		return 0.5
	}

	var score float64
	switch {
	case res.DTIPercent <= cfg.ComfortableDTIPercent:
		score = 1.0
	case res.DTIPercent >= cfg.UnaffordableDTIPercent:
		score = 0.0
	default:
		span := cfg.UnaffordableDTIPercent - cfg.ComfortableDTIPercent
		score = 1.0 - (res.DTIPercent-cfg.ComfortableDTIPercent)/span
	}

	if v.Price > 0 && fp.DownPayment < v.Price*cfg.MinDownPaymentRatio {
		score -= cfg.LowDownPaymentPenalty
	}
	if term > cfg.LongTermMonths {
		score -= cfg.LongTermPenalty
	}

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// costOfOwnership estimates five years of ownership: purchase price plus
// five years of fuel, insurance, and maintenance, less the resale value
// implied by the depreciation rate.
func costOfOwnership(v types.Vehicle, cfg types.FinanceConfig) float64 {
	running := 5 * (v.AnnualFuelCost + v.AnnualInsurance + v.AnnualMaintenance)
	resale := v.Price * (1 - cfg.DepreciationRate)
	return v.Price + running - resale
}

// warnings lists lender-style cautions in a fixed order so output stays
// byte-stable across runs.
func warnings(res types.AffordabilityResult, v types.Vehicle, fp types.FinancialProfile, term int, cfg types.FinanceConfig) []string {
	var out []string
	if res.DTIKnown && res.DTIPercent > cfg.UnaffordableDTIPercent {
		out = append(out, "high_dti")
	}
	if v.Price > 0 && fp.DownPayment < v.Price*cfg.MinDownPaymentRatio {
		out = append(out, "low_down_payment")
	}
	if term > cfg.LongTermMonths {
		out = append(out, "long_loan_term")
	}
	if fp.CreditBand == types.CreditPoor || fp.CreditBand == types.CreditVeryPoor {
		out = append(out, "subprime_credit")
	}
	return out
}
