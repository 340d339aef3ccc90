package twsmodel

import (
	"github.com/larkhollow/twsgo/internal/twscat"
	"github.com/shopspring/decimal"
)

// Order carries the subset of the wire order block this implementation
// parses and encodes. The real protocol's order block has several dozen
// more rarely-used fields; the ones reproduced here are exactly the ones
// the spec's "representative non-trivial parsers" paragraph calls out by
// name (delta-neutral presence, hedge param, algo params, scale
// increments, condition list, soft-dollar tier) so that the parser's
// positional/conditional shape is faithfully exercised.
type Order struct {
	OrderID   OrderId
	ClientID  ClientId
	PermID    int64
	Action    twscat.Action
	TotalQty  decimal.Decimal
	OrderType twscat.OrderType
	LimitPrice  *float64
	AuxPrice    *float64
	TIF       twscat.TimeInForce
	OCAGroup  string
	Account   string
	OpenClose string
	Origin    int
	OrderRef  string
	Transmit  bool
	ParentID  OrderId

	HedgeType  string // "" means undefined, per spec
	HedgeParam string

	AlgoStrategy string
	AlgoParams   []TagValue

	// Scale order fields; present only when ScalePriceIncrement != nil
	// and > 0 (per the spec's open-order parser shape).
	ScaleInitLevelSize  *int
	ScaleSubsLevelSize  *int
	ScalePriceIncrement *float64
	ScalePriceAdjustValue *float64
	ScalePriceAdjustInterval *int
	ScaleProfitOffset   *float64
	ScaleAutoReset      bool
	ScaleInitPosition   *int
	ScaleInitFillQty    *int
	ScaleRandomPercent  bool

	Conditions       []OrderCondition
	ConditionsIgnoreRth bool
	ConditionsCancelOrder bool

	SoftDollarTier SoftDollarTier

	Status OrderStatusValue
}

// SoftDollarTier is the name/value/display triple the open-order parser
// reads as a unit.
type SoftDollarTier struct {
	Name    string
	Value   string
	Display string
}

// OrderCondition is a typed union over the condition kinds the original
// implementation's order.rs enumerates (price/time/margin/execution/
// percent-change/volume/order conditions). Supplemental per SPEC_FULL §7:
// the distilled spec only says "read N conditions"; this carries the
// condition payloads as typed values instead of an opaque blob so a
// caller can actually inspect what a parsed open order is waiting on.
type OrderCondition struct {
	Type         ConditionType
	IsConjunction bool // AND if true, OR if false

	// Populated depending on Type.
	ConID    int64
	Exchange string
	IsMore   bool
	Price    float64
	PctChange float64
	Volume    int64
	Time      string
	Operator  string // for margin conditions: "<=" style comparator token
	PercentValue float64
}

type ConditionType int

const (
	ConditionPrice ConditionType = 1
	ConditionTime  ConditionType = 3
	ConditionMargin ConditionType = 4
	ConditionExecution ConditionType = 5
	ConditionVolume ConditionType = 6
	ConditionPercentChange ConditionType = 7
)

type OrderStatusValue struct {
	Status        string
	Filled        decimal.Decimal
	Remaining     decimal.Decimal
	AvgFillPrice  float64
	PermID        int64
	ParentID      OrderId
	LastFillPrice float64
	ClientID      ClientId
	WhyHeld       string
	MktCapPrice   float64
}
