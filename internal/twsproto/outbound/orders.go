package outbound

import (
	"github.com/larkhollow/twsgo/internal/twscat"
	"github.com/larkhollow/twsgo/pkg/twsfield"
	"github.com/larkhollow/twsgo/pkg/twsmodel"
)

const versionPlaceOrder = 45

// EncodePlaceOrder writes the contract block followed by the order
// block. Order fields are written positionally and conditionally in the
// same shape the open-order parser (§4.5) must consume them in, so that
// a round trip through a test double server exercises both sides of the
// same layout.
func EncodePlaceOrder(sv twscat.ServerVersion, orderID twsmodel.OrderId, c twsmodel.Contract, o twsmodel.Order) []byte {
	w := twsfield.NewWriter()
	w.PutInt(int(twscat.PlaceOrder))
	if !sv.At(twscat.VOrderContainer) {
		w.PutInt(versionPlaceOrder)
	}
	w.PutInt64(int64(orderID))

	writeContract(w, c)
	w.PutString(c.SecIDType)
	w.PutString(c.SecID)

	w.PutString(o.Action.Wire())
	w.PutDecimal(o.TotalQty)
	w.PutString(o.OrderType.Wire())
	w.PutOptionalFloat(o.LimitPrice)
	w.PutOptionalFloat(o.AuxPrice)
	w.PutString(o.TIF.Wire())
	w.PutString(o.OCAGroup)
	w.PutString(o.Account)
	w.PutString(o.OpenClose)
	w.PutInt(o.Origin)
	w.PutString(o.OrderRef)
	w.PutBool(o.Transmit)
	w.PutInt64(int64(o.ParentID))

	writeComboLegs(w, c)

	if c.DeltaNeutral != nil {
		w.PutBool(true)
		w.PutInt64(c.DeltaNeutral.ConID)
		w.PutFloat(c.DeltaNeutral.Delta)
		w.PutFloat(c.DeltaNeutral.Price)
	} else {
		w.PutBool(false)
	}

	if o.HedgeType != "" {
		w.PutString(o.HedgeType)
		w.PutString(o.HedgeParam)
	} else {
		w.PutString("")
	}

	if o.AlgoStrategy != "" {
		w.PutString(o.AlgoStrategy)
		w.PutInt(len(o.AlgoParams))
		for _, kv := range o.AlgoParams {
			w.PutString(kv.Tag)
			w.PutString(kv.Value)
		}
	} else {
		w.PutString("")
	}

	writeScaleFields(w, o)
	writeConditions(w, o)

	w.PutString(o.SoftDollarTier.Name)
	w.PutString(o.SoftDollarTier.Value)
	w.PutString(o.SoftDollarTier.Display)

	return w.Bytes()
}

func writeScaleFields(w *twsfield.Writer, o twsmodel.Order) {
	if o.ScalePriceIncrement != nil && *o.ScalePriceIncrement > 0 {
		w.PutOptionalInt(o.ScaleInitLevelSize)
		w.PutOptionalInt(o.ScaleSubsLevelSize)
		w.PutOptionalFloat(o.ScalePriceIncrement)
		w.PutOptionalFloat(o.ScalePriceAdjustValue)
		w.PutOptionalInt(o.ScalePriceAdjustInterval)
		w.PutOptionalFloat(o.ScaleProfitOffset)
		w.PutBool(o.ScaleAutoReset)
		w.PutOptionalInt(o.ScaleInitPosition)
		w.PutOptionalInt(o.ScaleInitFillQty)
		w.PutBool(o.ScaleRandomPercent)
	} else {
		w.PutOptionalInt(nil)
		w.PutOptionalInt(nil)
	}
}

func writeConditions(w *twsfield.Writer, o twsmodel.Order) {
	w.PutInt(len(o.Conditions))
	for _, c := range o.Conditions {
		w.PutInt(int(c.Type))
		w.PutBool(c.IsConjunction)
		switch c.Type {
		case twsmodel.ConditionPrice:
			w.PutInt64(c.ConID)
			w.PutString(c.Exchange)
			w.PutBool(c.IsMore)
			w.PutFloat(c.Price)
		case twsmodel.ConditionTime:
			w.PutBool(c.IsMore)
			w.PutString(c.Time)
		case twsmodel.ConditionMargin:
			w.PutBool(c.IsMore)
			w.PutFloat(c.PercentValue)
		case twsmodel.ConditionExecution:
			w.PutString(c.Exchange)
			w.PutInt64(c.ConID)
		case twsmodel.ConditionVolume:
			w.PutInt64(c.ConID)
			w.PutString(c.Exchange)
			w.PutBool(c.IsMore)
			w.PutInt64(c.Volume)
		case twsmodel.ConditionPercentChange:
			w.PutInt64(c.ConID)
			w.PutString(c.Exchange)
			w.PutBool(c.IsMore)
			w.PutFloat(c.PctChange)
		}
	}
	if len(o.Conditions) > 0 {
		w.PutBool(o.ConditionsIgnoreRth)
		w.PutBool(o.ConditionsCancelOrder)
	}
}

func EncodeReqOpenOrders(sv twscat.ServerVersion) []byte {
	w := twsfield.NewWriter()
	w.PutInt(int(twscat.ReqOpenOrders))
	w.PutInt(1)
	return w.Bytes()
}

func EncodeReqAllOpenOrders(sv twscat.ServerVersion) []byte {
	w := twsfield.NewWriter()
	w.PutInt(int(twscat.ReqAllOpenOrders))
	w.PutInt(1)
	return w.Bytes()
}

func EncodeReqAutoOpenOrders(sv twscat.ServerVersion, autoBind bool) []byte {
	w := twsfield.NewWriter()
	w.PutInt(int(twscat.ReqAutoOpenOrders))
	w.PutInt(1)
	w.PutBool(autoBind)
	return w.Bytes()
}

func EncodeReqCompletedOrders(sv twscat.ServerVersion, apiOnly bool) []byte {
	w := twsfield.NewWriter()
	w.PutInt(int(twscat.ReqCompletedOrders))
	w.PutBool(apiOnly)
	return w.Bytes()
}

// EncodeReqIDs is the §8 scenario 3 fixture: tag 8, version 1, numIds 0.
func EncodeReqIDs(sv twscat.ServerVersion) []byte {
	w := twsfield.NewWriter()
	w.PutInt(int(twscat.ReqIDs))
	w.PutInt(1)
	w.PutInt(0)
	return w.Bytes()
}
