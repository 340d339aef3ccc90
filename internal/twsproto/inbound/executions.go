package inbound

import (
	"github.com/larkhollow/twsgo/pkg/twsfield"
	"github.com/larkhollow/twsgo/pkg/twsmodel"
)

// ParseExecutionData reads Incoming tag 11: reqId, contract, then the
// execution record. Terminated by ParseExecutionDataEnd, not by an
// in-band count.
func ParseExecutionData(r *twsfield.Reader) (twsmodel.Event, error) {
	reqID, err := r.Int64("reqId")
	if err != nil {
		return nil, err
	}
	c, err := readContract(r)
	if err != nil {
		return nil, err
	}
	var e twsmodel.Execution
	if e.ExecID, err = r.String("execId"); err != nil {
		return nil, err
	}
	timeRaw, err := r.String("time")
	if err != nil {
		return nil, err
	}
	if e.Time, err = twsfield.ParseTimestamp(timeRaw); err != nil {
		return nil, &twsfield.DecodeError{Field: "time", Token: timeRaw, Err: err}
	}
	if e.AcctNumber, err = r.String("acctNumber"); err != nil {
		return nil, err
	}
	if e.Exchange, err = r.String("exchange"); err != nil {
		return nil, err
	}
	if e.Side, err = r.String("side"); err != nil {
		return nil, err
	}
	if e.Shares, err = r.Decimal("shares"); err != nil {
		return nil, err
	}
	if e.Price, err = r.Float("price"); err != nil {
		return nil, err
	}
	if e.PermID, err = r.Int64("permId"); err != nil {
		return nil, err
	}
	clientID, err := r.Int64("clientId")
	if err != nil {
		return nil, err
	}
	e.ClientID = twsmodel.ClientId(clientID)
	orderID, err := r.Int64("orderId")
	if err != nil {
		return nil, err
	}
	e.OrderID = twsmodel.OrderId(orderID)
	if e.Liquidation, err = r.Int("liquidation"); err != nil {
		return nil, err
	}
	if e.CumQty, err = r.Decimal("cumQty"); err != nil {
		return nil, err
	}
	if e.AvgPrice, err = r.Float("avgPrice"); err != nil {
		return nil, err
	}
	if e.OrderRef, err = r.String("orderRef"); err != nil {
		return nil, err
	}
	if e.EVRule, err = r.String("evRule"); err != nil {
		return nil, err
	}
	if e.EVMultiplier, err = r.Float("evMultiplier"); err != nil {
		return nil, err
	}
	if e.ModelCode, err = r.String("modelCode"); err != nil {
		return nil, err
	}
	if e.LastLiquidity, err = r.Int("lastLiquidity"); err != nil {
		return nil, err
	}
	return twsmodel.ExecutionDataEvent{
		Scoped:    twsmodel.Scoped{ReqID: twsmodel.RequestId(reqID)},
		Contract:  c,
		Execution: e,
	}, nil
}

// ParseExecutionDataEnd reads Incoming tag 55: reqId only.
func ParseExecutionDataEnd(r *twsfield.Reader) (twsmodel.Event, error) {
	reqID, err := r.Int64("reqId")
	if err != nil {
		return nil, err
	}
	return twsmodel.ExecutionDataEndEvent{
		Scoped: twsmodel.Scoped{ReqID: twsmodel.RequestId(reqID)},
	}, nil
}

// ParseCommissionReport reads Incoming tag 59: execId, commission,
// currency, and optional realized PNL / yield fields.
func ParseCommissionReport(r *twsfield.Reader) (twsmodel.Event, error) {
	var e twsmodel.CommissionReportEvent
	var err error
	if e.ExecID, err = r.String("execId"); err != nil {
		return nil, err
	}
	if e.Commission, err = r.Float("commission"); err != nil {
		return nil, err
	}
	if e.Currency, err = r.String("currency"); err != nil {
		return nil, err
	}
	if e.RealizedPNL, err = r.OptionalFloat("realizedPNL"); err != nil {
		return nil, err
	}
	if e.Yield, err = r.OptionalFloat("yield"); err != nil {
		return nil, err
	}
	if e.YieldRedemptionDate, err = r.OptionalInt("yieldRedemptionDate"); err != nil {
		return nil, err
	}
	return e, nil
}
