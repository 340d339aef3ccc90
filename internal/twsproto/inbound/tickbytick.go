package inbound

import (
	"github.com/larkhollow/twsgo/pkg/twsfield"
	"github.com/larkhollow/twsgo/pkg/twsmodel"
)

// ParseTickByTick reads Incoming tag 99. The fields present after
// reqId/kind/time depend on which of the four tick-by-tick sub-kinds
// the kind field selects -- the one parser in the catalog keyed by a
// field read mid-stream rather than by the outer tag alone.
func ParseTickByTick(r *twsfield.Reader) (twsmodel.Event, error) {
	reqID, err := r.Int64("reqId")
	if err != nil {
		return nil, err
	}
	kind, err := r.Int("tickType")
	if err != nil {
		return nil, err
	}
	timeRaw, err := r.String("time")
	if err != nil {
		return nil, err
	}
	t, err := twsfield.ParseTimestamp(timeRaw)
	if err != nil {
		return nil, &twsfield.DecodeError{Field: "time", Token: timeRaw, Err: err}
	}
	e := twsmodel.TickByTickEvent{
		Scoped: twsmodel.Scoped{ReqID: twsmodel.RequestId(reqID)},
		Kind:   twsmodel.TickByTickKind(kind),
		Time:   t,
	}
	switch e.Kind {
	case twsmodel.TickByTickLast, twsmodel.TickByTickAllLast:
		if e.Price, err = r.Float("price"); err != nil {
			return nil, err
		}
		if e.Size, err = r.Decimal("size"); err != nil {
			return nil, err
		}
		if e.Exchange, err = r.String("exchange"); err != nil {
			return nil, err
		}
		if e.SpecialConditions, err = r.String("specialConditions"); err != nil {
			return nil, err
		}
	case twsmodel.TickByTickBidAsk:
		if e.BidPrice, err = r.Float("bidPrice"); err != nil {
			return nil, err
		}
		if e.AskPrice, err = r.Float("askPrice"); err != nil {
			return nil, err
		}
		if e.BidSize, err = r.Decimal("bidSize"); err != nil {
			return nil, err
		}
		if e.AskSize, err = r.Decimal("askSize"); err != nil {
			return nil, err
		}
	case twsmodel.TickByTickMidPoint:
		if e.MidPoint, err = r.Float("midPoint"); err != nil {
			return nil, err
		}
	}
	return e, nil
}
