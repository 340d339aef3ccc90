package inbound

import (
	"github.com/larkhollow/twsgo/pkg/twsfield"
	"github.com/larkhollow/twsgo/pkg/twsmodel"
)

// ParseMarketDepth reads Incoming tag 12: reqId, position, operation,
// side, price, size.
func ParseMarketDepth(r *twsfield.Reader) (twsmodel.Event, error) {
	reqID, err := r.Int64("reqId")
	if err != nil {
		return nil, err
	}
	var e twsmodel.MarketDepthEvent
	e.Scoped = twsmodel.Scoped{ReqID: twsmodel.RequestId(reqID)}
	if e.Position, err = r.Int("position"); err != nil {
		return nil, err
	}
	if e.Operation, err = r.Int("operation"); err != nil {
		return nil, err
	}
	if e.Side, err = r.Int("side"); err != nil {
		return nil, err
	}
	if e.Price, err = r.Float("price"); err != nil {
		return nil, err
	}
	if e.Size, err = r.Decimal("size"); err != nil {
		return nil, err
	}
	return e, nil
}

// ParseMarketDepthL2 reads Incoming tag 13: as MarketDepth plus a market
// maker identity and, on servers new enough, a smart-depth flag.
func ParseMarketDepthL2(r *twsfield.Reader) (twsmodel.Event, error) {
	reqID, err := r.Int64("reqId")
	if err != nil {
		return nil, err
	}
	var e twsmodel.MarketDepthL2Event
	e.Scoped = twsmodel.Scoped{ReqID: twsmodel.RequestId(reqID)}
	if e.Position, err = r.Int("position"); err != nil {
		return nil, err
	}
	if e.MarketMaker, err = r.String("marketMaker"); err != nil {
		return nil, err
	}
	if e.Operation, err = r.Int("operation"); err != nil {
		return nil, err
	}
	if e.Side, err = r.Int("side"); err != nil {
		return nil, err
	}
	if e.Price, err = r.Float("price"); err != nil {
		return nil, err
	}
	if e.Size, err = r.Decimal("size"); err != nil {
		return nil, err
	}
	if r.Remaining() > 0 {
		if e.IsSmartDepth, err = r.Bool("isSmartDepth"); err != nil {
			return nil, err
		}
	}
	return e, nil
}
