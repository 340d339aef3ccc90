package inbound

import (
	"github.com/larkhollow/twsgo/pkg/twsfield"
	"github.com/larkhollow/twsgo/pkg/twsmodel"
)

// ParseTickPrice reads Incoming tag 1: reqId, tickType, price, and a
// size token, which is empty (decoded as nil) for tick types that carry
// no size. Any further tail fields a newer server appends are left
// unread rather than treated as an error.
func ParseTickPrice(r *twsfield.Reader) (twsmodel.Event, error) {
	reqID, err := r.Int64("reqId")
	if err != nil {
		return nil, err
	}
	tickType, err := r.Int("tickType")
	if err != nil {
		return nil, err
	}
	price, err := r.Float("price")
	if err != nil {
		return nil, err
	}
	size, err := r.OptionalDecimal("size")
	if err != nil {
		return nil, err
	}
	return twsmodel.TickPriceEvent{
		Scoped:   twsmodel.Scoped{ReqID: twsmodel.RequestId(reqID)},
		TickType: tickType,
		Price:    price,
		Size:     size,
	}, nil
}

// ParseTickSize reads Incoming tag 2: reqId, tickType, size.
func ParseTickSize(r *twsfield.Reader) (twsmodel.Event, error) {
	reqID, err := r.Int64("reqId")
	if err != nil {
		return nil, err
	}
	tickType, err := r.Int("tickType")
	if err != nil {
		return nil, err
	}
	size, err := r.Decimal("size")
	if err != nil {
		return nil, err
	}
	return twsmodel.TickSizeEvent{
		Scoped:   twsmodel.Scoped{ReqID: twsmodel.RequestId(reqID)},
		TickType: tickType,
		Size:     size,
	}, nil
}
