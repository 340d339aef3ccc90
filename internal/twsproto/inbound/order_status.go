package inbound

import (
	"github.com/larkhollow/twsgo/pkg/twsfield"
	"github.com/larkhollow/twsgo/pkg/twsmodel"
)

// readOrderStatusValue consumes the status/filled/remaining/... block
// shared by OrderStatusEvent and as the trailing block of an open order.
func readOrderStatusValue(r *twsfield.Reader) (twsmodel.OrderStatusValue, error) {
	var s twsmodel.OrderStatusValue
	var err error

	if s.Status, err = r.String("status"); err != nil {
		return s, err
	}
	if s.Filled, err = r.Decimal("filled"); err != nil {
		return s, err
	}
	if s.Remaining, err = r.Decimal("remaining"); err != nil {
		return s, err
	}
	if s.AvgFillPrice, err = r.Float("avgFillPrice"); err != nil {
		return s, err
	}
	if s.PermID, err = r.Int64("permId"); err != nil {
		return s, err
	}
	parentID, err := r.Int64("parentId")
	if err != nil {
		return s, err
	}
	s.ParentID = twsmodel.OrderId(parentID)
	if s.LastFillPrice, err = r.Float("lastFillPrice"); err != nil {
		return s, err
	}
	clientID, err := r.Int64("clientId")
	if err != nil {
		return s, err
	}
	s.ClientID = twsmodel.ClientId(clientID)
	if s.WhyHeld, err = r.String("whyHeld"); err != nil {
		return s, err
	}
	if s.MktCapPrice, err = r.Float("mktCapPrice"); err != nil {
		return s, err
	}
	return s, nil
}

// ParseOrderStatus reads Incoming tag 3: orderId followed by the status
// block. Order status is always unscoped -- it carries its own orderId,
// not a request id.
func ParseOrderStatus(r *twsfield.Reader) (twsmodel.Event, error) {
	orderID, err := r.Int64("orderId")
	if err != nil {
		return nil, err
	}
	status, err := readOrderStatusValue(r)
	if err != nil {
		return nil, err
	}
	return twsmodel.OrderStatusEvent{
		OrderID: twsmodel.OrderId(orderID),
		Status:  status,
	}, nil
}

// ParseErrorMessage reads Incoming tag 4. A reqId of -1 means the error
// is server-wide and carries no originating request; this parser always
// returns an unscoped event, routed only to the message subscription
// (per the demultiplexer's broadcast rules), never to a per-request
// waiter, matching the "req_id < 0 means no request scope" rule.
func ParseErrorMessage(r *twsfield.Reader) (twsmodel.Event, error) {
	reqID, err := r.Int64("reqId")
	if err != nil {
		return nil, err
	}
	code, err := r.Int("errorCode")
	if err != nil {
		return nil, err
	}
	msg, err := r.OptionalString("errorMsg")
	if err != nil {
		return nil, err
	}
	evt := twsmodel.ServerErrorEvent{
		Code:    code,
		Message: msg,
	}
	if reqID >= 0 {
		rid := twsmodel.RequestId(reqID)
		evt.OriginReqID = &rid
	}
	return evt, nil
}

// ParseOpenOrderEnd reads Incoming tag 53, a bodiless terminal marker.
func ParseOpenOrderEnd(r *twsfield.Reader) (twsmodel.Event, error) {
	return twsmodel.OpenOrderEndEvent{}, nil
}

// ParseNextValidID reads Incoming tag 9: the next usable order id.
func ParseNextValidID(r *twsfield.Reader) (twsmodel.Event, error) {
	orderID, err := r.Int64("orderId")
	if err != nil {
		return nil, err
	}
	return twsmodel.NextValidIDEvent{OrderID: twsmodel.OrderId(orderID)}, nil
}
