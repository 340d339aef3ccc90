package inbound

import (
	"github.com/larkhollow/twsgo/pkg/twsfield"
	"github.com/larkhollow/twsgo/pkg/twsmodel"
)

// ParseCurrentTime reads Incoming tag 49: a unix-epoch-seconds field,
// unscoped -- current time carries no request id on the wire.
func ParseCurrentTime(r *twsfield.Reader) (twsmodel.Event, error) {
	raw, err := r.String("time")
	if err != nil {
		return nil, err
	}
	t, err := twsfield.ParseTimestamp(raw)
	if err != nil {
		return nil, &twsfield.DecodeError{Field: "time", Token: raw, Err: err}
	}
	return twsmodel.CurrentTimeEvent{Time: t}, nil
}

// ParseRealTimeBars reads Incoming tag 50: reqId plus a bar.
func ParseRealTimeBars(r *twsfield.Reader) (twsmodel.Event, error) {
	reqID, err := r.Int64("reqId")
	if err != nil {
		return nil, err
	}
	bar, err := readBar(r)
	if err != nil {
		return nil, err
	}
	return twsmodel.RealTimeBarEvent{
		Scoped: twsmodel.Scoped{ReqID: twsmodel.RequestId(reqID)},
		Bar:    bar,
	}, nil
}
