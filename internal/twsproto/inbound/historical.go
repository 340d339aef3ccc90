package inbound

import (
	"github.com/larkhollow/twsgo/pkg/twsfield"
	"github.com/larkhollow/twsgo/pkg/twsmodel"
)

func readBar(r *twsfield.Reader) (twsmodel.Bar, error) {
	var b twsmodel.Bar
	var err error
	timeRaw, err := r.String("bar.time")
	if err != nil {
		return b, err
	}
	if b.Time, err = twsfield.ParseTimestamp(timeRaw); err != nil {
		return b, &twsfield.DecodeError{Field: "bar.time", Token: timeRaw, Err: err}
	}
	if b.Open, err = r.Float("bar.open"); err != nil {
		return b, err
	}
	if b.High, err = r.Float("bar.high"); err != nil {
		return b, err
	}
	if b.Low, err = r.Float("bar.low"); err != nil {
		return b, err
	}
	if b.Close, err = r.Float("bar.close"); err != nil {
		return b, err
	}
	if b.Volume, err = r.Decimal("bar.volume"); err != nil {
		return b, err
	}
	if b.WAP, err = r.Decimal("bar.wap"); err != nil {
		return b, err
	}
	if b.Count, err = r.Int("bar.count"); err != nil {
		return b, err
	}
	return b, nil
}

// ParseHistoricalData reads Incoming tag 17: reqId, start/end range
// strings, a bar count, then exactly that many bars.
func ParseHistoricalData(r *twsfield.Reader) (twsmodel.Event, error) {
	reqID, err := r.Int64("reqId")
	if err != nil {
		return nil, err
	}
	startRaw, err := r.String("startDateStr")
	if err != nil {
		return nil, err
	}
	endRaw, err := r.String("endDateStr")
	if err != nil {
		return nil, err
	}
	n, err := r.Int("barCount")
	if err != nil {
		return nil, err
	}
	var series twsmodel.BarSeries
	for i := 0; i < n; i++ {
		bar, err := readBar(r)
		if err != nil {
			return nil, err
		}
		series.Bars = append(series.Bars, bar)
	}
	start, err := twsfield.ParseTimestamp(startRaw)
	if err != nil {
		return nil, &twsfield.DecodeError{Field: "startDateStr", Token: startRaw, Err: err}
	}
	end, err := twsfield.ParseTimestamp(endRaw)
	if err != nil {
		return nil, &twsfield.DecodeError{Field: "endDateStr", Token: endRaw, Err: err}
	}
	return twsmodel.HistoricalDataEvent{
		Scoped: twsmodel.Scoped{ReqID: twsmodel.RequestId(reqID)},
		Start:  start,
		End:    end,
		Data:   series,
	}, nil
}

// ParseHistoricalDataUpdate reads Incoming tag 90: reqId plus a single
// bar, used for the keep-up-to-date streaming variant.
func ParseHistoricalDataUpdate(r *twsfield.Reader) (twsmodel.Event, error) {
	reqID, err := r.Int64("reqId")
	if err != nil {
		return nil, err
	}
	bar, err := readBar(r)
	if err != nil {
		return nil, err
	}
	return twsmodel.HistoricalDataUpdateEvent{
		Scoped: twsmodel.Scoped{ReqID: twsmodel.RequestId(reqID)},
		Bar:    bar,
	}, nil
}

// ParseHistoricalSchedule reads Incoming tag 106: reqId, start, end,
// timezone, then a count-prefixed list of trading sessions. Reached
// only when a historical-data request was made with WhatToShow ==
// SCHEDULE.
func ParseHistoricalSchedule(r *twsfield.Reader) (twsmodel.Event, error) {
	reqID, err := r.Int64("reqId")
	if err != nil {
		return nil, err
	}
	startRaw, err := r.String("startDateTime")
	if err != nil {
		return nil, err
	}
	endRaw, err := r.String("endDateTime")
	if err != nil {
		return nil, err
	}
	tz, err := r.String("timeZone")
	if err != nil {
		return nil, err
	}
	start, err := twsfield.ParseTimestamp(startRaw)
	if err != nil {
		return nil, &twsfield.DecodeError{Field: "startDateTime", Token: startRaw, Err: err}
	}
	end, err := twsfield.ParseTimestamp(endRaw)
	if err != nil {
		return nil, &twsfield.DecodeError{Field: "endDateTime", Token: endRaw, Err: err}
	}
	n, err := r.Int("sessionsCount")
	if err != nil {
		return nil, err
	}
	e := twsmodel.HistoricalScheduleEvent{
		Scoped:   twsmodel.Scoped{ReqID: twsmodel.RequestId(reqID)},
		Start:    start,
		End:      end,
		TimeZone: tz,
	}
	for i := 0; i < n; i++ {
		sessStartRaw, err := r.String("session.start")
		if err != nil {
			return nil, err
		}
		sessEndRaw, err := r.String("session.end")
		if err != nil {
			return nil, err
		}
		refDate, err := r.String("session.refDate")
		if err != nil {
			return nil, err
		}
		sessStart, err := twsfield.ParseTimestamp(sessStartRaw)
		if err != nil {
			return nil, &twsfield.DecodeError{Field: "session.start", Token: sessStartRaw, Err: err}
		}
		sessEnd, err := twsfield.ParseTimestamp(sessEndRaw)
		if err != nil {
			return nil, &twsfield.DecodeError{Field: "session.end", Token: sessEndRaw, Err: err}
		}
		e.Sessions = append(e.Sessions, twsmodel.HistoricalScheduleSession{
			Start:   sessStart,
			End:     sessEnd,
			RefDate: refDate,
		})
	}
	return e, nil
}

// ParseHistoricalTicks reads Incoming tag 96: reqId, a tick count, that
// many midpoint ticks, and a trailing done flag.
func ParseHistoricalTicks(r *twsfield.Reader) (twsmodel.Event, error) {
	reqID, err := r.Int64("reqId")
	if err != nil {
		return nil, err
	}
	n, err := r.Int("tickCount")
	if err != nil {
		return nil, err
	}
	e := twsmodel.HistoricalTicksEvent{Scoped: twsmodel.Scoped{ReqID: twsmodel.RequestId(reqID)}}
	for i := 0; i < n; i++ {
		timeRaw, err := r.String("tick.time")
		if err != nil {
			return nil, err
		}
		price, err := r.Float("tick.price")
		if err != nil {
			return nil, err
		}
		size, err := r.Decimal("tick.size")
		if err != nil {
			return nil, err
		}
		t, err := twsfield.ParseTimestamp(timeRaw)
		if err != nil {
			return nil, &twsfield.DecodeError{Field: "tick.time", Token: timeRaw, Err: err}
		}
		e.Ticks = append(e.Ticks, twsmodel.HistoricalTick{Time: t, Price: price, Size: size})
	}
	if e.Done, err = r.Bool("done"); err != nil {
		return nil, err
	}
	return e, nil
}

// ParseHistoricalTicksBidAsk reads Incoming tag 97: reqId, tick count,
// bid/ask tick pairs, and a trailing done flag.
func ParseHistoricalTicksBidAsk(r *twsfield.Reader) (twsmodel.Event, error) {
	reqID, err := r.Int64("reqId")
	if err != nil {
		return nil, err
	}
	n, err := r.Int("tickCount")
	if err != nil {
		return nil, err
	}
	e := twsmodel.HistoricalTicksBidAskEvent{Scoped: twsmodel.Scoped{ReqID: twsmodel.RequestId(reqID)}}
	for i := 0; i < n; i++ {
		timeRaw, err := r.String("tick.time")
		if err != nil {
			return nil, err
		}
		bidPrice, err := r.Float("tick.bidPrice")
		if err != nil {
			return nil, err
		}
		askPrice, err := r.Float("tick.askPrice")
		if err != nil {
			return nil, err
		}
		bidSize, err := r.Decimal("tick.bidSize")
		if err != nil {
			return nil, err
		}
		askSize, err := r.Decimal("tick.askSize")
		if err != nil {
			return nil, err
		}
		t, err := twsfield.ParseTimestamp(timeRaw)
		if err != nil {
			return nil, &twsfield.DecodeError{Field: "tick.time", Token: timeRaw, Err: err}
		}
		e.Ticks = append(e.Ticks, twsmodel.HistoricalTickBidAsk{
			Time: t, BidPrice: bidPrice, AskPrice: askPrice, BidSize: bidSize, AskSize: askSize,
		})
	}
	if e.Done, err = r.Bool("done"); err != nil {
		return nil, err
	}
	return e, nil
}

// ParseHistoricalTicksLast reads Incoming tag 98: reqId, tick count,
// trade ticks carrying an exchange/special-conditions pair, and a
// trailing done flag.
func ParseHistoricalTicksLast(r *twsfield.Reader) (twsmodel.Event, error) {
	reqID, err := r.Int64("reqId")
	if err != nil {
		return nil, err
	}
	n, err := r.Int("tickCount")
	if err != nil {
		return nil, err
	}
	e := twsmodel.HistoricalTicksLastEvent{Scoped: twsmodel.Scoped{ReqID: twsmodel.RequestId(reqID)}}
	for i := 0; i < n; i++ {
		timeRaw, err := r.String("tick.time")
		if err != nil {
			return nil, err
		}
		price, err := r.Float("tick.price")
		if err != nil {
			return nil, err
		}
		size, err := r.Decimal("tick.size")
		if err != nil {
			return nil, err
		}
		exchange, err := r.String("tick.exchange")
		if err != nil {
			return nil, err
		}
		specialConditions, err := r.String("tick.specialConditions")
		if err != nil {
			return nil, err
		}
		t, err := twsfield.ParseTimestamp(timeRaw)
		if err != nil {
			return nil, &twsfield.DecodeError{Field: "tick.time", Token: timeRaw, Err: err}
		}
		e.Ticks = append(e.Ticks, twsmodel.HistoricalTickLast{
			Time: t, Price: price, Size: size, Exchange: exchange, SpecialConditions: specialConditions,
		})
	}
	if e.Done, err = r.Bool("done"); err != nil {
		return nil, err
	}
	return e, nil
}

// ParseHeadTimestamp reads Incoming tag 88: reqId, timestamp.
func ParseHeadTimestamp(r *twsfield.Reader) (twsmodel.Event, error) {
	reqID, err := r.Int64("reqId")
	if err != nil {
		return nil, err
	}
	raw, err := r.String("headTimestamp")
	if err != nil {
		return nil, err
	}
	ts, err := twsfield.ParseTimestamp(raw)
	if err != nil {
		return nil, &twsfield.DecodeError{Field: "headTimestamp", Token: raw, Err: err}
	}
	return twsmodel.HeadTimestampEvent{
		Scoped:    twsmodel.Scoped{ReqID: twsmodel.RequestId(reqID)},
		Timestamp: ts,
	}, nil
}
