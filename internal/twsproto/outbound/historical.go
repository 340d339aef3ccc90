package outbound

import (
	"strconv"
	"time"

	"github.com/larkhollow/twsgo/internal/twscat"
	"github.com/larkhollow/twsgo/pkg/twsfield"
	"github.com/larkhollow/twsgo/pkg/twsmodel"
)

type FormatDate int

const (
	FormatDateString FormatDate = 1
	FormatDateUnixSeconds FormatDate = 2
)

type Duration struct {
	N    int
	Unit twscat.DurationUnit
}

func (d Duration) wire() string {
	return strconv.Itoa(d.N) + " " + d.Unit.Wire()
}

type ReqHistoricalDataParams struct {
	ReqID      twsmodel.RequestId
	Contract   twsmodel.Contract
	EndDateTime time.Time
	BarSize    twscat.BarSize
	Duration   Duration
	UseRTH     bool
	WhatToShow twscat.HistoricalDataType
	FormatDate FormatDate
	KeepUpToDate bool
	ChartOptions []twsmodel.TagValue
}

const versionReqHistoricalData = 6

func EncodeReqHistoricalData(sv twscat.ServerVersion, p ReqHistoricalDataParams) []byte {
	w := twsfield.NewWriter()
	w.PutInt(int(twscat.ReqHistoricalData))
	if !sv.At(twscat.VDurationUnit) {
		w.PutInt(versionReqHistoricalData)
	}
	w.PutInt64(int64(p.ReqID))
	writeContract(w, p.Contract)
	w.PutBool(p.Contract.IncludeExpired)
	w.PutString(formatEndDateTime(p.EndDateTime))
	w.PutString(string(p.BarSize))
	w.PutString(p.Duration.wire())
	w.PutBool(p.UseRTH)
	w.PutString(p.WhatToShow.Wire())
	w.PutInt(int(p.FormatDate))
	if p.Contract.SecIDType == "" {
		w.PutInt(0)
	} else {
		w.PutInt(0) // combo legs count placeholder, BAG handled elsewhere
	}
	w.PutBool(p.KeepUpToDate)
	w.PutString(encodeTagValueList(p.ChartOptions))
	return w.Bytes()
}

func EncodeCancelHistoricalData(sv twscat.ServerVersion, reqID twsmodel.RequestId) []byte {
	w := twsfield.NewWriter()
	w.PutInt(int(twscat.CancelHistoricalData))
	w.PutInt(1)
	w.PutInt64(int64(reqID))
	return w.Bytes()
}

type ReqHeadTimestampParams struct {
	ReqID      twsmodel.RequestId
	Contract   twsmodel.Contract
	WhatToShow twscat.HistoricalDataType
	UseRTH     bool
	FormatDate FormatDate
}

func EncodeReqHeadTimestamp(sv twscat.ServerVersion, p ReqHeadTimestampParams) []byte {
	w := twsfield.NewWriter()
	w.PutInt(int(twscat.ReqHeadTimestamp))
	w.PutInt64(int64(p.ReqID))
	writeContract(w, p.Contract)
	w.PutBool(p.Contract.IncludeExpired)
	w.PutBool(p.UseRTH)
	w.PutString(p.WhatToShow.Wire())
	w.PutInt(int(p.FormatDate))
	return w.Bytes()
}

func EncodeCancelHeadTimestamp(sv twscat.ServerVersion, reqID twsmodel.RequestId) []byte {
	w := twsfield.NewWriter()
	w.PutInt(int(twscat.CancelHeadTimestamp))
	w.PutInt64(int64(reqID))
	return w.Bytes()
}

type HistoricalTicksKind int

const (
	HistoricalTicksMidpoint HistoricalTicksKind = iota
	HistoricalTicksBidAsk
	HistoricalTicksTrades
)

type ReqHistoricalTicksParams struct {
	ReqID       twsmodel.RequestId
	Contract    twsmodel.Contract
	StartDateTime time.Time
	EndDateTime   time.Time
	NumberOfTicks int
	WhatToShow    HistoricalTicksKind
	UseRTH        bool
	IgnoreSize    bool
	MiscOptions   []twsmodel.TagValue
}

func EncodeReqHistoricalTicks(sv twscat.ServerVersion, p ReqHistoricalTicksParams) []byte {
	w := twsfield.NewWriter()
	w.PutInt(int(twscat.ReqHistoricalTicks))
	w.PutInt64(int64(p.ReqID))
	writeContract(w, p.Contract)
	w.PutBool(p.Contract.IncludeExpired)
	w.PutString(formatEndDateTime(p.StartDateTime))
	w.PutString(formatEndDateTime(p.EndDateTime))
	w.PutInt(p.NumberOfTicks)

	var what string
	switch p.WhatToShow {
	case HistoricalTicksMidpoint:
		what = "MIDPOINT"
	case HistoricalTicksBidAsk:
		what = "BID_ASK"
	case HistoricalTicksTrades:
		what = "TRADES"
	}
	w.PutString(what)
	w.PutBool(p.UseRTH)
	w.PutBool(p.IgnoreSize)
	w.PutString(encodeTagValueList(p.MiscOptions))
	return w.Bytes()
}

func formatEndDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("20060102-15:04:05")
}

