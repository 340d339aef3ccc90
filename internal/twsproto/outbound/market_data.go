package outbound

import (
	"github.com/larkhollow/twsgo/internal/twscat"
	"github.com/larkhollow/twsgo/pkg/twsfield"
	"github.com/larkhollow/twsgo/pkg/twsmodel"
)

const versionReqMktData = 11

type ReqMktDataParams struct {
	ReqID            twsmodel.RequestId
	Contract         twsmodel.Contract
	GenericTickList  string
	Snapshot         bool
	RegulatorySnapshot bool
	MktDataOptions   []twsmodel.TagValue
}

// EncodeReqMktData builds the subscribe-market-data command body. Tag 1,
// version 11, then req id, contract block, combo legs, delta-neutral
// presence flag, generic tick list, snapshot flags, and an options tail.
func EncodeReqMktData(sv twscat.ServerVersion, p ReqMktDataParams) []byte {
	w := twsfield.NewWriter()
	w.PutInt(int(twscat.ReqMktData))
	w.PutInt(versionReqMktData)
	w.PutInt64(int64(p.ReqID))

	writeContract(w, p.Contract)
	writeComboLegs(w, p.Contract)

	if p.Contract.DeltaNeutral != nil {
		w.PutBool(true)
		w.PutInt64(p.Contract.DeltaNeutral.ConID)
		w.PutFloat(p.Contract.DeltaNeutral.Delta)
		w.PutFloat(p.Contract.DeltaNeutral.Price)
	} else {
		w.PutBool(false)
	}

	w.PutString(p.GenericTickList)
	w.PutBool(p.Snapshot)
	w.PutBool(p.RegulatorySnapshot)
	w.PutString(encodeTagValueList(p.MktDataOptions))

	return w.Bytes()
}

const versionCancelMktData = 2

func EncodeCancelMktData(sv twscat.ServerVersion, reqID twsmodel.RequestId) []byte {
	w := twsfield.NewWriter()
	w.PutInt(int(twscat.CancelMktData))
	w.PutInt(versionCancelMktData)
	w.PutInt64(int64(reqID))
	return w.Bytes()
}

const versionReqRealTimeBars = 3

type ReqRealTimeBarsParams struct {
	ReqID        twsmodel.RequestId
	Contract     twsmodel.Contract
	BarSize      int // only 5 is valid server-side but kept as a param for forward compat
	WhatToShow   twscat.HistoricalDataType
	UseRTH       bool
	RealTimeBarsOptions []twsmodel.TagValue
}

func EncodeReqRealTimeBars(sv twscat.ServerVersion, p ReqRealTimeBarsParams) []byte {
	w := twsfield.NewWriter()
	w.PutInt(int(twscat.ReqRealTimeBars))
	w.PutInt(versionReqRealTimeBars)
	w.PutInt64(int64(p.ReqID))
	writeContract(w, p.Contract)
	w.PutInt(p.BarSize)
	w.PutString(p.WhatToShow.Wire())
	w.PutBool(p.UseRTH)
	w.PutString(encodeTagValueList(p.RealTimeBarsOptions))
	return w.Bytes()
}

func EncodeCancelRealTimeBars(sv twscat.ServerVersion, reqID twsmodel.RequestId) []byte {
	w := twsfield.NewWriter()
	w.PutInt(int(twscat.CancelRealTimeBars))
	w.PutInt(1)
	w.PutInt64(int64(reqID))
	return w.Bytes()
}

type TickByTickKind string

const (
	TickByTickLast      TickByTickKind = "Last"
	TickByTickAllLast   TickByTickKind = "AllLast"
	TickByTickBidAsk    TickByTickKind = "BidAsk"
	TickByTickMidPoint  TickByTickKind = "MidPoint"
)

type ReqTickByTickDataParams struct {
	ReqID          twsmodel.RequestId
	Contract       twsmodel.Contract
	Kind           TickByTickKind
	NumberOfTicks  int
	IgnoreSize     bool
}

func EncodeReqTickByTickData(sv twscat.ServerVersion, p ReqTickByTickDataParams) []byte {
	w := twsfield.NewWriter()
	w.PutInt(int(twscat.ReqTickByTickData))
	w.PutInt64(int64(p.ReqID))
	writeContract(w, p.Contract)
	w.PutString(string(p.Kind))
	w.PutInt(p.NumberOfTicks)
	w.PutBool(p.IgnoreSize)
	return w.Bytes()
}

func EncodeCancelTickByTickData(sv twscat.ServerVersion, reqID twsmodel.RequestId) []byte {
	w := twsfield.NewWriter()
	w.PutInt(int(twscat.CancelTickByTickData))
	w.PutInt64(int64(reqID))
	return w.Bytes()
}

func encodeTagValueList(tvs []twsmodel.TagValue) string {
	s := ""
	for _, tv := range tvs {
		s += tv.Tag + "=" + tv.Value + ";"
	}
	return s
}
