package outbound

import (
	"github.com/larkhollow/twsgo/internal/twscat"
	"github.com/larkhollow/twsgo/pkg/twsfield"
	"github.com/larkhollow/twsgo/pkg/twsmodel"
)

type ReqMktDepthParams struct {
	ReqID      twsmodel.RequestId
	Contract   twsmodel.Contract
	NumRows    int
	IsSmartDepth bool
	MktDepthOptions []twsmodel.TagValue
}

const versionReqMktDepth = 5

func EncodeReqMktDepth(sv twscat.ServerVersion, p ReqMktDepthParams) []byte {
	w := twsfield.NewWriter()
	w.PutInt(int(twscat.ReqMktDepth))
	w.PutInt(versionReqMktDepth)
	w.PutInt64(int64(p.ReqID))
	writeContract(w, p.Contract)
	w.PutInt(p.NumRows)
	if sv.At(twscat.VSmartDepth) {
		w.PutBool(p.IsSmartDepth)
	}
	w.PutString(encodeTagValueList(p.MktDepthOptions))
	return w.Bytes()
}

func EncodeCancelMktDepth(sv twscat.ServerVersion, reqID twsmodel.RequestId, isSmartDepth bool) []byte {
	w := twsfield.NewWriter()
	w.PutInt(int(twscat.CancelMktDepth))
	w.PutInt(1)
	w.PutInt64(int64(reqID))
	if sv.At(twscat.VSmartDepth) {
		w.PutBool(isSmartDepth)
	}
	return w.Bytes()
}

func EncodeReqMktDepthExchanges(sv twscat.ServerVersion) []byte {
	w := twsfield.NewWriter()
	w.PutInt(int(twscat.ReqMktDepthExchanges))
	return w.Bytes()
}
