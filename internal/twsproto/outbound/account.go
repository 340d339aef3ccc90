package outbound

import (
	"strings"

	"github.com/larkhollow/twsgo/internal/twscat"
	"github.com/larkhollow/twsgo/pkg/twsfield"
	"github.com/larkhollow/twsgo/pkg/twsmodel"
)

func EncodeReqAcctData(sv twscat.ServerVersion, subscribe bool, acctCode string) []byte {
	w := twsfield.NewWriter()
	w.PutInt(int(twscat.ReqAcctData))
	w.PutInt(2)
	w.PutBool(subscribe)
	w.PutString(acctCode)
	return w.Bytes()
}

func EncodeReqAccountSummary(sv twscat.ServerVersion, reqID twsmodel.RequestId, group string, tags []string) []byte {
	w := twsfield.NewWriter()
	w.PutInt(int(twscat.ReqAccountSummary))
	w.PutInt(1)
	w.PutInt64(int64(reqID))
	w.PutString(group)
	w.PutString(strings.Join(tags, ","))
	return w.Bytes()
}

func EncodeCancelAccountSummary(sv twscat.ServerVersion, reqID twsmodel.RequestId) []byte {
	w := twsfield.NewWriter()
	w.PutInt(int(twscat.CancelAccountSummary))
	w.PutInt(1)
	w.PutInt64(int64(reqID))
	return w.Bytes()
}

type ExecutionFilter struct {
	ClientID  twsmodel.ClientId
	AcctCode  string
	Time      string
	Symbol    string
	SecType   string
	Exchange  string
	Side      string
}

func EncodeReqExecutions(sv twscat.ServerVersion, reqID twsmodel.RequestId, f ExecutionFilter) []byte {
	w := twsfield.NewWriter()
	w.PutInt(int(twscat.ReqExecutions))
	w.PutInt(3)
	w.PutInt64(int64(reqID))
	w.PutInt64(int64(f.ClientID))
	w.PutString(f.AcctCode)
	w.PutString(f.Time)
	w.PutString(f.Symbol)
	w.PutString(f.SecType)
	w.PutString(f.Exchange)
	w.PutString(f.Side)
	return w.Bytes()
}
