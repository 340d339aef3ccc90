package outbound

import (
	"github.com/larkhollow/twsgo/internal/twscat"
	"github.com/larkhollow/twsgo/pkg/twsfield"
	"github.com/larkhollow/twsgo/pkg/twsmodel"
)

const versionReqContractData = 8

// EncodeReqContractData matches the §8 scenario: the outbound body
// begins "9\08\0<reqID>\0" (tag 9, version 8, req id) followed by the
// contract's encoded fields.
func EncodeReqContractData(sv twscat.ServerVersion, reqID twsmodel.RequestId, c twsmodel.Contract) []byte {
	w := twsfield.NewWriter()
	w.PutInt(int(twscat.ReqContractData))
	w.PutInt(versionReqContractData)
	w.PutInt64(int64(reqID))
	writeContract(w, c)
	w.PutBool(c.IncludeExpired)
	w.PutString(c.SecIDType)
	w.PutString(c.SecID)
	return w.Bytes()
}
