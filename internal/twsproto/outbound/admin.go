package outbound

import (
	"github.com/larkhollow/twsgo/internal/twscat"
	"github.com/larkhollow/twsgo/pkg/twsfield"
	"github.com/larkhollow/twsgo/pkg/twsmodel"
)

// EncodeStartAPI matches the §8 handshake scenario: tag 71, version 1,
// client id 99, empty optional capabilities.
func EncodeStartAPI(sv twscat.ServerVersion, clientID twsmodel.ClientId, optionalCapabilities string) []byte {
	w := twsfield.NewWriter()
	w.PutInt(int(twscat.StartAPI))
	w.PutInt(1)
	w.PutInt64(int64(clientID))
	if sv.At(twscat.VLinking) {
		w.PutString(optionalCapabilities)
	}
	return w.Bytes()
}

func EncodeSetServerLoglevel(sv twscat.ServerVersion, level int) []byte {
	w := twsfield.NewWriter()
	w.PutInt(int(twscat.SetServerLoglevel))
	w.PutInt(1)
	w.PutInt(level)
	return w.Bytes()
}

func EncodeReqCurrentTime(sv twscat.ServerVersion) []byte {
	w := twsfield.NewWriter()
	w.PutInt(int(twscat.ReqCurrentTime))
	w.PutInt(1)
	return w.Bytes()
}
