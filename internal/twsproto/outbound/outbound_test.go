package outbound

import (
	"testing"

	"github.com/larkhollow/twsgo/internal/twscat"
	"github.com/larkhollow/twsgo/pkg/twsmodel"
	"github.com/stretchr/testify/assert"
)

func TestEncodeReqIDsMatchesFixture(t *testing.T) {
	got := EncodeReqIDs(163)
	assert.Equal(t, "8\x001\x000\x00", string(got))
}

func TestEncodeStartAPIMatchesFixture(t *testing.T) {
	got := EncodeStartAPI(163, 99, "")
	assert.Equal(t, "71\x001\x0099\x00\x00", string(got))
}

func TestEncodeReqContractDataBeginsWithFixturePrefix(t *testing.T) {
	c := twsmodel.Contract{
		Symbol:   "AMD",
		SecType:  twscat.SecTypeStock,
		Exchange: "SMART",
		Currency: "USD",
	}
	got := EncodeReqContractData(163, 1, c)
	assert.Regexp(t, `^9\x008\x001\x00`, string(got))
}

func TestEncodeCancelMktDataIncludesReqID(t *testing.T) {
	got := EncodeCancelMktData(163, 1000)
	assert.Equal(t, "2\x002\x001000\x00", string(got))
}
