package twsclient

import (
	"github.com/larkhollow/twsgo/internal/twsproto/outbound"
	"github.com/larkhollow/twsgo/pkg/twsmodel"
)

// GetContractDetails requests and collects every ContractDataEvent for
// contract until the matching ContractDataEndEvent arrives. A combo or
// an ambiguous symbol can legitimately return more than one match.
func (c *Client) GetContractDetails(contract twsmodel.Contract) ([]twsmodel.ContractDetails, error) {
	reqID := c.nextRequestID()
	sink := c.demux.RegisterRequestWaiter(reqID)

	body := outbound.EncodeReqContractData(c.serverVersion(), reqID, contract)
	if err := c.writeFrame(body); err != nil {
		c.demux.UnregisterRequestWaiter(reqID)
		return nil, err
	}

	var details []twsmodel.ContractDetails
	err := c.collectUntilEnd(reqID, sink,
		func(evt twsmodel.Event) bool {
			_, ok := evt.(twsmodel.ContractDataEndEvent)
			return ok
		},
		func(evt twsmodel.Event) {
			if cd, ok := evt.(twsmodel.ContractDataEvent); ok {
				details = append(details, cd.Details)
			}
		},
	)
	return details, err
}
