package inbound

import (
	"github.com/larkhollow/twsgo/pkg/twsfield"
	"github.com/larkhollow/twsgo/pkg/twsmodel"
)

// ParseContractData reads Incoming tag 10: reqId, contract, followed by
// the long tail of exchange/industry metadata, which includes a
// count-prefixed secIdList.
func ParseContractData(r *twsfield.Reader) (twsmodel.Event, error) {
	reqID, err := r.Int64("reqId")
	if err != nil {
		return nil, err
	}
	var d twsmodel.ContractDetails
	if d.Contract, err = readContract(r); err != nil {
		return nil, err
	}
	if d.MarketName, err = r.String("marketName"); err != nil {
		return nil, err
	}
	if d.MinTick, err = r.Float("minTick"); err != nil {
		return nil, err
	}
	if d.OrderTypes, err = r.String("orderTypes"); err != nil {
		return nil, err
	}
	if d.ValidExchanges, err = r.String("validExchanges"); err != nil {
		return nil, err
	}
	if d.PriceMagnifier, err = r.Int("priceMagnifier"); err != nil {
		return nil, err
	}
	if d.UnderConID, err = r.Int64("underConId"); err != nil {
		return nil, err
	}
	if d.LongName, err = r.String("longName"); err != nil {
		return nil, err
	}
	if d.Contract.PrimaryExchange, err = r.String("primaryExchange"); err != nil {
		return nil, err
	}
	if d.ContractMonth, err = r.String("contractMonth"); err != nil {
		return nil, err
	}
	if d.Industry, err = r.String("industry"); err != nil {
		return nil, err
	}
	if d.Category, err = r.String("category"); err != nil {
		return nil, err
	}
	if d.Subcategory, err = r.String("subcategory"); err != nil {
		return nil, err
	}
	if d.TimeZoneID, err = r.String("timeZoneId"); err != nil {
		return nil, err
	}
	if d.TradingHours, err = r.String("tradingHours"); err != nil {
		return nil, err
	}
	if d.LiquidHours, err = r.String("liquidHours"); err != nil {
		return nil, err
	}
	if d.EVRule, err = r.String("evRule"); err != nil {
		return nil, err
	}
	if d.EVMultiplier, err = r.Int("evMultiplier"); err != nil {
		return nil, err
	}
	n, err := r.Int("secIdListCount")
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		tag, err := r.String("secIdList.tag")
		if err != nil {
			return nil, err
		}
		val, err := r.String("secIdList.value")
		if err != nil {
			return nil, err
		}
		d.SecIDList = append(d.SecIDList, twsmodel.TagValue{Tag: tag, Value: val})
	}
	if d.AggGroup, err = r.Int("aggGroup"); err != nil {
		return nil, err
	}
	if d.UnderSymbol, err = r.String("underSymbol"); err != nil {
		return nil, err
	}
	if d.UnderSecType, err = r.String("underSecType"); err != nil {
		return nil, err
	}
	if d.MarketRuleIDs, err = r.String("marketRuleIds"); err != nil {
		return nil, err
	}
	if d.RealExpirationDate, err = r.String("realExpirationDate"); err != nil {
		return nil, err
	}
	if d.StockType, err = r.String("stockType"); err != nil {
		return nil, err
	}
	if d.MinSize, err = r.Float("minSize"); err != nil {
		return nil, err
	}
	if d.SizeIncrement, err = r.Float("sizeIncrement"); err != nil {
		return nil, err
	}
	if d.SuggestedSizeIncrement, err = r.Float("suggestedSizeIncrement"); err != nil {
		return nil, err
	}
	return twsmodel.ContractDataEvent{
		Scoped:  twsmodel.Scoped{ReqID: twsmodel.RequestId(reqID)},
		Details: d,
	}, nil
}

// ParseContractDataEnd reads Incoming tag 52: reqId only.
func ParseContractDataEnd(r *twsfield.Reader) (twsmodel.Event, error) {
	reqID, err := r.Int64("reqId")
	if err != nil {
		return nil, err
	}
	return twsmodel.ContractDataEndEvent{
		Scoped: twsmodel.Scoped{ReqID: twsmodel.RequestId(reqID)},
	}, nil
}
