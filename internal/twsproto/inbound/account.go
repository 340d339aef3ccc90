package inbound

import (
	"github.com/larkhollow/twsgo/pkg/twsfield"
	"github.com/larkhollow/twsgo/pkg/twsmodel"
)

// ParseAcctValue reads Incoming tag 6: key, value, currency, account.
func ParseAcctValue(r *twsfield.Reader) (twsmodel.Event, error) {
	key, err := r.String("key")
	if err != nil {
		return nil, err
	}
	value, err := r.String("value")
	if err != nil {
		return nil, err
	}
	currency, err := r.String("currency")
	if err != nil {
		return nil, err
	}
	account, err := r.String("accountName")
	if err != nil {
		return nil, err
	}
	return twsmodel.AcctValueEvent{
		Key:         key,
		Value:       value,
		Currency:    currency,
		AccountName: account,
	}, nil
}

// ParsePortfolioValue reads Incoming tag 7: an embedded contract
// followed by position/valuation fields and the owning account. Wired
// per the account subscription rather than dropped.
func ParsePortfolioValue(r *twsfield.Reader) (twsmodel.Event, error) {
	c, err := readContract(r)
	if err != nil {
		return nil, err
	}
	var e twsmodel.PortfolioValueEvent
	e.Contract = c
	if e.Position, err = r.Decimal("position"); err != nil {
		return nil, err
	}
	if e.MarketPrice, err = r.Float("marketPrice"); err != nil {
		return nil, err
	}
	if e.MarketValue, err = r.Float("marketValue"); err != nil {
		return nil, err
	}
	if e.AverageCost, err = r.Float("averageCost"); err != nil {
		return nil, err
	}
	if e.UnrealizedPNL, err = r.Float("unrealizedPNL"); err != nil {
		return nil, err
	}
	if e.RealizedPNL, err = r.Float("realizedPNL"); err != nil {
		return nil, err
	}
	if e.AccountName, err = r.String("accountName"); err != nil {
		return nil, err
	}
	return e, nil
}

// ParseAcctUpdateTime reads Incoming tag 8: an "HH:MM" timestamp with no
// date component, anchored to today's date per AccountUpdateTime.
func ParseAcctUpdateTime(r *twsfield.Reader) (twsmodel.Event, error) {
	raw, err := r.String("timestamp")
	if err != nil {
		return nil, err
	}
	ts, err := twsfield.AccountUpdateTime(raw)
	if err != nil {
		return nil, &twsfield.DecodeError{Field: "timestamp", Token: raw, Err: err}
	}
	return twsmodel.AcctUpdateTimeEvent{Timestamp: ts}, nil
}

// ParseAcctDownloadEnd reads Incoming tag 54.
func ParseAcctDownloadEnd(r *twsfield.Reader) (twsmodel.Event, error) {
	account, err := r.String("accountName")
	if err != nil {
		return nil, err
	}
	return twsmodel.AcctDownloadEndEvent{AccountName: account}, nil
}

// ParseAccountSummary reads Incoming tag 63: reqId, account, tag, value,
// currency.
func ParseAccountSummary(r *twsfield.Reader) (twsmodel.Event, error) {
	reqID, err := r.Int64("reqId")
	if err != nil {
		return nil, err
	}
	account, err := r.String("account")
	if err != nil {
		return nil, err
	}
	tag, err := r.String("tag")
	if err != nil {
		return nil, err
	}
	value, err := r.String("value")
	if err != nil {
		return nil, err
	}
	currency, err := r.String("currency")
	if err != nil {
		return nil, err
	}
	return twsmodel.AccountSummaryEvent{
		Scoped:   twsmodel.Scoped{ReqID: twsmodel.RequestId(reqID)},
		Account:  account,
		Tag:      tag,
		Value:    value,
		Currency: currency,
	}, nil
}

// ParseAccountSummaryEnd reads Incoming tag 64: reqId only.
func ParseAccountSummaryEnd(r *twsfield.Reader) (twsmodel.Event, error) {
	reqID, err := r.Int64("reqId")
	if err != nil {
		return nil, err
	}
	return twsmodel.AccountSummaryEndEvent{
		Scoped: twsmodel.Scoped{ReqID: twsmodel.RequestId(reqID)},
	}, nil
}
