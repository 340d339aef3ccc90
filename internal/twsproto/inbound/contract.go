package inbound

import (
	"github.com/larkhollow/twsgo/internal/twscat"
	"github.com/larkhollow/twsgo/pkg/twsfield"
	"github.com/larkhollow/twsgo/pkg/twsmodel"
)

// readContract consumes the same field sequence writeContract produces on
// the outbound side: ConID, Symbol, SecType, LastTradeDate, Strike,
// Right, Multiplier, Exchange, PrimaryExchange, Currency, LocalSymbol,
// TradingClass.
func readContract(r *twsfield.Reader) (twsmodel.Contract, error) {
	var c twsmodel.Contract
	var err error

	if c.ConID, err = r.Int64("conId"); err != nil {
		return c, err
	}
	if c.Symbol, err = r.String("symbol"); err != nil {
		return c, err
	}
	secType, err := r.String("secType")
	if err != nil {
		return c, err
	}
	if c.SecType, err = twscat.ParseSecType(secType); err != nil {
		return c, err
	}
	if c.LastTradeDate, err = r.String("lastTradeDate"); err != nil {
		return c, err
	}
	if c.Strike, err = r.Float("strike"); err != nil {
		return c, err
	}
	right, err := r.String("right")
	if err != nil {
		return c, err
	}
	if c.Right, err = twscat.ParseOptionRight(right); err != nil {
		return c, err
	}
	if c.Multiplier, err = r.String("multiplier"); err != nil {
		return c, err
	}
	if c.Exchange, err = r.String("exchange"); err != nil {
		return c, err
	}
	if c.PrimaryExchange, err = r.String("primaryExchange"); err != nil {
		return c, err
	}
	if c.Currency, err = r.String("currency"); err != nil {
		return c, err
	}
	if c.LocalSymbol, err = r.String("localSymbol"); err != nil {
		return c, err
	}
	if c.TradingClass, err = r.String("tradingClass"); err != nil {
		return c, err
	}
	return c, nil
}

// readComboLegs consumes a leading leg-count token followed by that many
// legs, mirroring writeComboLegs' per-leg field order.
func readComboLegs(r *twsfield.Reader) ([]twsmodel.ComboLeg, error) {
	n, err := r.Int("comboLegsCount")
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	legs := make([]twsmodel.ComboLeg, 0, n)
	for i := 0; i < n; i++ {
		var leg twsmodel.ComboLeg
		if leg.ConID, err = r.Int64("comboLeg.conId"); err != nil {
			return nil, err
		}
		if leg.Ratio, err = r.Int("comboLeg.ratio"); err != nil {
			return nil, err
		}
		if leg.Action, err = r.String("comboLeg.action"); err != nil {
			return nil, err
		}
		if leg.Exchange, err = r.String("comboLeg.exchange"); err != nil {
			return nil, err
		}
		legs = append(legs, leg)
	}
	return legs, nil
}

// readDeltaNeutral consumes the presence flag plus the triple of fields
// EncodePlaceOrder's delta-neutral block writes when present.
func readDeltaNeutral(r *twsfield.Reader) (*twsmodel.DeltaNeutralContract, error) {
	present, err := r.Bool("deltaNeutralPresent")
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	dn := &twsmodel.DeltaNeutralContract{}
	if dn.ConID, err = r.Int64("deltaNeutral.conId"); err != nil {
		return nil, err
	}
	if dn.Delta, err = r.Float("deltaNeutral.delta"); err != nil {
		return nil, err
	}
	if dn.Price, err = r.Float("deltaNeutral.price"); err != nil {
		return nil, err
	}
	return dn, nil
}
