package currency

import "context"

func (s *implService) Convert(ctx context.Context, amount float64, from, to string) Conversion {
	snap := s.table.Load()
	from, to = normalizeCode(from), normalizeCode(to)

	c := Conversion{
		OriginalAmount: amount,
		From:           from,
		To:             to,
		Live:           snap.live,
	}

	var ok bool
	if c.FromRate, ok = snap.rates[from]; !ok {
		c.FromRate = 1.0
		c.UnknownCodes = append(c.UnknownCodes, from)
	}
	if c.ToRate, ok = snap.rates[to]; !ok {
		c.ToRate = 1.0
		if to != from {
			c.UnknownCodes = append(c.UnknownCodes, to)
		}
	}
	if len(c.UnknownCodes) > 0 {
		c.Fallback = true
		s.l.Warnf(ctx, "%s: no rate for %v, using 1.0", LogPrefixConvert, c.UnknownCodes)
	}

	if from == to {
		c.Amount = amount
		return c
	}
	c.Amount = amount / c.FromRate * c.ToRate
	return c
}

func (s *implService) Normalize(ctx context.Context, amount float64, code string) Normalized {
	c := s.Convert(ctx, amount, code, BaseCurrency)
	return Normalized{
		BaseAmount:       c.Amount,
		OriginalAmount:   amount,
		OriginalCurrency: c.From,
		Rate:             c.FromRate,
		Fallback:         c.Fallback,
	}
}

func (s *implService) Render(ctx context.Context, baseAmount float64, target string) Conversion {
	return s.Convert(ctx, baseAmount, BaseCurrency, target)
}
