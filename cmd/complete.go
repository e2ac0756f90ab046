package cmd

import (
	"github.com/etnz/bonds/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the bcs command line for shell completion.
func Completion() *complete.Command {
	tickers := complete.PredictFunc(predictTickers)
	methods := predict.Set{"compound", "simple"}
	scenario := map[string]complete.Predictor{
		"tna":    predict.Something,
		"opt":    predict.Something,
		"pess":   predict.Something,
		"method": methods,
	}
	with := func(flags map[string]complete.Predictor) map[string]complete.Predictor {
		for k, v := range scenario {
			flags[k] = v
		}
		return flags
	}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config":         predict.Files("*.yaml"),
			"portfolio-file": predict.Files("*.json"),
			"currency":       predict.Set{"ARS", "USD", "EUR"},
			"v":              predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"add": {Flags: map[string]complete.Predictor{
				"t":  predict.Something,
				"m":  predict.Something,
				"vf": predict.Something,
			}},
			"remove": {Args: tickers},
			"import": {Args: predict.Files("*.json")},
			"export": {Args: predict.Files("*.json")},
			"board": {Flags: with(map[string]complete.Predictor{
				"sort": predict.Set{"ticker", "maturity", "days", "vf"},
				"desc": predict.Nothing,
				"json": predict.Nothing,
			})},
			"parity": {Flags: with(map[string]complete.Predictor{"t": tickers})},
			"implied": {Flags: map[string]complete.Predictor{
				"t":      tickers,
				"p":      predict.Something,
				"quote":  predict.Files("*.json"),
				"path":   predict.Something,
				"method": methods,
			}},
			"params": {Flags: with(map[string]complete.Predictor{"save": predict.Nothing})},
			"topic":  {Flags: map[string]complete.Predictor{"l": predict.Nothing}, Args: complete.PredictFunc(predictTopics)},
		},
	}
}

func predictTickers(prefix string) []string {
	cfg, err := loadConfig()
	if err != nil {
		return nil
	}
	p, err := DecodePortfolio(cfg)
	if err != nil {
		return nil
	}
	var tickers []string
	for _, i := range p.Instruments() {
		tickers = append(tickers, i.Ticker)
	}
	return tickers
}

func predictTopics(prefix string) []string {
	names, err := docs.Names()
	if err != nil {
		return nil
	}
	return append(names, docs.Readme)
}
