package cmd

import (
	"flag"

	"github.com/etnz/budget"
	"github.com/etnz/budget/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of bgt, built from the flags of
// all the subcommands.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub: make(map[string]*complete.Command),
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.json"),
			"raw":         predict.Nothing,
		},
	}
	names := make(predict.Set, 0, len(Commands))
	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: make(map[string]complete.Predictor)}
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = flagPredictor(f)
		})
		if _, ok := c.(*topicCmd); ok {
			sub.Args = complete.PredictFunc(predictTopics)
		}
		root.Sub[c.Name()] = sub
		names = append(names, c.Name())
	}
	root.Sub["help"] = &complete.Command{Args: names}
	return root
}

// flagPredictor predicts the values of the flags shared by subcommands.
func flagPredictor(f *flag.Flag) complete.Predictor {
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	switch f.Name {
	case "t":
		return predict.Set{"income", "expense"}
	case "m":
		return complete.PredictFunc(predictMonths)
	case "c":
		return complete.PredictFunc(predictCategories)
	default:
		return predict.Something
	}
}

func predictMonths(string) []string {
	var months []string
	for _, m := range openLedger().Months() {
		months = append(months, m.String())
	}
	return months
}

func predictCategories(string) []string {
	cats, err := openLedger().Categories(budget.Filter{})
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, c.Category)
	}
	return names
}

func predictTopics(string) []string {
	topics, err := docs.All()
	if err != nil {
		return nil
	}
	return topics
}
