package agent

import (
	"context"
	"fmt"

	"github.com/etnz/budget"
	"github.com/etnz/budget/renderer"
	"google.golang.org/genai"
)

func instruction(text string) *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{Text: text}}}
}

// NewFacilitator creates the expert talking to the user, it can ask the
// other experts.
func NewFacilitator(model string, experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: instruction(`
			As a facilitator you are in charge of the conversation and of answering the user's request
			about their personal budget.

			The experts available as Tools are at your service and keep the context of your previous questions.
			Devise a plan of questions to ask them and come up with the best response to the user's request.

			Never guess figures about the user's budget, ask the Accountant.
			Answer in markdown, be concise.`),
		},
		Library: NewLibrary(experts),
	}
}

// NewAdvisor creates an expert in personal finance, grounded with Google Search.
func NewAdvisor(model string) *Expert {
	return &Expert{
		Name: "Advisor",
		Description: `This is a personal finance advisor, aware of budgeting practices,
		saving strategies and current prices. Ask the Advisor for advice or recent information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: instruction(`
			You are an expert in personal finance. You leverage Google Search to ground your
			assertions. You do not know the user's figures, the team asks you with them.`),
		},
	}
}

// NewAccountant creates the expert reading the ledger.
func NewAccountant(model string, ledger *budget.Ledger, opts renderer.Options) *Expert {
	lib := LedgerFunctions(ledger, opts)
	return &Expert{
		Name: "Accountant",
		Description: `This is the Accountant. It reads the user's ledger of incomes and expenses,
		and computes any figure about it: lists of transactions, totals, breakdown by category.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: instruction(`
			You are an accountant in charge of the user's ledger of incomes and expenses.
			Use the Tools to answer questions about it, pardon the approximate language of the team
			and figure out what they meant. Months are written YYYY-MM.`),
		},
		Library: NewLibrary(lib),
	}
}

// LedgerFunctions returns the read-only functions over ledger.
func LedgerFunctions(ledger *budget.Ledger, opts renderer.Options) []*Func {
	return []*Func{
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "list_transactions",
				Description: "Lists the transactions sorted by date, optionally filtered.",
				Parameters:  filterSchema,
				Response:    markdownSchema,
			},
			Func: func(_ context.Context, args map[string]any) (string, error) {
				f, err := parseFilter(args)
				if err != nil {
					return "", err
				}
				txs, err := ledger.Filter(f)
				if err != nil {
					return "", err
				}
				return renderer.Transactions(txs, opts), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "summarize",
				Description: "Computes the total income, total expenses, net balance and count of transactions of a month, or of the whole ledger.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"month": monthSchema,
					},
				},
				Response: markdownSchema,
			},
			Func: func(_ context.Context, args map[string]any) (string, error) {
				month, err := stringArg(args, "month")
				if err != nil {
					return "", err
				}
				s, err := ledger.Summarize(month)
				if err != nil {
					return "", err
				}
				return renderer.Summary(s, month, opts), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "categories",
				Description: "Computes income, expenses and net totals for each category, optionally filtered.",
				Parameters:  filterSchema,
				Response:    markdownSchema,
			},
			Func: func(_ context.Context, args map[string]any) (string, error) {
				f, err := parseFilter(args)
				if err != nil {
					return "", err
				}
				cats, err := ledger.Categories(f)
				if err != nil {
					return "", err
				}
				return renderer.Categories(cats, opts), nil
			},
		},
	}
}

var monthSchema = &genai.Schema{
	Type:        genai.TypeString,
	Description: "A month formatted as YYYY-MM. Omit it for all months.",
}

var filterSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"month": monthSchema,
		"category": {
			Type:        genai.TypeString,
			Description: "Keep only this category, case-insensitive.",
		},
		"type": {
			Type:        genai.TypeString,
			Description: "Keep only 'income' or 'expense'.",
			Enum:        []string{"income", "expense"},
		},
	},
}

var markdownSchema = &genai.Schema{
	Type:        genai.TypeString,
	Description: "A markdown document.",
}

// stringArg returns the optional string argument name.
func stringArg(args map[string]any, name string) (string, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q is not a string but %T", name, v)
	}
	return s, nil
}

func parseFilter(args map[string]any) (budget.Filter, error) {
	var f budget.Filter
	var err error
	if f.Month, err = stringArg(args, "month"); err != nil {
		return f, err
	}
	if f.Category, err = stringArg(args, "category"); err != nil {
		return f, err
	}
	if f.Type, err = stringArg(args, "type"); err != nil {
		return f, err
	}
	return f, nil
}
