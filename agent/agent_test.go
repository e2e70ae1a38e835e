package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/etnz/budget"
	"github.com/etnz/budget/renderer"
	"github.com/google/go-cmp/cmp"
	"google.golang.org/genai"
)

func testLedger(t *testing.T) *budget.Ledger {
	t.Helper()
	l := budget.NewLedger()
	for _, e := range []budget.Entry{
		{Date: "2024-03-01", Type: "income", Category: "Salary", Amount: "2500"},
		{Date: "2024-03-05", Type: "expense", Category: "Food", Amount: "40"},
		{Date: "2024-04-02", Type: "expense", Category: "food", Amount: "10"},
	} {
		if _, err := l.Add(e); err != nil {
			t.Fatalf("Add(%+v) unexpected error: %v", e, err)
		}
	}
	return l
}

func call(lib Library, name string, args map[string]any) *genai.FunctionResponse {
	return lib(context.Background(), &genai.FunctionCall{ID: "call-1", Name: name, Args: args})
}

func TestLedgerFunctions(t *testing.T) {
	lib := NewLibrary(LedgerFunctions(testLedger(t), renderer.Options{}))

	testCases := []struct {
		name     string
		function string
		args     map[string]any
		contains []string
	}{
		{"list all", "list_transactions", nil, []string{"Salary", "Food", "2024-04-02"}},
		{"list by type", "list_transactions", map[string]any{"type": "income"}, []string{"Salary"}},
		{"summarize month", "summarize", map[string]any{"month": "2024-03"}, []string{"Summary for 2024-03", "2460.00"}},
		{"summarize all", "summarize", map[string]any{}, []string{"2450.00"}},
		{"categories", "categories", map[string]any{"type": "expense"}, []string{"Food", "50.00"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := call(lib, tc.function, tc.args)
			if resp.ID != "call-1" || resp.Name != tc.function {
				t.Errorf("response = %s/%s, want call-1/%s", resp.ID, resp.Name, tc.function)
			}
			out, ok := resp.Response["output"].(string)
			if !ok {
				t.Fatalf("response has no output: %v", resp.Response)
			}
			for _, want := range tc.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output does not contain %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestLedgerFunctions_Errors(t *testing.T) {
	lib := NewLibrary(LedgerFunctions(testLedger(t), renderer.Options{}))

	testCases := []struct {
		name     string
		function string
		args     map[string]any
		want     string
	}{
		{"invalid month", "summarize", map[string]any{"month": "march"}, `invalid month "march"`},
		{"invalid type", "list_transactions", map[string]any{"type": "gift"}, `invalid type "gift"`},
		{"not a string", "categories", map[string]any{"month": 3.0}, `argument "month" is not a string`},
		{"unknown function", "delete", nil, "unknown function delete"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := call(lib, tc.function, tc.args)
			msg, ok := resp.Response["error"].(string)
			if !ok {
				t.Fatalf("response has no error: %v", resp.Response)
			}
			if !strings.Contains(msg, tc.want) {
				t.Errorf("error = %q, want it to contain %q", msg, tc.want)
			}
		})
	}
}

func TestExpert_Call_InvalidQuestion(t *testing.T) {
	e := &Expert{Name: "Accountant"}
	resp := e.Call(context.Background(), "id", map[string]any{"question": 42})
	if _, ok := resp.Response["error"]; !ok {
		t.Errorf("Call() with a non string question should fail, got %v", resp.Response)
	}
}

func TestExpert_Ask_NotStarted(t *testing.T) {
	e := &Expert{Name: "Accountant"}
	if _, err := e.Ask(context.Background(), &genai.Part{Text: "hi"}); err == nil {
		t.Error("Ask() on an expert not started should fail")
	}
}

func TestNewFacilitator(t *testing.T) {
	accountant := NewAccountant("model", budget.NewLedger(), renderer.Options{})
	f := NewFacilitator("model", accountant, NewAdvisor("model"))

	var got []string
	for _, tool := range f.Config.Tools {
		for _, d := range tool.FunctionDeclarations {
			got = append(got, d.Name)
		}
	}
	if diff := cmp.Diff([]string{"Accountant", "Advisor"}, got); diff != "" {
		t.Errorf("facilitator tools mismatch (-want +got):\n%s", diff)
	}
}

func TestText(t *testing.T) {
	c := &genai.Content{Parts: []*genai.Part{{Text: "Hello "}, {Text: "world"}}}
	if got := Text(c); got != "Hello world" {
		t.Errorf("Text() = %q, want %q", got, "Hello world")
	}
}
