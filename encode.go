package budget

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/budget/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// MarshalJSON writes the transaction fields in a stable order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("date", t.Date)
	w.Append("type", t.Type)
	w.Append("category", t.Category)
	w.Append("amount", t.Amount)
	w.Append("note", t.Note)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	tx, err := decodeTransaction(data, 0)
	if err != nil {
		return err
	}
	*t = tx
	return nil
}

// rawTransaction keeps every field raw so that missing fields can be told
// apart from zero values, and loosely typed values coerced.
type rawTransaction struct {
	ID       json.RawMessage `json:"id"`
	Date     json.RawMessage `json:"date"`
	Type     json.RawMessage `json:"type"`
	Category json.RawMessage `json:"category"`
	Amount   json.RawMessage `json:"amount"`
	Note     json.RawMessage `json:"note"`
}

var errMissing = errors.New("missing required field")

// decodeTransaction decodes one stored record. index is only used to report errors.
func decodeTransaction(data []byte, index int) (Transaction, error) {
	var raw rawTransaction
	if err := json.Unmarshal(data, &raw); err != nil {
		return Transaction{}, &ParseError{Index: index, Err: err}
	}
	fail := func(field string, err error) (Transaction, error) {
		return Transaction{}, &ParseError{Index: index, Field: field, Err: err}
	}

	id, err := scalar(raw.ID)
	if err != nil {
		return fail("id", err)
	}
	n, err := decimal.NewFromString(strings.TrimSpace(id))
	if err != nil || !n.IsInteger() {
		return fail("id", fmt.Errorf("not an integer: %q", id))
	}
	if !n.IsPositive() {
		return fail("id", fmt.Errorf("not a positive integer: %q", id))
	}
	txID, err := strconv.Atoi(n.Truncate(0).String())
	if err != nil {
		return fail("id", fmt.Errorf("out of range: %q", id))
	}

	day, err := scalar(raw.Date)
	if err != nil {
		return fail("date", err)
	}
	on, err := date.ParseStrict(day)
	if err != nil {
		return fail("date", err)
	}

	typ, err := scalar(raw.Type)
	if err != nil {
		return fail("type", err)
	}

	category, err := scalar(raw.Category)
	if err != nil {
		return fail("category", err)
	}

	amountStr, err := scalar(raw.Amount)
	if err != nil {
		return fail("amount", err)
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(amountStr))
	if err != nil {
		return fail("amount", fmt.Errorf("not a number: %q", amountStr))
	}

	note, err := scalar(raw.Note)
	if errors.Is(err, errMissing) {
		note, err = "", nil
	}
	if err != nil {
		return fail("note", err)
	}

	return Transaction{
		ID:       txID,
		Date:     on,
		Type:     Type(strings.ToLower(strings.TrimSpace(typ))),
		Category: strings.TrimSpace(category),
		Amount:   amount,
		Note:     strings.TrimSpace(note),
	}, nil
}

// scalar returns a JSON string, number or boolean as a string.
// Absent and null values are reported as errMissing.
func scalar(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return "", errMissing
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	case '{', '[':
		return "", fmt.Errorf("unexpected value %s", raw)
	default:
		// numbers and booleans are kept as written.
		if _, err := strconv.ParseBool(string(raw)); err == nil {
			return string(raw), nil
		}
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return "", err
		}
		return n.String(), nil
	}
}

// Decode reads a ledger stored as a JSON array of transactions.
//
// The transactions keep the order of the file.
func Decode(r io.Reader) (*Ledger, error) {
	var records []json.RawMessage
	dec := json.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("not a list of transactions: %w", err)
	}
	if records == nil {
		// a literal null is not a list either.
		return nil, errors.New("not a list of transactions: null")
	}
	if dec.More() {
		return nil, errors.New("unexpected content after the list of transactions")
	}

	ledger := NewLedger()
	for i, record := range records {
		tx, err := decodeTransaction(record, i)
		if err != nil {
			return nil, err
		}
		ledger.append(tx)
	}
	return ledger, nil
}

// Encode writes the ledger as an indented JSON array of transactions, in
// insertion order.
func Encode(w io.Writer, ledger *Ledger) error {
	txs := ledger.transactions
	if txs == nil {
		txs = []Transaction{}
	}
	data, err := json.MarshalIndent(txs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ledger: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write ledger: %w", err)
	}
	return nil
}
