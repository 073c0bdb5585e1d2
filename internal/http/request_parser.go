package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"budgetapp/internal/core"
)

const maxBodyBytes = 1 << 20

var errMalformedBody = errors.New("malformed JSON body")

// DecodeBudgetInput reads a single JSON budget from the request body. Field
// values are kept verbatim, unknown fields are ignored and an empty body
// decodes to an empty input.
func DecodeBudgetInput(w http.ResponseWriter, r *http.Request) (core.BudgetInput, error) {
	var in core.BudgetInput
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return core.BudgetInput{}, nil
		}
		return core.BudgetInput{}, fmt.Errorf("%w: %v", errMalformedBody, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return core.BudgetInput{}, fmt.Errorf("%w: trailing data after object", errMalformedBody)
	}
	return in, nil
}

// ParseBudgetForm maps form fields to a budget input. Text fields are trimmed
// and stripped of control characters, blank fields count as missing and an
// unparsable amount falls back to the default.
func ParseBudgetForm(form url.Values) core.BudgetInput {
	in := core.BudgetInput{Category: sanitizeInput(form.Get("category"))}

	if desc := sanitizeInput(form.Get("description")); desc != "" {
		in.Description = &desc
	}
	if v := strings.TrimSpace(form.Get("amount")); v != "" {
		if amount, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64); err == nil {
			in.Amount = &amount
		}
	}
	return in
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != '\t' && r != '\n' && r != '\r' {
			return -1
		}
		return r
	}, s)
}
