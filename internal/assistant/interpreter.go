package assistant

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Veraticus/pockit/internal/locale"
	"github.com/Veraticus/pockit/internal/model"
)

// Interpret parses a raw classifier reply into a normalized Reply.
// Only a reply that is not a JSON object fails, with ErrParse. Problems
// inside the "json" member degrade to defaults so the model's message is
// still shown.
func Interpret(raw string, lang locale.Language) (model.Reply, error) {
	content := cleanMarkdownWrapper(raw)

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &envelope); err != nil {
		return model.Reply{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if envelope == nil {
		return model.Reply{}, fmt.Errorf("%w: reply is not a JSON object", ErrParse)
	}

	reply := model.Reply{
		Message: stringField(envelope["message"]),
		Payload: interpretPayload(envelope["json"]),
	}
	if reply.Message == "" {
		reply.Message = locale.T(lang, locale.KeyNotUnderstood)
	}
	return reply, nil
}

// interpretPayload turns the "json" member into a Milestone, a Transaction or
// nil. Missing, null, false, 0 and "" carry no payload. The presence of
// savedAmount, whatever its value, selects Milestone; any other value,
// including a non-object, is a Transaction.
func interpretPayload(raw json.RawMessage) model.Payload {
	if isFalsy(raw) {
		return nil
	}

	// A non-object leaves fields nil, so every lookup below takes its default.
	var fields map[string]json.RawMessage
	_ = json.Unmarshal(raw, &fields)

	if _, ok := fields["savedAmount"]; ok {
		return model.Milestone{
			SavedAmount: numberField(fields["savedAmount"]),
			GoalAmount:  numberField(fields["goalAmount"]),
			Duration:    textField(fields["duration"]),
		}
	}

	return model.Transaction{
		PhoneNumber:     stringOrNull(fields["phoneNumber"]),
		Amount:          numberField(fields["amount"]),
		SpentCategory:   stringOrNull(fields["spentCategory"]),
		MethodOfPayment: stringOrNull(fields["methodeOfPayment"]),
		Receiver:        stringOrNull(fields["receiver"]),
	}
}

// cleanMarkdownWrapper strips a ```json fence some models wrap replies in.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	content = strings.TrimPrefix(content, "```")
	if nl := strings.IndexByte(content, '\n'); nl >= 0 {
		// Drop the info string, e.g. "json".
		content = content[nl+1:]
	}
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}

// isFalsy reports whether raw is missing, null, false, 0 or "".
func isFalsy(raw json.RawMessage) bool {
	if isNull(raw) {
		return true
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return true
	}
	switch x := v.(type) {
	case bool:
		return !x
	case float64:
		return x == 0
	case string:
		return x == ""
	}
	return false
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// stringField returns raw as a string, or "" when it is missing or not a string.
func stringField(raw json.RawMessage) string {
	if isNull(raw) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// stringOrNull applies the transaction default: missing, empty, false and
// zero values become "null". Other scalars keep their textual form.
func stringOrNull(raw json.RawMessage) string {
	if isNull(raw) {
		return model.NullString
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return model.NullString
	}
	switch x := v.(type) {
	case string:
		if x == "" {
			return model.NullString
		}
		return x
	case bool:
		if !x {
			return model.NullString
		}
	case float64:
		if x == 0 {
			return model.NullString
		}
	}
	if s := textField(raw); s != "" {
		return s
	}
	return model.NullString
}

// textField renders a scalar as text, leaving strings unquoted.
func textField(raw json.RawMessage) string {
	if isNull(raw) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	switch v.(type) {
	case map[string]any, []any:
		return ""
	}
	return string(bytes.TrimSpace(raw))
}

// amountNoise is stripped from numeric strings before parsing.
var amountNoise = strings.NewReplacer(
	"₹", "", "Rs.", "", "Rs", "", "INR", "", "$", "",
	",", "", "_", "", " ", "",
)

// numberField coerces a JSON number or numeric string such as "₹2,000".
// Anything that does not yield a finite number is 0.
func numberField(raw json.RawMessage) float64 {
	if isNull(raw) {
		return 0
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0
	}

	var n float64
	switch x := v.(type) {
	case float64:
		n = x
	case string:
		f, err := strconv.ParseFloat(amountNoise.Replace(strings.TrimSpace(x)), 64)
		if err != nil {
			return 0
		}
		n = f
	default:
		return 0
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}
