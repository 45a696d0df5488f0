package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/pockit/internal/locale"
	"github.com/Veraticus/pockit/internal/model"
	"github.com/Veraticus/pockit/internal/service"
)

const dateFormat = "2006-01-02 15:04"

// Detail is one labeled field of an extracted payload.
type Detail struct {
	Label string
	Value string
}

// Details lists the payload fields worth showing, localized for lang.
// Transaction fields the model left empty or "null" are skipped.
func Details(data model.Payload, lang locale.Language) []Detail {
	var out []Detail
	switch p := data.(type) {
	case model.Transaction:
		if p.Amount != 0 {
			out = append(out, Detail{locale.T(lang, locale.KeyAmount), FormatRupees(p.Amount)})
		}
		if p.HasCategory() {
			out = append(out, Detail{locale.T(lang, locale.KeyCategory), p.SpentCategory})
		}
		if p.HasReceiver() {
			out = append(out, Detail{locale.T(lang, locale.KeyPaidTo), p.Receiver})
		}
	case model.Milestone:
		out = append(out,
			Detail{locale.T(lang, locale.KeySaved), FormatRupees(p.SavedAmount)},
			Detail{locale.T(lang, locale.KeyGoal), FormatRupees(p.GoalAmount)},
		)
		if p.Duration != "" {
			out = append(out, Detail{locale.T(lang, locale.KeyDuration), p.Duration})
		}
	}
	return out
}

// RenderReply formats an assistant message and its payload for the terminal.
func RenderReply(msg model.Message, lang locale.Language) string {
	details := Details(msg.Data, lang)
	if len(details) == 0 {
		return msg.Text
	}

	lines := make([]string, len(details))
	for i, d := range details {
		lines[i] = SubtleStyle.Render(d.Label+":") + " " + d.Value
	}
	return msg.Text + "\n" + BoxStyle.Render(strings.Join(lines, "\n"))
}

// WriteTransactions writes recorded transactions as a table.
func WriteTransactions(w io.Writer, records []model.TransactionRecord) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if err := writeRow(tw, header("Date"), header("Amount"), header("Category"),
		header("Paid to"), header("Method"), header("Phone")); err != nil {
		return err
	}
	for _, r := range records {
		if err := writeRow(tw,
			r.CreatedAt.Local().Format(dateFormat),
			FormatRupees(r.Amount),
			r.SpentCategory,
			r.Receiver,
			r.MethodOfPayment,
			r.PhoneNumber); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// WriteMilestones writes recorded milestones as a table.
func WriteMilestones(w io.Writer, records []model.MilestoneRecord) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if err := writeRow(tw, header("Date"), header("Saved"), header("Goal"),
		header("Progress"), header("Duration")); err != nil {
		return err
	}
	for _, r := range records {
		if err := writeRow(tw,
			r.CreatedAt.Local().Format(dateFormat),
			FormatRupees(r.SavedAmount),
			FormatRupees(r.GoalAmount),
			fmt.Sprintf("%.0f%%", r.Progress()*100),
			r.Duration); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// WriteSummary writes spending totals by category, followed by the grand total.
func WriteSummary(w io.Writer, summaries []service.CategorySummary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if err := writeRow(tw, header("Category"), header("Count"), header("Amount")); err != nil {
		return err
	}
	var total float64
	for _, s := range summaries {
		total += s.Amount
		if err := writeRow(tw, s.Category, fmt.Sprint(s.Count), FormatRupees(s.Amount)); err != nil {
			return err
		}
	}
	if err := writeRow(tw, header("Total"), "", FormatRupees(total)); err != nil {
		return err
	}
	return tw.Flush()
}

func header(s string) string {
	return TableHeaderStyle.Render(s)
}

func writeRow(w io.Writer, cells ...string) error {
	if _, err := fmt.Fprintln(w, strings.Join(cells, "\t")); err != nil {
		return fmt.Errorf("failed to write row: %w", err)
	}
	return nil
}
