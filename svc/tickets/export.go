package tickets

import (
	"context"
	"time"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/deskkit/pkg/csvexport"
)

// Placeholders for missing nested references.
const (
	missingRef      = "N/A"
	unassignedAgent = "Unassigned"
)

// supportedLocales and dateLayouts pick the locale date layout for the
// Created column. Matching falls back to en-US for unknown locales.
var (
	supportedLocales = []language.Tag{
		language.AmericanEnglish, // en-US, the default
		language.BritishEnglish,
		language.German,
		language.French,
	}

	dateLayouts = map[language.Tag]string{
		language.AmericanEnglish: "1/2/2006",
		language.BritishEnglish:  "02/01/2006",
		language.German:          "02.01.2006",
		language.French:          "02/01/2006",
	}

	localeMatcher = language.NewMatcher(supportedLocales)
)

// ExportHeaders is the fixed column mapping for ticket exports.
var ExportHeaders = []csvexport.Header{
	{Label: "Ticket ID", Key: "id"},
	{Label: "Title", Key: "title"},
	{Label: "Status", Key: "status"},
	{Label: "Priority", Key: "priority"},
	{Label: "Customer", Key: "customer"},
	{Label: "Category", Key: "category"},
	{Label: "Equipment", Key: "equipment"},
	{Label: "Assigned Agent", Key: "agent"},
	{Label: "Created", Key: "created"},
}

// ExportOption customizes ticket export rendering.
type ExportOption func(*exportOptions)

type exportOptions struct {
	locale language.Tag
	now    func() time.Time
}

// WithLocale formats the Created column per the given locale.
func WithLocale(tag language.Tag) ExportOption {
	return func(o *exportOptions) {
		o.locale = tag
	}
}

// withNow overrides the clock used for the default filename; test hook.
func withNow(now func() time.Time) ExportOption {
	return func(o *exportOptions) {
		if now != nil {
			o.now = now
		}
	}
}

func newExportOptions(opts []ExportOption) *exportOptions {
	o := &exportOptions{
		locale: language.AmericanEnglish,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// ExportRows maps tickets into the generic export row shape, substituting
// "N/A" for missing customer/category/equipment references and "Unassigned"
// for a missing agent.
func ExportRows(tickets []Ticket, opts ...ExportOption) []csvexport.Row {
	o := newExportOptions(opts)
	layout := dateLayout(o.locale)

	rows := make([]csvexport.Row, 0, len(tickets))
	for _, t := range tickets {
		rows = append(rows, csvexport.Row{
			"id":        t.ID,
			"title":     t.Title,
			"status":    string(t.Status),
			"priority":  t.Priority,
			"customer":  refName(t.Customer, missingRef),
			"category":  refName(t.Category, missingRef),
			"equipment": refName(t.Equipment, missingRef),
			"agent":     refName(t.Agent, unassignedAgent),
			"created":   t.CreatedAt.Format(layout),
		})
	}
	return rows
}

// ExportCSV renders tickets through the given exporter. An empty filename
// defaults to "tickets_export_<ISO-date>.csv" using the current date at call
// time. Empty input fails with csvexport.ErrEmptyData before any side effect.
func ExportCSV(ctx context.Context, exporter *csvexport.Exporter, tickets []Ticket, filename string, opts ...ExportOption) error {
	o := newExportOptions(opts)
	if filename == "" {
		filename = DefaultFilename(o.now())
	}
	return exporter.Export(ctx, ExportRows(tickets, opts...), filename, ExportHeaders)
}

// DefaultFilename builds the conventional export filename for the given date.
func DefaultFilename(now time.Time) string {
	return "tickets_export_" + now.Format("2006-01-02") + ".csv"
}

func refName(ref *Ref, placeholder string) string {
	if ref == nil || ref.Name == "" {
		return placeholder
	}
	return ref.Name
}

func dateLayout(tag language.Tag) string {
	_, i, _ := localeMatcher.Match(tag)
	return dateLayouts[supportedLocales[i]]
}
