package http

import (
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Chemi-prog/family-budget-app-v2/internal/core"
)

// handleIndex renders the page shell: the expense form, the month selector
// and the dashboard container.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	var loadError string
	records, dropped, err := s.records.Load(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Record load error", "error", err)
		loadError = "Failed to load expenses from the remote sheet. Showing an empty view."
	}
	months := core.Months(records)
	selected := strings.TrimSpace(r.URL.Query().Get("month"))
	if !containsMonth(months, selected) && len(months) > 0 {
		selected = months[0]
	}

	data := struct {
		Today         string
		Members       []string
		PaymentModes  []core.PaymentMode
		Months        []string
		SelectedMonth string
		Dropped       int
		LoadError     string
	}{
		Today:         todayDate(s.now()).String(),
		Members:       core.Members,
		PaymentModes:  []core.PaymentMode{core.Cash, core.CreditCard, core.Online},
		Months:        months,
		SelectedMonth: selected,
		Dropped:       dropped,
		LoadError:     loadError,
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", "error", err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleCreateRecord accepts the expense form submission.
func (s *Server) handleCreateRecord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "method", r.Method, "url", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">Invalid request format</div>`))
		return
	}

	dateStr := strings.TrimSpace(r.Form.Get("date"))
	date := core.ParseDate(dateStr)
	if dateStr == "" {
		date = todayDate(s.now())
	}
	if date.IsEmpty() {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Invalid date</div>`))
		return
	}

	amountStr := strings.TrimSpace(r.Form.Get("amount"))
	cents, err := core.ParseDecimalToCents(amountStr)
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Invalid amount</div>`))
		return
	}

	rec := core.Record{
		Member:      sanitizeInput(r.Form.Get("member")),
		Amount:      core.Money{Cents: cents},
		Category:    sanitizeInput(r.Form.Get("category")),
		PaymentMode: core.PaymentMode(sanitizeInput(r.Form.Get("payment_mode"))),
		Date:        date,
		Deadline:    core.ParseDate(r.Form.Get("deadline")),
	}

	stored, err := s.records.CreateRecord(r.Context(), rec)
	if err != nil {
		if isValidationErr(err) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`<div class="error">Please fill in all required fields: ` + template.HTMLEscapeString(err.Error()) + `</div>`))
			return
		}
		slog.ErrorContext(r.Context(), "Record append error", "error", err,
			"member", rec.Member, "category", rec.Category, "amount_cents", cents)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="error">Failed to save the expense. Please try again.</div>`))
		return
	}

	month := stored.Date.MonthKey()
	w.Header().Set("HX-Trigger", `{"record:created": {"month": "`+month+`"}}`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`<div class="success">Expense added and saved: ` +
		template.HTMLEscapeString(stored.Category) +
		` for ` + template.HTMLEscapeString(formatRupees(stored.Amount.Cents)) +
		` (` + template.HTMLEscapeString(stored.Member) + `, ` + template.HTMLEscapeString(string(stored.PaymentMode)) + `)</div>`))
}

// handleDashboard renders the monthly dashboard partial: metrics, category
// and member breakdowns, and the expense table.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	records, dropped, err := s.records.Load(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Dashboard load error", "error", err)
		_, _ = w.Write([]byte(`<section id="dashboard" class="dashboard"><div class="placeholder">Failed to load expenses</div></section>`))
		return
	}

	months := core.Months(records)
	if len(records) == 0 {
		if err := s.renderDashboard(w, dashboardData{Empty: true, Dropped: dropped}); err != nil {
			slog.ErrorContext(r.Context(), "Dashboard template execution failed", "error", err)
		}
		return
	}

	month := strings.TrimSpace(r.URL.Query().Get("month"))
	if !containsMonth(months, month) {
		month = months[0]
	}

	summary := core.Summarize(records, month)
	data := dashboardData{
		Month:      month,
		Count:      summary.Count,
		Total:      formatRupees(summary.Total.Cents),
		Mean:       formatRupees(summary.Mean.Cents),
		ByCategory: barRows(summary.ByCategory),
		ByMember:   barRows(summary.ByMember),
		Dropped:    dropped,
	}
	for _, rec := range core.FilterMonth(records, month) {
		deadline := "N/A"
		if !rec.Deadline.IsEmpty() {
			deadline = rec.Deadline.String()
		}
		data.Items = append(data.Items, tableRow{
			Date:        rec.Date.String(),
			Member:      rec.Member,
			Category:    rec.Category,
			Amount:      formatRupees(rec.Amount.Cents),
			PaymentMode: string(rec.PaymentMode),
			Deadline:    deadline,
		})
	}

	if err := s.renderDashboard(w, data); err != nil {
		slog.ErrorContext(r.Context(), "Dashboard template execution failed", "error", err, "month", month)
		_, _ = w.Write([]byte(`<section id="dashboard" class="dashboard"><div class="placeholder">Failed to render dashboard</div></section>`))
	}
}

type barRow struct {
	Name, Amount string
	Width        int
}

type tableRow struct {
	Date, Member, Category, Amount, PaymentMode, Deadline string
}

type dashboardData struct {
	Empty      bool
	Month      string
	Count      int
	Total      string
	Mean       string
	ByCategory []barRow
	ByMember   []barRow
	Items      []tableRow
	Dropped    int
}

func (s *Server) renderDashboard(w http.ResponseWriter, data dashboardData) error {
	if s.templates == nil {
		_, _ = w.Write([]byte(`<section id="dashboard" class="dashboard"><div class="placeholder">Total: ` + data.Total + `</div></section>`))
		return nil
	}
	return s.templates.ExecuteTemplate(w, "dashboard.html", data)
}

// barRows converts group sums into rows with widths scaled against the
// largest group, for the proportional bar rendering.
func barRows(groups []core.GroupAmount) []barRow {
	var maxCents int64
	for _, g := range groups {
		if g.Amount.Cents > maxCents {
			maxCents = g.Amount.Cents
		}
	}
	rows := make([]barRow, 0, len(groups))
	for _, g := range groups {
		width := 0
		if maxCents > 0 && g.Amount.Cents > 0 {
			width = int((g.Amount.Cents*100 + maxCents/2) / maxCents) // rounded percent
			if width > 0 && width < 2 {
				width = 2
			}
			if width > 100 {
				width = 100
			}
		}
		rows = append(rows, barRow{Name: g.Name, Amount: formatRupees(g.Amount.Cents), Width: width})
	}
	return rows
}

func containsMonth(months []string, month string) bool {
	if month == "" {
		return false
	}
	for _, m := range months {
		if m == month {
			return true
		}
	}
	return false
}
