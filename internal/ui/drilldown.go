package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/studioboard/internal/format"
	"github.com/five82/studioboard/internal/studio"
)

// drillSection is one of the drill-down's sub-tabs.
type drillSection int

const (
	sectionOverview drillSection = iota
	sectionJourney
	sectionFinancials
)

var drillSections = []drillSection{sectionOverview, sectionJourney, sectionFinancials}

func (s drillSection) label() string {
	switch s {
	case sectionJourney:
		return "Journey"
	case sectionFinancials:
		return "Financials"
	default:
		return "Overview"
	}
}

// Field placeholders.
const (
	notProvided  = "Not provided"
	notSpecified = "Not specified"
	notAssigned  = "Not assigned"
	noPlan       = "None"
)

// DrillDown is the client profile dialog. It renders nothing while closed or
// while it holds no client.
type DrillDown struct {
	open      bool
	client    *studio.ClientRecord
	section   drillSection
	formatter format.Formatter
}

// NewDrillDown returns a closed dialog that formats values with f.
func NewDrillDown(f format.Formatter) *DrillDown {
	return &DrillDown{formatter: f}
}

// Open shows client and resets the dialog to the overview section.
func (d *DrillDown) Open(client *studio.ClientRecord) {
	d.open = true
	d.client = client
	d.section = sectionOverview
}

// Close hides the dialog.
func (d *DrillDown) Close() {
	d.open = false
}

// IsOpen reports whether the dialog was opened and not yet closed.
func (d *DrillDown) IsOpen() bool {
	return d.open
}

// Update implements Modal.
func (d *DrillDown) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil, false
	}
	switch {
	case key.Matches(keyMsg, keys.Escape):
		d.Close()
		return d, nil, true
	case key.Matches(keyMsg, keys.NextPane), key.Matches(keyMsg, keys.Right):
		d.shiftSection(1)
	case key.Matches(keyMsg, keys.PrevPane), key.Matches(keyMsg, keys.Left):
		d.shiftSection(-1)
	case key.Matches(keyMsg, keys.Overview):
		d.section = sectionOverview
	case key.Matches(keyMsg, keys.Journey):
		d.section = sectionJourney
	case key.Matches(keyMsg, keys.Financials):
		d.section = sectionFinancials
	}
	return d, nil, false
}

func (d *DrillDown) shiftSection(delta int) {
	n := len(drillSections)
	d.section = drillSections[((int(d.section)+delta)%n+n)%n]
}

// View implements Modal.
func (d *DrillDown) View(theme Theme, width, height int) string {
	if d == nil || !d.open || d.client == nil {
		return ""
	}
	view := newClientView(*d.client, d.formatter)

	modalWidth := width - 4
	if modalWidth > LayoutModalMaxWidth {
		modalWidth = LayoutModalMaxWidth
	}
	if modalWidth < 40 {
		modalWidth = 40
	}
	inner := modalWidth - 6

	styles := theme.Styles()
	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(view.title))
	b.WriteString("\n\n")
	b.WriteString(renderStatCards(theme, view.stats, inner))
	b.WriteString("\n\n")
	b.WriteString(renderSectionTabs(theme, d.section))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", inner)))
	b.WriteString("\n")

	switch d.section {
	case sectionOverview:
		b.WriteString(renderOverview(theme, view, inner))
	case sectionJourney:
		b.WriteString(renderJourney(theme, view))
	case sectionFinancials:
		b.WriteString(renderFinancials(theme, view, inner))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Width(modalWidth).
		Render(b.String())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}

// statCard is one of the four headline numbers.
type statCard struct {
	label string
	value string
}

// journeyStep is one entry of the client timeline. Numbers are fixed per
// step kind, so a hidden step leaves a gap rather than renumbering.
type journeyStep struct {
	number int
	title  string
	lines  []string
	tone   Tone
}

type labeledValue struct {
	label string
	value string
}

// clientView is a ClientRecord with every display default applied.
type clientView struct {
	title string
	stats []statCard

	email       string
	phone       string
	home        string
	memberSince string

	conversion ConversionStatus
	retention  RetentionStatus
	clientType string
	trainer    string

	journey []journeyStep

	totalLTV           string
	postTrialPurchases string
	paymentMethod      string
	currentPlan        string
	classNo            string
	period             string
}

func newClientView(c studio.ClientRecord, f format.Formatter) clientView {
	ltv := f.Currency(c.LTV)

	v := clientView{
		title: clientTitle(c),
		stats: []statCard{
			{label: "Lifetime Value", value: ltv},
			{label: "Visits Post Trial", value: strconv.Itoa(c.VisitsPostTrial)},
			{label: "Days to Convert", value: strconv.Itoa(c.ConversionSpan)},
			{label: "Purchases Made", value: strconv.Itoa(c.PurchaseCountPostTrial)},
		},

		email:       orDefault(c.Email, notProvided),
		phone:       orDefault(c.PhoneNumber, notProvided),
		home:        orDefault(c.HomeLocation, notSpecified),
		memberSince: "Member since: " + f.Date(c.FirstVisitDate),

		conversion: ParseConversionStatus(c.ConversionStatus),
		retention:  ParseRetentionStatus(c.RetentionStatus),
		clientType: orDefault(c.IsNew, unknownLabel),
		trainer:    orDefault(c.TrainerName, notAssigned),

		totalLTV:           ltv,
		postTrialPurchases: strconv.Itoa(c.PurchaseCountPostTrial),
		paymentMethod:      orDefault(c.PaymentMethod, notSpecified),
		currentPlan:        orDefault(c.MembershipUsed, noPlan),
		classNo:            strconv.Itoa(c.ClassNo),
		period:             orDefault(c.Period, notSpecified),
	}
	v.journey = journeySteps(c, v.conversion, f)
	return v
}

func clientTitle(c studio.ClientRecord) string {
	name := c.FullName()
	if name == "" {
		name = unknownLabel
	}
	return "Client Profile: " + name
}

// journeySteps builds the timeline: the first visit always, the conversion
// only for converted clients, the ongoing membership only when post-trial
// memberships were bought.
func journeySteps(c studio.ClientRecord, conv ConversionStatus, f format.Formatter) []journeyStep {
	steps := []journeyStep{{
		number: 1,
		title:  "First Visit",
		lines: []string{
			fmt.Sprintf("%s at %s", f.Date(c.FirstVisitDate), orDefault(c.FirstVisitLocation, notSpecified)),
			"Type: " + orDefault(c.FirstVisitType, notSpecified),
		},
		tone: ToneInfo,
	}}

	if conv == ConversionConverted {
		steps = append(steps, journeyStep{
			number: 2,
			title:  "Conversion",
			lines: []string{
				fmt.Sprintf("Converted after %d days", c.ConversionSpan),
				"First Purchase: " + orDefault(c.FirstPurchase, notSpecified),
			},
			tone: ToneSuccess,
		})
	}

	if c.MembershipsBoughtPostTrial != 0 {
		steps = append(steps, journeyStep{
			number: 3,
			title:  "Ongoing Membership",
			lines: []string{
				"Current: " + orDefault(c.MembershipUsed, noPlan),
				fmt.Sprintf("Post-trial purchases: %d", c.MembershipsBoughtPostTrial),
			},
			tone: ToneCaution,
		})
	}
	return steps
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

func renderStatCards(theme Theme, cards []statCard, width int) string {
	styles := theme.Styles()
	perRow := len(cards)
	if width < LayoutCardsWideWidth {
		perRow = 2
	}
	cardWidth := width/perRow - 2
	if cardWidth < 12 {
		cardWidth = 12
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Border)).
		Padding(0, 1).
		Width(cardWidth)

	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		body := styles.MutedText.Render(c.label) + "\n" + styles.Text.Bold(true).Render(c.value)
		rendered = append(rendered, card.Render(body))
	}

	var rows []string
	for i := 0; i < len(rendered); i += perRow {
		end := i + perRow
		if end > len(rendered) {
			end = len(rendered)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderSectionTabs(theme Theme, active drillSection) string {
	styles := theme.Styles()
	activeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent)).
		Bold(true).
		Underline(true)

	parts := make([]string, 0, len(drillSections))
	for _, s := range drillSections {
		if s == active {
			parts = append(parts, activeStyle.Render(s.label()))
		} else {
			parts = append(parts, styles.MutedText.Render(s.label()))
		}
	}
	return strings.Join(parts, styles.FaintText.Render("   "))
}

func renderOverview(theme Theme, v clientView, width int) string {
	styles := theme.Styles()
	badge := func(label string, tone Tone) string {
		return styles.BadgeStyle(tone).Render(label)
	}
	outline := func(label string) string {
		return styles.FaintText.Render("[") + styles.Text.Render(label) + styles.FaintText.Render("]")
	}

	personal := renderCard(theme, "Personal Information", []string{
		styles.Text.Render(v.email),
		styles.Text.Render(v.phone),
		styles.Text.Render(v.home),
		styles.MutedText.Render(v.memberSince),
	})
	status := renderCard(theme, "Status & Performance", renderFields(theme, []labeledValue{
		{label: "Conversion Status:", value: badge(v.conversion.Label(), v.conversion.Tone())},
		{label: "Retention Status:", value: badge(v.retention.Label(), v.retention.Tone())},
		{label: "Client Type:", value: outline(v.clientType)},
		{label: "Trainer:", value: styles.Text.Bold(true).Render(v.trainer)},
	}))

	if width >= LayoutCardsWideWidth {
		return lipgloss.JoinHorizontal(lipgloss.Top, personal, "  ", status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, personal, status)
}

func renderJourney(theme Theme, v clientView) string {
	styles := theme.Styles()
	lines := make([]string, 0, len(v.journey)*3)
	for _, step := range v.journey {
		marker := styles.BadgeStyle(step.tone).Render(strconv.Itoa(step.number))
		lines = append(lines, marker+" "+styles.Text.Bold(true).Render(step.title))
		for _, l := range step.lines {
			lines = append(lines, "    "+styles.MutedText.Render(l))
		}
	}
	return renderCard(theme, "Client Journey Timeline", lines)
}

func renderFinancials(theme Theme, v clientView, width int) string {
	styles := theme.Styles()
	outline := styles.FaintText.Render("[") + styles.Text.Render(v.paymentMethod) + styles.FaintText.Render("]")

	summary := renderCard(theme, "Financial Summary", renderFields(theme, []labeledValue{
		{label: "Total LTV:", value: styles.SuccessText.Render(v.totalLTV)},
		{label: "Post-Trial Purchases:", value: styles.Text.Render(v.postTrialPurchases)},
		{label: "Payment Method:", value: outline},
	}))
	membership := renderCard(theme, "Membership Details", renderFields(theme, []labeledValue{
		{label: "Current Plan:", value: styles.Text.Render(v.currentPlan)},
		{label: "Class Number:", value: styles.Text.Render(v.classNo)},
		{label: "Period:", value: styles.Text.Render(v.period)},
	}))

	if width >= LayoutCardsWideWidth {
		return lipgloss.JoinHorizontal(lipgloss.Top, summary, "  ", membership)
	}
	return lipgloss.JoinVertical(lipgloss.Left, summary, membership)
}

func renderFields(theme Theme, fields []labeledValue) []string {
	styles := theme.Styles()
	labelWidth := 0
	for _, f := range fields {
		if w := lipgloss.Width(f.label); w > labelWidth {
			labelWidth = w
		}
	}
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, styles.MutedText.Render(padRight(f.label, labelWidth))+" "+f.value)
	}
	return lines
}

func renderCard(theme Theme, title string, lines []string) string {
	styles := theme.Styles()
	body := styles.AccentText.Bold(true).Render(title) + "\n" + strings.Join(lines, "\n")
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Border)).
		Padding(0, 1).
		Render(body)
}
