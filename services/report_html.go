package services

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/cbaldofetal-collab/nutrigest/models"
	"github.com/cbaldofetal-collab/nutrigest/utils"
)

// nutrientRow is one line of the report's nutrient table.
type nutrientRow struct {
	Label    string
	Current  string
	Target   string
	Unit     string
	Progress float64
	Low      bool
}

// mealChartRow is one bar of the per-meal calorie distribution chart.
type mealChartRow struct {
	Label    string
	Color    string
	Percent  float64
	Calories string
}

type weightRow struct {
	Date   string
	Weight string
	Gain   string // vs initial weight, signed
}

type reportView struct {
	Title           string
	UserName        string
	GestationalWeek int
	Trimester       string
	PeriodStart     string
	PeriodEnd       string
	GeneratedAt     string

	DueDate       string
	InitialWeight string
	CurrentWeight string

	AvgCalories string
	AvgProtein  string
	AvgWater    string

	MealChart      []mealChartRow
	MealChartTotal string

	Nutrients       []nutrientRow
	WeightEntries   []weightRow
	Patterns        []string
	Recommendations []string
}

var reportTitles = map[string]string{
	ReportWeekly:    "Weekly Nutrition Report",
	ReportMonthly:   "Monthly Nutrition Report",
	ReportTrimester: "Trimester Nutrition Report",
}

var reportTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #2d2d2d; margin: 32px; }
  h1 { color: #7c4d8f; font-size: 22px; margin-bottom: 4px; }
  h2 { color: #7c4d8f; font-size: 15px; border-bottom: 1px solid #e3d5ea; padding-bottom: 4px; margin-top: 28px; }
  .meta { color: #777; font-size: 12px; }
  .cards { display: flex; gap: 12px; margin-top: 16px; }
  .card { flex: 1; background: #f7f1fa; border-radius: 8px; padding: 12px; text-align: center; }
  .card .value { font-size: 20px; font-weight: bold; color: #7c4d8f; }
  .card .label { font-size: 11px; color: #777; text-transform: uppercase; }
  .info-grid { display: flex; flex-wrap: wrap; gap: 12px; margin-top: 8px; }
  .info-item { flex: 1 1 40%; background: #faf7fc; border-radius: 6px; padding: 8px 12px; }
  .info-label { font-size: 10px; color: #777; text-transform: uppercase; }
  .info-value { font-size: 14px; font-weight: bold; }
  table { width: 100%; border-collapse: collapse; margin-top: 8px; font-size: 12px; }
  th { text-align: left; color: #777; font-weight: normal; border-bottom: 1px solid #ddd; padding: 6px 4px; }
  td { padding: 6px 4px; border-bottom: 1px solid #f0f0f0; }
  .low { color: #c0392b; font-weight: bold; }
  .bar { background: #eee; border-radius: 4px; height: 8px; width: 120px; }
  .bar span { display: block; background: #7c4d8f; border-radius: 4px; height: 8px; }
  .bar-item { display: flex; align-items: center; gap: 8px; margin-bottom: 6px; font-size: 12px; }
  .bar-label { width: 80px; }
  .bar-wrapper { flex: 1; background: #eee; border-radius: 4px; height: 14px; }
  .bar-fill { height: 14px; border-radius: 4px; color: #fff; font-size: 10px; text-align: right; padding-right: 4px; box-sizing: border-box; }
  .bar-value { width: 80px; text-align: right; color: #777; }
  .chart-legend { font-size: 12px; color: #555; margin-top: 6px; }
  ul { font-size: 12px; padding-left: 18px; }
  li { margin-bottom: 4px; }
  .footer { margin-top: 36px; font-size: 10px; color: #aaa; }
</style>
</head>
<body>
  <h1>{{.Title}}</h1>
  <div class="meta">
    {{.UserName}}<br>
    {{.PeriodStart}} &ndash; {{.PeriodEnd}}
  </div>

  <h2>Pregnancy</h2>
  <div class="info-grid">
    {{if .DueDate}}<div class="info-item"><div class="info-label">Due date</div><div class="info-value">{{.DueDate}}</div></div>{{end}}
    <div class="info-item"><div class="info-label">Gestation</div><div class="info-value">Week {{.GestationalWeek}} ({{.Trimester}})</div></div>
    <div class="info-item"><div class="info-label">Initial weight</div><div class="info-value">{{.InitialWeight}} kg</div></div>
    <div class="info-item"><div class="info-label">Current weight</div><div class="info-value">{{.CurrentWeight}} kg</div></div>
  </div>

  <div class="cards">
    <div class="card"><div class="value">{{.AvgCalories}}</div><div class="label">avg kcal/day</div></div>
    <div class="card"><div class="value">{{.AvgProtein}} g</div><div class="label">avg protein/day</div></div>
    <div class="card"><div class="value">{{.AvgWater}} ml</div><div class="label">avg water/day</div></div>
  </div>

  {{if .MealChart}}
  <h2>Calories by meal</h2>
  {{range .MealChart}}
  <div class="bar-item">
    <div class="bar-label">{{.Label}}</div>
    <div class="bar-wrapper">
      <div class="bar-fill" style="width: {{printf "%.0f" .Percent}}%; background-color: {{.Color}};">{{printf "%.0f" .Percent}}%</div>
    </div>
    <div class="bar-value">{{.Calories}} kcal</div>
  </div>
  {{end}}
  <div class="chart-legend"><strong>Total: {{.MealChartTotal}} kcal</strong></div>
  {{end}}

  <h2>Daily averages vs. targets</h2>
  <table>
    <tr><th>Nutrient</th><th>Average</th><th>Target</th><th>Progress</th></tr>
    {{range .Nutrients}}
    <tr>
      <td{{if .Low}} class="low"{{end}}>{{.Label}}</td>
      <td>{{.Current}} {{.Unit}}</td>
      <td>{{.Target}} {{.Unit}}</td>
      <td><div class="bar"><span style="width: {{printf "%.0f" .Progress}}%"></span></div></td>
    </tr>
    {{end}}
  </table>

  {{if .WeightEntries}}
  <h2>Weight</h2>
  <table>
    <tr><th>Date</th><th>Weight (kg)</th><th>Gain (kg)</th></tr>
    {{range .WeightEntries}}
    <tr><td>{{.Date}}</td><td>{{.Weight}}</td><td>{{.Gain}}</td></tr>
    {{end}}
  </table>
  {{end}}

  {{if .Patterns}}
  <h2>Observed patterns</h2>
  <ul>{{range .Patterns}}<li>{{.}}</li>{{end}}</ul>
  {{end}}

  <h2>Recommendations</h2>
  <ul>{{range .Recommendations}}<li>{{.}}</li>{{end}}</ul>

  <div class="footer">Generated {{.GeneratedAt}}. This report does not replace medical advice.</div>
</body>
</html>
`))

// The weight table shows at most this many entries.
const maxWeightRows = 10

// Chart slots in display order, with a fixed color per meal type.
var mealChartSlots = []struct {
	Type, Label, Color string
}{
	{models.MealBreakfast, "Breakfast", "#81c784"},
	{models.MealLunch, "Lunch", "#64b5f6"},
	{models.MealDinner, "Dinner", "#f48fb1"},
	{models.MealSnack, "Snack", "#ffb74d"},
}

// RenderReportHTML turns a prepared snapshot into the self-contained HTML
// document. All derivation (averages, patterns, recommendations, chart
// shares) happens here; the snapshot itself stays raw.
func RenderReportHTML(data *ReportData) (string, error) {
	avg := CalculateAverageNutrition(data.DailyNutrition)
	targets := TargetForWeek(data.User.GestationalWeek)

	view := reportView{
		Title:           reportTitles[data.Type],
		UserName:        data.User.Name,
		GestationalWeek: data.User.GestationalWeek,
		Trimester:       utils.TrimesterLabel(data.User.GestationalWeek),
		PeriodStart:     data.StartDate.Format("02 Jan 2006"),
		PeriodEnd:       data.EndDate.Format("02 Jan 2006"),
		GeneratedAt:     time.Now().Format("02 Jan 2006 15:04"),
		InitialWeight:   fmt.Sprintf("%.1f", data.User.InitialWeight),
		CurrentWeight:   fmt.Sprintf("%.1f", data.User.CurrentWeight),
		AvgCalories:     fmt.Sprintf("%.0f", avg.Calories),
		AvgProtein:      fmt.Sprintf("%.0f", avg.Protein),
		AvgWater:        fmt.Sprintf("%.0f", avg.Water),
		Patterns:        AnalyzePatterns(data.DailyNutrition, data.Meals),
		Recommendations: GenerateRecommendations(avg, targets),
	}
	if view.Title == "" {
		view.Title = "Nutrition Report"
	}
	if !data.User.DueDate.IsZero() {
		view.DueDate = data.User.DueDate.Format("02 Jan 2006")
	}

	view.MealChart, view.MealChartTotal = mealCaloriesChart(data.Meals)
	view.Nutrients = nutrientTable(avg, targets)

	for i, w := range data.WeightEntries {
		if i == maxWeightRows {
			break
		}
		view.WeightEntries = append(view.WeightEntries, weightRow{
			Date:   w.Date.Format("02 Jan"),
			Weight: fmt.Sprintf("%.1f", w.Weight),
			Gain:   fmt.Sprintf("%+.1f", w.Weight-data.User.InitialWeight),
		})
	}

	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return buf.String(), nil
}

// mealCaloriesChart splits the period's calories across meal slots. Slots
// without calories are omitted; an all-zero meal list yields no chart.
func mealCaloriesChart(meals []models.MealEntry) ([]mealChartRow, string) {
	byType := map[string]float64{}
	var total float64
	for _, m := range meals {
		cal := m.Calories * m.Quantity
		byType[m.MealType] += cal
		total += cal
	}
	if total == 0 {
		return nil, ""
	}

	var rows []mealChartRow
	for _, slot := range mealChartSlots {
		cal := byType[slot.Type]
		if cal == 0 {
			continue
		}
		rows = append(rows, mealChartRow{
			Label:    slot.Label,
			Color:    slot.Color,
			Percent:  cal / total * 100,
			Calories: fmt.Sprintf("%.0f", cal),
		})
	}
	return rows, fmt.Sprintf("%.0f", total)
}

// The table rows shown in every report, in display order.
var reportNutrients = []struct {
	Key, Label, Unit string
}{
	{"calories", "Calories", "kcal"},
	{"protein", "Protein", "g"},
	{"carbs", "Carbohydrates", "g"},
	{"fat", "Fat", "g"},
	{"fiber", "Fiber", "g"},
	{"iron", "Iron", "mg"},
	{"folicAcid", "Folic Acid", "mcg"},
	{"calcium", "Calcium", "mg"},
	{"omega3", "Omega-3", "mg"},
	{"vitaminD", "Vitamin D", "mcg"},
	{"vitaminC", "Vitamin C", "mg"},
}

func nutrientTable(avg models.DailyNutrition, targets models.NutritionTarget) []nutrientRow {
	rows := make([]nutrientRow, 0, len(reportNutrients))
	for _, n := range reportNutrients {
		current := avg.Nutrients.Value(n.Key)
		target := targets.Value(n.Key)
		rows = append(rows, nutrientRow{
			Label:    n.Label,
			Current:  fmt.Sprintf("%.1f", current),
			Target:   fmt.Sprintf("%.0f", target),
			Unit:     n.Unit,
			Progress: CalculateProgress(current, target),
			Low:      IsNutrientLow(current, target, 0),
		})
	}
	return rows
}
