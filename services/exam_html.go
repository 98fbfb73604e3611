package services

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/cbaldofetal-collab/nutrigest/models"
)

var examTypeLabels = map[string]string{
	models.ExamBlood:      "Blood test",
	models.ExamUrine:      "Urine test",
	models.ExamUltrasound: "Ultrasound",
	models.ExamOther:      "Other",
}

var examTmpl = template.Must(template.New("exam").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Name}}</title>
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #2d2d2d; margin: 32px; }
  h1 { color: #7c4d8f; font-size: 20px; margin-bottom: 4px; }
  .meta { color: #777; font-size: 12px; margin-bottom: 20px; }
  dl { font-size: 13px; }
  dt { color: #777; float: left; clear: left; width: 90px; }
  dd { margin: 0 0 8px 100px; }
  .section { margin-top: 20px; border-top: 1px solid #e3d5ea; padding-top: 10px; font-size: 13px; white-space: pre-wrap; }
  .footer { margin-top: 36px; font-size: 10px; color: #aaa; }
</style>
</head>
<body>
  <h1>{{.Name}}</h1>
  <div class="meta">{{.TypeLabel}} &middot; {{.Date}} &middot; {{.Patient}}</div>

  <dl>
    {{if .Doctor}}<dt>Doctor</dt><dd>{{.Doctor}}</dd>{{end}}
    {{if .Clinic}}<dt>Clinic</dt><dd>{{.Clinic}}</dd>{{end}}
  </dl>

  {{if .Results}}<div class="section"><strong>Results</strong><br>{{.Results}}</div>{{end}}
  {{if .Notes}}<div class="section"><strong>Notes</strong><br>{{.Notes}}</div>{{end}}

  <div class="footer">Generated {{.GeneratedAt}}.</div>
</body>
</html>
`))

// RenderExamHTML produces a printable record of one exam. Attachments are
// not inlined; the document carries metadata, results and notes only.
func RenderExamHTML(exam *models.ExamEntry, patientName string) (string, error) {
	label := examTypeLabels[exam.Type]
	if label == "" {
		label = exam.Type
	}

	var buf bytes.Buffer
	err := examTmpl.Execute(&buf, map[string]string{
		"Name":        exam.Name,
		"TypeLabel":   label,
		"Date":        exam.Date.Format("02 Jan 2006"),
		"Patient":     patientName,
		"Doctor":      exam.Doctor,
		"Clinic":      exam.Clinic,
		"Results":     exam.Results,
		"Notes":       exam.Notes,
		"GeneratedAt": time.Now().Format("02 Jan 2006 15:04"),
	})
	if err != nil {
		return "", fmt.Errorf("render exam: %w", err)
	}
	return buf.String(), nil
}
