package report

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
)

// Exporter writes a rendered report to a document.
type Exporter interface {
	// Export writes the report and returns the path of the written file.
	Export(m *Model) (string, error)
}

// HTMLExporter writes a self-contained styled HTML document into Dir.
type HTMLExporter struct {
	// Dir is the output directory. Defaults to the working directory.
	Dir string
}

// Export writes <Name>_<Topic>_Report.html and returns its path.
func (e *HTMLExporter) Export(m *Model) (string, error) {
	dir := e.Dir
	if dir == "" {
		dir = "."
	}

	name := fmt.Sprintf("%s_%s_Report.html", sanitize(m.StudentName), sanitize(m.TopicName))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	if err := reportTemplate.Execute(f, m); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return path, nil
}

// sanitize strips characters that break filenames; spaces survive, as
// in the original export naming.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		}
		return r
	}, strings.TrimSpace(s))
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"verdict": func(correct bool) string {
		if correct {
			return "correct"
		}
		return "incorrect"
	},
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.StudentName}} - Test Report</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background: #f0f0f0; padding: 20px; }
.report-container { max-width: 1000px; margin: 0 auto; background: white; border-radius: 15px; overflow: hidden; box-shadow: 0 10px 40px rgba(0,0,0,0.1); }
.report-hero { background: linear-gradient(135deg, #0f3557 0%, #1a4d7a 50%, #3b7fc4 100%); color: white; padding: 60px 40px; text-align: center; }
.report-hero h1 { font-size: 2.5rem; margin-bottom: 10px; }
.grade-badge { display: inline-block; width: 120px; height: 120px; background: white; color: #1a4d7a; border-radius: 50%; font-size: 3rem; font-weight: 700; margin: 20px auto; box-shadow: 0 10px 30px rgba(26,77,122,0.3); line-height: 120px; }
.stats-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(180px, 1fr)); gap: 20px; padding: 40px; }
.stat-card { background: #f8fafc; border-radius: 10px; padding: 20px; text-align: center; }
.stat-card .value { font-size: 2rem; font-weight: 700; color: #1a4d7a; }
.stat-card .label { color: #64748b; margin-top: 5px; }
.section { padding: 0 40px 30px; }
.section h2 { color: #1a4d7a; margin-bottom: 15px; }
.section ul { padding-left: 25px; color: #334155; }
.section li { margin-bottom: 6px; }
.section p { color: #334155; line-height: 1.6; }
.answer { border: 1px solid #e2e8f0; border-radius: 10px; padding: 16px; margin-bottom: 14px; }
.answer.correct { border-left: 4px solid #16a34a; }
.answer.incorrect { border-left: 4px solid #dc2626; }
.answer .meta { color: #64748b; font-size: 0.9rem; margin-bottom: 8px; }
.answer .feedback { color: #334155; margin-top: 8px; }
.mastery { display: flex; justify-content: space-between; padding: 6px 0; border-bottom: 1px solid #f1f5f9; color: #334155; }
footer { text-align: center; color: #94a3b8; padding: 25px; }
</style>
</head>
<body>
<div class="report-container">
  <div class="report-hero">
    <h1>Test Report</h1>
    <p>{{.StudentName}} ({{.StudentPRN}}) &mdash; {{.TopicName}}</p>
    <div class="grade-badge">{{.Insights.Grade}}</div>
  </div>

  <div class="stats-grid">
    <div class="stat-card"><div class="value">{{.Score}}/{{.MaxScore}}</div><div class="label">Score</div></div>
    <div class="stat-card"><div class="value">{{.Percentage}}%</div><div class="label">Percentage</div></div>
    <div class="stat-card"><div class="value">{{.CorrectCount}}/{{.QuestionCount}}</div><div class="label">Correct Answers</div></div>
    <div class="stat-card"><div class="value">{{.AvgTimeSecs}}s</div><div class="label">Avg Time / Question</div></div>
  </div>

  <div class="section">
    <h2>Strengths</h2>
    <ul>{{range .Insights.Strengths}}<li>{{.}}</li>{{end}}</ul>
  </div>

  <div class="section">
    <h2>Areas to Improve</h2>
    <ul>{{range .Insights.Weaknesses}}<li>{{.}}</li>{{end}}</ul>
  </div>

  <div class="section">
    <h2>Recommendations</h2>
    <ul>{{range .Insights.Recommendations}}<li>{{.}}</li>{{end}}</ul>
  </div>

  <div class="section">
    <h2>Study Plan</h2>
    <p>{{.Insights.StudyPlan}}</p>
  </div>

  {{if .Insights.TopicMastery}}
  <div class="section">
    <h2>Topic Mastery</h2>
    {{range $concept, $score := .Insights.TopicMastery}}<div class="mastery"><span>{{$concept}}</span><span>{{$score}}%</span></div>{{end}}
  </div>
  {{end}}

  <div class="section">
    <h2>Question Review</h2>
    {{range .Answers}}
    <div class="answer {{verdict .Correct}}">
      <div class="meta">Q{{.QuestionNumber}} &middot; {{.Kind}} &middot; {{.PointsAwarded}}/{{.MaxPoints}} points &middot; {{.TimeSpentSecs}}s{{if .HintUsed}} &middot; hint used{{end}}</div>
      <div>{{.QuestionText}}</div>
      <div class="feedback"><strong>Your answer:</strong> {{.StudentAnswer}}</div>
      {{if not .Correct}}<div class="feedback"><strong>Correct answer:</strong> {{.ReferenceAnswer}}</div>{{end}}
      <div class="feedback">{{.Feedback}}</div>
    </div>
    {{end}}
  </div>

  <div class="section">
    <h2>&nbsp;</h2>
    <p><em>{{.Insights.Encouragement}}</em></p>
  </div>

  <footer>Generated by Proctor</footer>
</div>
</body>
</html>
`))
