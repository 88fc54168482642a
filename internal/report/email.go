package report

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/beamx-labs/validator-engine/internal/models"
)

// EmailRenderer produces the HTML bodies and subjects for result emails.
type EmailRenderer struct {
	baseURL string
	welcome *template.Template
	report  *template.Template
}

// NewEmailRenderer creates a renderer. Result links in the bodies point
// at baseURL.
func NewEmailRenderer(baseURL string) *EmailRenderer {
	return &EmailRenderer{
		baseURL: baseURL,
		welcome: template.Must(template.New("welcome").Parse(welcomeTemplate)),
		report:  template.Must(template.New("report").Parse(reportTemplate)),
	}
}

type emailData struct {
	Name      string
	Score     models.ScoreResult
	ResultURL string
	Year      int
}

func (r *EmailRenderer) data(name string, result *models.AssessmentResult) emailData {
	if name == "" {
		name = "there"
	}
	return emailData{
		Name:      name,
		Score:     result.ScoreResult,
		ResultURL: fmt.Sprintf("%s/results/%s", r.baseURL, result.ID),
		Year:      time.Now().Year(),
	}
}

// WelcomeEmail renders the email sent right after email capture.
func (r *EmailRenderer) WelcomeEmail(name string, result *models.AssessmentResult) (subject, body string, err error) {
	var buf bytes.Buffer
	if err := r.welcome.Execute(&buf, r.data(name, result)); err != nil {
		return "", "", fmt.Errorf("failed to render welcome email: %w", err)
	}
	subject = "Your Business Validation Results: " + result.ScoreResult.Title
	return subject, buf.String(), nil
}

// ReportEmail renders the email that carries the detailed PDF report.
func (r *EmailRenderer) ReportEmail(name string, result *models.AssessmentResult) (subject, body string, err error) {
	var buf bytes.Buffer
	if err := r.report.Execute(&buf, r.data(name, result)); err != nil {
		return "", "", fmt.Errorf("failed to render report email: %w", err)
	}
	return "Your Detailed Business Validation Report", buf.String(), nil
}

const welcomeTemplate = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <style>
      body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
      .container { max-width: 600px; margin: 0 auto; padding: 20px; }
      .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
      .score-badge { font-size: 48px; font-weight: bold; margin: 20px 0; }
      .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; }
      .action-items { background: white; padding: 20px; border-left: 4px solid #667eea; margin: 20px 0; }
      .cta-button { display: inline-block; background: #667eea; color: white; padding: 15px 30px; text-decoration: none; border-radius: 5px; margin: 20px 0; }
      .footer { text-align: center; margin-top: 30px; color: #666; font-size: 14px; }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header">
        <h1>BeamX Business Validator</h1>
        <div class="score-badge">{{.Score.Score}}%</div>
        <h2>{{.Score.Title}}</h2>
      </div>
      <div class="content">
        <p>Hi {{.Name}},</p>
        <p>{{.Score.Summary}}</p>

        <div class="action-items">
          <h3>Your Next Steps:</h3>
          <ul>
            {{range .Score.ActionItems}}<li>{{.}}</li>{{end}}
          </ul>
        </div>

        <p><strong>Timeframe:</strong> {{.Score.Timeframe}}</p>

        <p>We're preparing your detailed personalized report with AI-powered recommendations tailored specifically to your business idea.</p>

        <a href="{{.ResultURL}}" class="cta-button">
          View Your Full Results
        </a>

        <p>Ready to accelerate your journey? Book a free 30-minute consultation with our team:</p>
        <a href="https://calendly.com/beamx-solutions" class="cta-button">
          Book Free Consultation
        </a>
      </div>
      <div class="footer">
        <p>&copy; {{.Year}} BeamX Solutions. All rights reserved.</p>
        <p>You're receiving this because you completed the Business Idea Validator.</p>
      </div>
    </div>
  </body>
</html>
`

const reportTemplate = `<h1>Your Detailed Report is Ready!</h1>
<p>Hi {{.Name}},</p>
<p>Your comprehensive business validation report with AI-powered recommendations is ready for download.</p>
<a href="{{.ResultURL}}">Download Your Report</a>
`
