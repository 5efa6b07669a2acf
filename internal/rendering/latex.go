package rendering

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jonathan/resume-generator/internal/types"
)

const (
	// DefaultQRCodeFile is the image path the document embeds when none is given
	DefaultQRCodeFile = "qr_code.png"
	// QRCodeCaption is printed under the embedded QR code
	QRCodeCaption = "Scan for portfolio"

	// degreePrefix is removed from the degree before it is shown as the major
	degreePrefix = "BS "

	templateName = "resume.tex.tmpl"

	// qrCodeFileReserved ends or comments out the \includegraphics argument
	qrCodeFileReserved = "{}%#\r\n"
)

//go:embed templates/resume.tex.tmpl
var templateFS embed.FS

// RenderOptions controls document assembly
type RenderOptions struct {
	// QRCodeFile is the image path passed to \includegraphics.
	// Empty means DefaultQRCodeFile.
	QRCodeFile types.Trusted
}

// TemplateData is the data passed to the resume template. Every field is
// either escaped Markup or a Trusted structural value.
type TemplateData struct {
	FirstName        Markup
	LastName         Markup
	Title            Markup
	Phone            Markup
	Email            types.Trusted
	Handle           types.Trusted
	Location         Markup
	About            Markup
	TechnicalSkills  []Markup
	LeadershipSkills []Markup
	School           types.Trusted
	GraduationDate   types.Trusted
	Major            types.Trusted
	Minor            types.Trusted
	QRCodeFile       types.Trusted
	QRCodeCaption    types.Trusted
	Companies        []CompanySection
}

// CompanySection is one company block in the experience column
type CompanySection struct {
	Name      Markup
	Color     types.Trusted
	Positions []PositionSection
}

// PositionSection is one position block within a company.
// Last suppresses the spacing directive after the final position.
type PositionSection struct {
	Title        Markup
	DateRange    types.Trusted
	Achievements []Markup
	Last         bool
}

// RenderLaTeX assembles the complete LaTeX document for profile
func RenderLaTeX(profile *types.Profile, opts RenderOptions) (string, error) {
	tmpl, err := parseTemplate()
	if err != nil {
		return "", err
	}

	data, err := buildTemplateData(profile, opts)
	if err != nil {
		return "", err
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}

	return result.String(), nil
}

// parseTemplate parses the embedded resume template. Actions use << >> so
// LaTeX brace groups never need quoting.
func parseTemplate() (*template.Template, error) {
	content, err := templateFS.ReadFile("templates/" + templateName)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to read embedded template",
			Cause:   err,
		}
	}

	tmpl, err := template.New(templateName).
		Delims("<<", ">>").
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}

	return tmpl, nil
}

// buildTemplateData routes every free-text field through EscapeLaTeX once
// and copies structural fields verbatim.
func buildTemplateData(profile *types.Profile, opts RenderOptions) (*TemplateData, error) {
	if profile == nil {
		return nil, &RenderError{Message: "profile is nil"}
	}

	qrFile := opts.QRCodeFile
	if qrFile == "" {
		qrFile = DefaultQRCodeFile
	}
	if err := CheckQRCodeFile(qrFile); err != nil {
		return nil, err
	}

	personal := profile.Personal
	edu := profile.Education

	return &TemplateData{
		FirstName:        EscapeLaTeX(upper(personal.FirstName)),
		LastName:         EscapeLaTeX(upper(personal.LastName)),
		Title:            EscapeLaTeX(personal.Title),
		Phone:            EscapeLaTeX(personal.Phone),
		Email:            personal.Email,
		Handle:           personal.GitHub,
		Location:         EscapeLaTeX(personal.Location),
		About:            EscapeLaTeX(profile.About),
		TechnicalSkills:  escapeAll(profile.Skills.Technical),
		LeadershipSkills: escapeAll(profile.Skills.Leadership),
		School:           edu.School,
		GraduationDate:   edu.GraduationDate,
		Major:            Major(edu.Degree),
		Minor:            edu.Minor,
		QRCodeFile:       qrFile,
		QRCodeCaption:    QRCodeCaption,
		Companies:        buildCompanies(profile.Experience),
	}, nil
}

func buildCompanies(experience []types.Company) []CompanySection {
	companies := make([]CompanySection, 0, len(experience))
	for _, c := range experience {
		positions := make([]PositionSection, len(c.Positions))
		for i, p := range c.Positions {
			positions[i] = PositionSection{
				Title:        EscapeLaTeX(p.Title),
				DateRange:    p.DateRange,
				Achievements: escapeAll(p.Achievements),
				Last:         i == len(c.Positions)-1,
			}
		}
		companies = append(companies, CompanySection{
			Name:      EscapeLaTeX(c.Company),
			Color:     c.Color,
			Positions: positions,
		})
	}
	return companies
}

// CheckQRCodeFile rejects image paths that cannot be embedded verbatim
func CheckQRCodeFile(path types.Trusted) error {
	if i := strings.IndexAny(string(path), qrCodeFileReserved); i >= 0 {
		return &RenderError{
			Field:   "QRCodeFile",
			Message: fmt.Sprintf("path %q contains %q, which LaTeX would not read as part of the file name", path, path[i]),
		}
	}
	return nil
}

// Major returns the degree with every "BS " removed
func Major(degree types.Trusted) types.Trusted {
	return types.Trusted(strings.ReplaceAll(string(degree), degreePrefix, ""))
}

// upper applies full Unicode case mapping, so "ß" becomes "SS".
// It runs before escaping so control words keep their case.
func upper(text types.FreeText) types.FreeText {
	return types.FreeText(cases.Upper(language.Und).String(string(text)))
}
