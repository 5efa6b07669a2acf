// Package types provides type definitions for structured data used throughout the resume-generator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// FreeText is human-authored prose. It must be LaTeX-escaped exactly once
// before it is written into a document.
type FreeText string

// Trusted is a structural value (colour token, date literal, URL, file path)
// that is inserted into a document verbatim.
type Trusted string

// Profile is the complete input record for one resume
type Profile struct {
	Personal   Personal  `json:"personal"`
	About      FreeText  `json:"about"`
	Skills     Skills    `json:"skills"`
	Education  Education `json:"education"`
	Experience []Company `json:"experience"`
}

// Personal holds identity and contact details
type Personal struct {
	FirstName  FreeText `json:"firstName"`
	LastName   FreeText `json:"lastName"`
	Title      FreeText `json:"title"`
	Phone      FreeText `json:"phone"`
	Email      Trusted  `json:"email"`
	GitHub     Trusted  `json:"github"`
	Location   FreeText `json:"location"`
	WebsiteURL Trusted  `json:"websiteUrl,omitempty"`
}

// HasWebsite reports whether a website URL was supplied
func (p Personal) HasWebsite() bool {
	return p.WebsiteURL != ""
}

// Skills holds the two ordered skill lists shown in the sidebar
type Skills struct {
	Technical  []FreeText `json:"technical"`
	Leadership []FreeText `json:"leadership"`
}

// Education is a single flat education entry.
// All fields are rendered verbatim.
type Education struct {
	School         Trusted `json:"school"`
	Degree         Trusted `json:"degree"`
	Minor          Trusted `json:"minor"`
	GraduationDate Trusted `json:"graduationDate"`
}

// Company groups the positions held at one employer
type Company struct {
	Company   FreeText   `json:"company"`
	Color     Trusted    `json:"color"`
	Positions []Position `json:"positions"`
}

// Position is one role held at a company
type Position struct {
	Title        FreeText   `json:"title"`
	DateRange    Trusted    `json:"dateRange"`
	Achievements []FreeText `json:"achievements"`
}

// PositionCount returns the total number of positions across all companies
func (p *Profile) PositionCount() int {
	total := 0
	for _, c := range p.Experience {
		total += len(c.Positions)
	}
	return total
}
