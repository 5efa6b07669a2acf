package profile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-generator/internal/schemas"
	"github.com/jonathan/resume-generator/internal/types"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"data.json", FormatJSON},
		{"data.JSON", FormatJSON},
		{"profile.yaml", FormatYAML},
		{"profile.yml", FormatYAML},
		{"profile.toml", FormatTOML},
		{"profile", FormatJSON},
		{"profile.txt", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFromPath(tt.path))
		})
	}
}

func TestLoad_JSON(t *testing.T) {
	p, err := Load(filepath.Join("testdata", "profile.json"))
	require.NoError(t, err)

	assert.Equal(t, types.FreeText("Jordan"), p.Personal.FirstName)
	assert.Equal(t, types.Trusted("https://jrivera.dev"), p.Personal.WebsiteURL)
	assert.Equal(t, []types.FreeText{"Go & Rust", "Distributed Systems", "C# / .NET", "snake_case APIs"}, p.Skills.Technical)
	require.Len(t, p.Experience, 2)
	assert.Equal(t, types.FreeText("Acme & Sons"), p.Experience[0].Company)
	require.Len(t, p.Experience[0].Positions, 2)
	assert.Equal(t, types.FreeText("Senior Engineer"), p.Experience[0].Positions[1].Title)
	assert.Equal(t, 3, p.PositionCount())
}

func TestLoad_YAML(t *testing.T) {
	p, err := Load(filepath.Join("testdata", "profile.yaml"))
	require.NoError(t, err)

	assert.Equal(t, types.FreeText("Rivera"), p.Personal.LastName)
	assert.False(t, p.Personal.HasWebsite())
	assert.Equal(t, types.Trusted("June 2014"), p.Education.GraduationDate)
	require.Len(t, p.Experience, 1)
	assert.Equal(t, types.Trusted("2020 -- Present"), p.Experience[0].Positions[0].DateRange)
	assert.Equal(t,
		[]types.FreeText{"Scaled ingest to $2M/day in revenue at 99.99% availability"},
		p.Experience[0].Positions[0].Achievements)
}

func TestLoad_TOML(t *testing.T) {
	p, err := Load(filepath.Join("testdata", "profile.toml"))
	require.NoError(t, err)

	assert.Equal(t, types.FreeText("Staff Software Engineer"), p.Personal.Title)
	assert.True(t, p.Personal.HasWebsite())
	require.Len(t, p.Experience, 1)
	require.Len(t, p.Experience[0].Positions, 2)
	assert.Equal(t, types.FreeText("Staff Engineer"), p.Experience[0].Positions[0].Title)
	assert.Equal(t, types.FreeText("Senior Engineer"), p.Experience[0].Positions[1].Title)
}

func TestLoad_FormatsAgree(t *testing.T) {
	fromYAML, err := Load(filepath.Join("testdata", "profile.yaml"))
	require.NoError(t, err)
	fromTOML, err := Load(filepath.Join("testdata", "profile.toml"))
	require.NoError(t, err)

	// The TOML fixture additionally carries a website URL.
	fromTOML.Personal.WebsiteURL = ""
	assert.Equal(t, fromYAML, fromTOML)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/data.json")
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "failed to read file")
	assert.True(t, os.IsNotExist(loadErr.Cause))
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{ invalid json }`), 0644))

	_, err := Load(path)
	require.Error(t, err)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "failed to parse JSON")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte("personal: [unclosed"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.toml")
	require.NoError(t, os.WriteFile(path, []byte("personal = = 1"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse TOML")
}

func TestDecode_MissingRequiredField(t *testing.T) {
	content := []byte(`{
		"personal": {"firstName": "A", "lastName": "B", "title": "C", "phone": "D", "email": "E", "github": "F"},
		"about": "x",
		"skills": {"technical": [], "leadership": []},
		"education": {"school": "S", "degree": "D", "minor": "M", "graduationDate": "G"},
		"experience": []
	}`)

	_, err := Decode(content, FormatJSON)
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "location")
}

func TestDecode_MissingExperience(t *testing.T) {
	content := []byte(`{
		"personal": {"firstName": "A", "lastName": "B", "title": "C", "phone": "D", "email": "E", "github": "F", "location": "L"},
		"about": "x",
		"skills": {"technical": [], "leadership": []},
		"education": {"school": "S", "degree": "D", "minor": "M", "graduationDate": "G"}
	}`)

	_, err := Decode(content, FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "experience")
}

func TestDecode_InvalidUTF8(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("testdata", "profile.json"))
	require.NoError(t, err)
	corrupt := bytes.Replace(content, []byte("Jordan"), []byte("Jord\xffn"), 1)
	require.NotEqual(t, content, corrupt)

	for _, format := range []Format{FormatJSON, FormatYAML, FormatTOML} {
		p, err := Decode(corrupt, format)
		assert.Nil(t, p)

		var loadErr *LoadError
		require.ErrorAs(t, err, &loadErr, string(format))
		assert.Contains(t, err.Error(), "not valid UTF-8")
	}
}

func TestLoad_InvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{\"about\": \"caf\xe9\"}"), 0644))

	_, err := Load(path)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "JSON content is not valid UTF-8")
}

func TestDecode_UnsupportedFormat(t *testing.T) {
	_, err := Decode([]byte(`{}`), Format("xml"))
	require.Error(t, err)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestDecode_EmptyStringsAccepted(t *testing.T) {
	content := []byte(`{
		"personal": {"firstName": "", "lastName": "", "title": "", "phone": "", "email": "", "github": "", "location": ""},
		"about": "",
		"skills": {"technical": [], "leadership": []},
		"education": {"school": "", "degree": "", "minor": "", "graduationDate": ""},
		"experience": []
	}`)

	p, err := Decode(content, FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, p.Experience)
	assert.False(t, p.Personal.HasWebsite())
}
