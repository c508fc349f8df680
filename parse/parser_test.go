package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/resumatch/core"
)

const sampleResume = `John Smith
john.smith@mail.com
+1-555-0100
Location: Austin, TX
5 years experience
CTC: 12 LPA
Notice Period: 30 days
Skills: Python, FastAPI`

const indianResume = `Hritik Kumar Behera
Software Tester
Email: hritik.behera@email.com
Phone: +91-9876543210
Location: Bhubaneswar, Odisha

Professional Summary:
Experienced Software Tester with 2+ years of experience in manual and automation testing.

Current CTC: 5 LPA
Notice Period: 30 days
Total Experience: 2 years

Skills:
- Python
- Selenium WebDriver
- JavaScript
- Test Automation
- Manual Testing`

func TestExtractFieldsSample(t *testing.T) {
	fields := ExtractFields(sampleResume)

	assert.Equal(t, "John Smith", fields.FullName)
	assert.Equal(t, "John", fields.FirstName)
	assert.Equal(t, "Smith", fields.LastName)
	assert.Equal(t, "john.smith@mail.com", fields.Email)
	assert.Equal(t, "+1-555-0100", fields.Phone)
	assert.Equal(t, "Austin, TX", fields.Location)
	assert.Equal(t, "12 LPA", fields.CurrentCTC)
	assert.Equal(t, "30 days", fields.NoticePeriod)
	assert.Equal(t, "5 years", fields.TotalExperience)
	assert.Equal(t, []string{"Python", "FastAPI"}, fields.Skills)
	assert.Equal(t, core.CategoryBackend, fields.Category)
}

func TestExtractFieldsIndianResume(t *testing.T) {
	fields := ExtractFields(indianResume)

	assert.Equal(t, "Hritik Kumar Behera", fields.FullName)
	assert.Equal(t, "Hritik", fields.FirstName)
	assert.Equal(t, "Kumar Behera", fields.LastName)
	assert.Equal(t, "hritik.behera@email.com", fields.Email)
	assert.Equal(t, "+91-9876543210", fields.Phone)
	assert.Equal(t, "Bhubaneswar, Odisha", fields.Location)
	assert.Equal(t, "5 LPA", fields.CurrentCTC)
	assert.Equal(t, "30 days", fields.NoticePeriod)
	assert.Contains(t, fields.Skills, "Python")
	assert.Contains(t, fields.Skills, "Selenium")
	assert.Contains(t, fields.Skills, "Manual Testing")
	assert.Equal(t, core.CategoryQA, fields.Category)
}

func TestExtractFieldsEmptyText(t *testing.T) {
	fields := ExtractFields("")

	assert.Empty(t, fields.FullName)
	assert.Empty(t, fields.FirstName)
	assert.Empty(t, fields.LastName)
	assert.Empty(t, fields.Email)
	assert.Empty(t, fields.Phone)
	assert.Empty(t, fields.Location)
	assert.Empty(t, fields.CurrentCTC)
	assert.Empty(t, fields.NoticePeriod)
	assert.Empty(t, fields.TotalExperience)
	assert.Empty(t, fields.Skills)
	assert.Equal(t, core.CategoryGeneral, fields.Category)
}

func TestExtractFieldsDeterministic(t *testing.T) {
	first := ExtractFields(indianResume)
	second := ExtractFields(indianResume)
	assert.Equal(t, first, second)
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"first line", "John Smith\nBackend Developer", "John Smith"},
		{"single token", "Madonna\nsinger@mail.com", "Madonna"},
		{"skips heading", "Resume\nJane Doe\njane@mail.com", "Jane Doe"},
		{"skips email line", "jane@mail.com\nJane Doe", "Jane Doe"},
		{"skips job title", "Senior Software Engineer\nJane Doe", "Jane Doe"},
		{"no name", "worked at a company for a while", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractName(tt.text))
		})
	}
}

func TestExtractEmailFirstMatchWins(t *testing.T) {
	text := "Contact: a@one.com or b@two.org"
	assert.Equal(t, "a@one.com", ExtractEmail(text))
	assert.Empty(t, ExtractEmail("no email here"))
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"call +1-555-0100 today", "+1-555-0100"},
		{"Phone: +91-9876543210", "+91-9876543210"},
		{"tel (123) 456-7890", "(123) 456-7890"},
		{"tel 123-456-7890", "123-456-7890"},
		{"raw 9876543210 digits", "9876543210"},
		{"no phone", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractPhone(tt.text), "text %q", tt.text)
	}
}

func TestExtractLocation(t *testing.T) {
	assert.Equal(t, "Bhubaneswar, Odisha", ExtractLocation("Location: Bhubaneswar, Odisha"))
	assert.Equal(t, "Pune", ExtractLocation("Based in Pune"))
	assert.Equal(t, "Hyderabad", ExtractLocation("worked across teams in Hyderabad on infra"))
	assert.Empty(t, ExtractLocation("fully remote, no city mentioned"))
}

func TestExtractCTC(t *testing.T) {
	assert.Equal(t, "5 LPA", ExtractCTC("Current CTC: 5 LPA"))
	assert.Equal(t, "12 LPA", ExtractCTC("CTC: 12 LPA"))
	assert.Equal(t, "8.5 lakhs", ExtractCTC("drawing 8.5 lakhs per annum"))
	assert.Empty(t, ExtractCTC("compensation negotiable"))
}

func TestExtractNoticePeriod(t *testing.T) {
	assert.Equal(t, "30 days", ExtractNoticePeriod("Notice Period: 30 days"))
	assert.Equal(t, "2 months", ExtractNoticePeriod("serving notice: 2 months"))
	assert.Equal(t, "Immediate", ExtractNoticePeriod("immediately available to join"))
	assert.Empty(t, ExtractNoticePeriod("notice period not stated"))
}

func TestExtractExperience(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"keyworded", "5 years experience building services", "5 years"},
		{"plus suffix", "2+ years of experience in testing", "2+ years"},
		{
			"keyword beats larger bare number",
			"company founded 20 years ago. Total Experience: 4 years",
			"4 years",
		},
		{
			"largest keyworded wins",
			"2 years experience in QA and 6 years experience in backend",
			"6 years",
		},
		{"implausible ignored", "over 100 years of combined experience", ""},
		{"absent", "fresh graduate", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractExperience(tt.text))
		})
	}
}

func TestExtractSkills(t *testing.T) {
	text := "Python and Django on AWS; also python scripting and some React."
	skills := ExtractSkills(text, DefaultSkills)

	require.Equal(t, []string{"Python", "React", "Django", "AWS"}, skills)
}

func TestExtractSkillsWholeWordOnly(t *testing.T) {
	skills := ExtractSkills("wrote Golang tooling for Javascript bundlers", DefaultSkills)
	assert.NotContains(t, skills, "Go")
	assert.NotContains(t, skills, "Java")
	assert.Contains(t, skills, "JavaScript")
}

func TestExtractSkillsPunctuatedNames(t *testing.T) {
	skills := ExtractSkills("shipped C++ services and Node.js tooling", DefaultSkills)
	assert.Contains(t, skills, "C++")
	assert.Contains(t, skills, "Node.js")
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		skills []string
		want   core.JobCategory
	}{
		{
			"backend",
			"backend services with python and a database layer",
			[]string{"Python"},
			core.CategoryBackend,
		},
		{
			"devops",
			"devops pipelines, docker, kubernetes and terraform",
			[]string{"Docker", "Kubernetes", "Terraform"},
			core.CategoryDevOps,
		},
		{
			"mobile",
			"android and ios apps in flutter",
			[]string{"Flutter", "Android", "iOS"},
			core.CategoryMobile,
		},
		{"catch-all", "worked on miscellaneous things", nil, core.CategoryGeneral},
		{"empty", "", nil, core.CategoryGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.text, tt.skills))
		})
	}
}

func TestCategorizeTieBreaksByPriority(t *testing.T) {
	// One keyword hit each for Backend and Frontend; Backend has priority.
	got := Categorize("built the server and the ui", nil)
	assert.Equal(t, core.CategoryBackend, got)
}
