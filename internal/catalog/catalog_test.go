package catalog

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchfind/internal/types"
)

func TestDefault_IsSingleton(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestAllSkills_SortedAndUnique(t *testing.T) {
	skills := Default().AllSkills()
	require.NotEmpty(t, skills)
	assert.True(t, sort.StringsAreSorted(skills))

	seen := make(map[string]bool)
	for _, s := range skills {
		assert.False(t, seen[s], "duplicate skill %q", s)
		seen[s] = true
	}
	assert.True(t, seen["Python"])
	assert.True(t, seen["Critical Thinking"])
	assert.False(t, seen["Budgeting"], "professional skills are not part of AllSkills")
}

func TestAllSkills_ReturnsCopy(t *testing.T) {
	skills := Default().AllSkills()
	skills[0] = "mutated"
	assert.NotEqual(t, "mutated", Default().AllSkills()[0])
}

func TestSkillsByCategory(t *testing.T) {
	c := Default()

	technical := c.SkillsByCategory(KindTechnical)
	assert.Len(t, technical, 7)
	assert.Contains(t, technical["databases"], "PostgreSQL")

	soft := c.SkillsByCategory("SOFT")
	assert.Len(t, soft, 6)
	assert.Contains(t, soft["leadership"], "Coaching")

	assert.Empty(t, c.SkillsByCategory("culinary"))
}

func TestCategoryOf(t *testing.T) {
	c := Default()

	ref, ok := c.CategoryOf("javascript")
	require.True(t, ok)
	assert.Equal(t, KindTechnical, ref.Kind)
	assert.Equal(t, "programming_languages", ref.Category)
	assert.Equal(t, "JavaScript", ref.Name)

	ref, ok = c.CategoryOf("Delegation")
	require.True(t, ok)
	assert.Equal(t, KindSoft, ref.Kind)
	assert.Equal(t, "teamwork", ref.Category)

	_, ok = c.CategoryOf("juggling")
	assert.False(t, ok)
}

func TestJobTitles(t *testing.T) {
	titles := Default().JobTitles()
	assert.True(t, sort.StringsAreSorted(titles))
	assert.Contains(t, titles, "Software Engineer")
	assert.Contains(t, titles, "Recruiter")
}

func TestEducationLevels(t *testing.T) {
	levels := Default().EducationLevels()
	require.Len(t, levels, 5)
	assert.Equal(t, types.DegreeHighSchool, levels[0])
	assert.Equal(t, types.DegreeDoctorate, levels[4])
	assert.Contains(t, Default().DegreeSpellings(types.DegreeMaster), "MBA")
	assert.Empty(t, Default().DegreeSpellings(types.DegreeNone))
}

func TestEntityRegex(t *testing.T) {
	c := Default()

	email, ok := c.EntityRegex("email")
	require.True(t, ok)
	assert.Equal(t, "jane.doe@example.com", email.FindString("contact: jane.doe@example.com today"))

	phone, ok := c.EntityRegex("phone")
	require.True(t, ok)
	assert.True(t, phone.MatchString("Call 555-123-4567"))

	salary, ok := c.EntityRegex("salary")
	require.True(t, ok)
	assert.Equal(t, "$90,000 - $120,000 per year", salary.FindString("Pay: $90,000 - $120,000 per year"))

	_, ok = c.EntityRegex("horoscope")
	assert.False(t, ok)
	assert.Equal(t, []string{"date", "email", "phone", "salary", "url"}, c.EntityNames())
}

func TestIndustryTerms(t *testing.T) {
	c := Default()

	tech := c.IndustryTerms("technology")
	assert.Equal(t, "technology", tech.Name)
	assert.Contains(t, tech.CommonTerms, "Microservices")

	all := c.IndustryTerms("")
	assert.Empty(t, all.Name)
	assert.Contains(t, all.CommonTerms, "Microservices")
	assert.Contains(t, all.CommonTerms, "EBITDA")

	assert.Equal(t, all, c.IndustryTerms("unknown"))
}

func TestStopwords(t *testing.T) {
	c := Default()
	assert.True(t, c.IsStopword("the"))
	assert.False(t, c.IsStopword("python"))
	assert.True(t, sort.StringsAreSorted(c.Stopwords()))
}

func TestNew_SmallCatalog(t *testing.T) {
	c, err := New(Data{
		TechnicalSkills: []Group{{Name: "languages", Items: []string{"Go", "go", " Rust ", ""}}},
		SoftSkills:      []Group{{Name: "teamwork", Items: []string{"Mentoring"}}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Mentoring", "Rust"}, c.AllSkills())
	assert.Empty(t, c.JobTitles())

	_, ok := c.EntityRegex("email")
	assert.False(t, ok)
}

func TestNew_RejectsBadPatterns(t *testing.T) {
	_, err := New(Data{EntityPatterns: map[string]string{"broken": "("}})
	assert.Error(t, err)

	_, err = New(Data{DegreeNames: []Group{{Name: "wizard", Items: []string{"Archmage"}}}})
	assert.Error(t, err)
}

func TestLoad_ExtendsBuiltin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `
technicalSkills:
  - name: programming_languages
    items: [Zig, Python]
  - name: embedded
    items: [FreeRTOS]
industries:
  - name: technology
    commonTerms: [WebAssembly]
entityPatterns:
  linkedin: 'linkedin\.com/in/[\w-]+'
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	c, err := Load(path)
	require.NoError(t, err)

	skills := c.AllSkills()
	assert.Contains(t, skills, "Zig")
	assert.Contains(t, skills, "FreeRTOS")
	assert.Contains(t, skills, "React", "built-in skills are kept")
	assert.Len(t, c.SkillsByCategory(KindTechnical), 8)
	assert.Contains(t, c.IndustryTerms("technology").CommonTerms, "WebAssembly")

	re, ok := c.EntityRegex("linkedin")
	require.True(t, ok)
	assert.True(t, re.MatchString("linkedin.com/in/jane-doe"))

	_, ok = c.EntityRegex("email")
	assert.True(t, ok)
}

func TestLoad_Replace(t *testing.T) {
	c, err := Parse([]byte(`
replace: true
technicalSkills:
  - name: languages
    items: [Go]
softSkills: []
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, c.AllSkills())
	assert.NotEmpty(t, c.JobTitles(), "sections absent from the file stay built-in")
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Parse([]byte("technicalSkills: {not: [a, list"))
	assert.Error(t, err)
}

func TestMarshal_RoundTrip(t *testing.T) {
	raw, err := Marshal(Default().Data())
	require.NoError(t, err)

	c, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, Default().AllSkills(), c.AllSkills())
	assert.Equal(t, Default().Stats(), c.Stats())
}
