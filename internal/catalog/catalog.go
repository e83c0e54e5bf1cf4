// Package catalog holds the read-only reference data consulted by every
// extraction and scoring step: skills, job titles, degrees, industries,
// stopwords and entity patterns.
package catalog

import (
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strings"
	"sync"

	"searchfind/internal/types"
)

// Skill kinds accepted by SkillsByCategory
const (
	KindTechnical    = "technical"
	KindSoft         = "soft"
	KindProfessional = "professional"
)

// Group is a named, ordered list of catalog entries
type Group struct {
	Name  string   `yaml:"name" json:"name"`
	Items []string `yaml:"items" json:"items"`
}

// Industry holds the subcategories and common vocabulary of one industry
type Industry struct {
	Name          string   `yaml:"name" json:"name"`
	Subcategories []string `yaml:"subcategories" json:"subcategories"`
	CommonTerms   []string `yaml:"commonTerms" json:"commonTerms"`
}

// Data is the serializable form of a catalog
type Data struct {
	TechnicalSkills       []Group           `yaml:"technicalSkills,omitempty" json:"technicalSkills"`
	SoftSkills            []Group           `yaml:"softSkills,omitempty" json:"softSkills"`
	ProfessionalSkills    []Group           `yaml:"professionalSkills,omitempty" json:"professionalSkills"`
	JobTitles             []Group           `yaml:"jobTitles,omitempty" json:"jobTitles"`
	CommonJobTitles       []Group           `yaml:"commonJobTitles,omitempty" json:"commonJobTitles"`
	DegreeNames           []Group           `yaml:"degreeNames,omitempty" json:"degreeNames"`
	DegreeTypes           []string          `yaml:"degreeTypes,omitempty" json:"degreeTypes"`
	FieldsOfStudy         []string          `yaml:"fieldsOfStudy,omitempty" json:"fieldsOfStudy"`
	Institutions          []string          `yaml:"institutions,omitempty" json:"institutions"`
	Industries            []Industry        `yaml:"industries,omitempty" json:"industries"`
	Stopwords             []string          `yaml:"stopwords,omitempty" json:"stopwords"`
	CertificationPatterns []string          `yaml:"certificationPatterns,omitempty" json:"certificationPatterns"`
	EntityPatterns        map[string]string `yaml:"entityPatterns,omitempty" json:"entityPatterns"`
}

// SkillRef locates a skill inside the catalog
type SkillRef struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Category string `json:"category"`
}

// Catalog is immutable once built and safe for concurrent use.
type Catalog struct {
	data           Data
	allSkills      []string
	jobTitles      []string
	skillIndex     map[string]SkillRef
	stopwords      map[string]struct{}
	entities       map[string]*regexp.Regexp
	certifications []*regexp.Regexp
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog, building it on first use
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New(builtinData())
		if err != nil {
			// The built-in patterns are constants; failing here is a programming error.
			panic(fmt.Sprintf("catalog: invalid built-in data: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

func builtinData() Data {
	return Data{
		TechnicalSkills:       cloneGroups(technicalSkills),
		SoftSkills:            cloneGroups(softSkills),
		ProfessionalSkills:    cloneGroups(professionalSkills),
		JobTitles:             cloneGroups(jobTitles),
		CommonJobTitles:       cloneGroups(commonJobTitles),
		DegreeNames:           cloneGroups(degreeNames),
		DegreeTypes:           slices.Clone(degreeTypes),
		FieldsOfStudy:         slices.Clone(fieldsOfStudy),
		Institutions:          slices.Clone(institutions),
		Industries:            cloneIndustries(industries),
		Stopwords:             slices.Clone(stopwords),
		CertificationPatterns: slices.Clone(certificationPatterns),
		EntityPatterns:        cloneMap(entityPatterns),
	}
}

// New builds a catalog from raw data. Entries are deduplicated inside each
// group (case-insensitively) and every pattern is compiled up front.
func New(data Data) (*Catalog, error) {
	c := &Catalog{
		skillIndex: make(map[string]SkillRef),
		stopwords:  make(map[string]struct{}, len(data.Stopwords)),
		entities:   make(map[string]*regexp.Regexp, len(data.EntityPatterns)),
	}

	data.TechnicalSkills = dedupeGroups(data.TechnicalSkills)
	data.SoftSkills = dedupeGroups(data.SoftSkills)
	data.ProfessionalSkills = dedupeGroups(data.ProfessionalSkills)
	data.JobTitles = dedupeGroups(data.JobTitles)
	data.CommonJobTitles = dedupeGroups(data.CommonJobTitles)
	data.DegreeNames = dedupeGroups(data.DegreeNames)
	c.data = data

	for _, g := range data.DegreeNames {
		if _, err := types.ParseDegreeLevel(g.Name); err != nil {
			return nil, fmt.Errorf("degree group %q: %w", g.Name, err)
		}
	}

	// First declared category wins, technical before soft.
	c.indexSkills(KindTechnical, data.TechnicalSkills)
	c.indexSkills(KindSoft, data.SoftSkills)

	c.allSkills = sortedUnique(flatten(data.TechnicalSkills), flatten(data.SoftSkills))
	c.jobTitles = sortedUnique(flatten(data.JobTitles))

	for _, word := range data.Stopwords {
		c.stopwords[strings.ToLower(word)] = struct{}{}
	}

	for name, pattern := range data.EntityPatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("entity pattern %q: %w", name, err)
		}
		c.entities[name] = re
	}

	for _, pattern := range data.CertificationPatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("certification pattern %q: %w", pattern, err)
		}
		c.certifications = append(c.certifications, re)
	}

	return c, nil
}

func (c *Catalog) indexSkills(kind string, groups []Group) {
	for _, g := range groups {
		for _, skill := range g.Items {
			key := strings.ToLower(skill)
			if _, ok := c.skillIndex[key]; ok {
				continue
			}
			c.skillIndex[key] = SkillRef{Name: skill, Kind: kind, Category: g.Name}
		}
	}
}

// AllSkills returns the sorted, deduplicated union of technical and soft skills
func (c *Catalog) AllSkills() []string {
	return slices.Clone(c.allSkills)
}

// SkillsByCategory returns category -> skills for the given kind.
// Unknown kinds yield an empty map.
func (c *Catalog) SkillsByCategory(kind string) map[string][]string {
	var groups []Group
	switch strings.ToLower(kind) {
	case KindTechnical:
		groups = c.data.TechnicalSkills
	case KindSoft:
		groups = c.data.SoftSkills
	case KindProfessional:
		groups = c.data.ProfessionalSkills
	}
	out := make(map[string][]string, len(groups))
	for _, g := range groups {
		out[g.Name] = slices.Clone(g.Items)
	}
	return out
}

// CategoryOf reports where a skill lives, matching case-insensitively
func (c *Catalog) CategoryOf(skill string) (SkillRef, bool) {
	ref, ok := c.skillIndex[strings.ToLower(strings.TrimSpace(skill))]
	return ref, ok
}

// JobTitles returns the sorted, deduplicated industry job titles
func (c *Catalog) JobTitles() []string {
	return slices.Clone(c.jobTitles)
}

// CommonJobTitles returns the title variations commonly found on resumes
func (c *Catalog) CommonJobTitles() []string {
	return sortedUnique(flatten(c.data.CommonJobTitles))
}

// EducationLevels returns the degree levels from lowest to highest
func (c *Catalog) EducationLevels() []types.DegreeLevel {
	return types.DegreeLevels()
}

// DegreeSpellings returns the names that denote a degree level
func (c *Catalog) DegreeSpellings(level types.DegreeLevel) []string {
	for _, g := range c.data.DegreeNames {
		if g.Name == level.Key() {
			return slices.Clone(g.Items)
		}
	}
	return nil
}

func (c *Catalog) DegreeTypes() []string   { return slices.Clone(c.data.DegreeTypes) }
func (c *Catalog) FieldsOfStudy() []string { return slices.Clone(c.data.FieldsOfStudy) }
func (c *Catalog) Institutions() []string  { return slices.Clone(c.data.Institutions) }

// EntityRegex returns the compiled pattern for an entity such as "email" or "salary"
func (c *Catalog) EntityRegex(name string) (*regexp.Regexp, bool) {
	re, ok := c.entities[strings.ToLower(name)]
	return re, ok
}

// EntityNames lists the available entity patterns in sorted order
func (c *Catalog) EntityNames() []string {
	names := make([]string, 0, len(c.entities))
	for name := range c.entities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CertificationPatterns returns the compiled certification patterns
func (c *Catalog) CertificationPatterns() []*regexp.Regexp {
	return slices.Clone(c.certifications)
}

// Industries returns the industry names in declaration order
func (c *Catalog) Industries() []string {
	names := make([]string, 0, len(c.data.Industries))
	for _, ind := range c.data.Industries {
		names = append(names, ind.Name)
	}
	return names
}

// IndustryTerms returns the vocabulary of one industry, or the combined
// vocabulary of all industries when the name is empty or unknown.
func (c *Catalog) IndustryTerms(industry string) Industry {
	key := strings.ToLower(strings.TrimSpace(industry))
	for _, ind := range c.data.Industries {
		if ind.Name == key {
			return Industry{Name: ind.Name, Subcategories: slices.Clone(ind.Subcategories), CommonTerms: slices.Clone(ind.CommonTerms)}
		}
	}
	combined := Industry{}
	for _, ind := range c.data.Industries {
		combined.Subcategories = append(combined.Subcategories, ind.Subcategories...)
		combined.CommonTerms = append(combined.CommonTerms, ind.CommonTerms...)
	}
	return combined
}

// IsStopword reports whether a lowercase word is a stopword
func (c *Catalog) IsStopword(word string) bool {
	_, ok := c.stopwords[word]
	return ok
}

// Stopwords returns the stopword list in sorted order
func (c *Catalog) Stopwords() []string {
	words := make([]string, 0, len(c.stopwords))
	for w := range c.stopwords {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Data returns a deep copy of the catalog contents
func (c *Catalog) Data() Data {
	return Data{
		TechnicalSkills:       cloneGroups(c.data.TechnicalSkills),
		SoftSkills:            cloneGroups(c.data.SoftSkills),
		ProfessionalSkills:    cloneGroups(c.data.ProfessionalSkills),
		JobTitles:             cloneGroups(c.data.JobTitles),
		CommonJobTitles:       cloneGroups(c.data.CommonJobTitles),
		DegreeNames:           cloneGroups(c.data.DegreeNames),
		DegreeTypes:           slices.Clone(c.data.DegreeTypes),
		FieldsOfStudy:         slices.Clone(c.data.FieldsOfStudy),
		Institutions:          slices.Clone(c.data.Institutions),
		Industries:            cloneIndustries(c.data.Industries),
		Stopwords:             slices.Clone(c.data.Stopwords),
		CertificationPatterns: slices.Clone(c.data.CertificationPatterns),
		EntityPatterns:        cloneMap(c.data.EntityPatterns),
	}
}

// Stats summarises the catalog size
type Stats struct {
	Skills     int `json:"skills"`
	Technical  int `json:"technicalCategories"`
	Soft       int `json:"softCategories"`
	JobTitles  int `json:"jobTitles"`
	Industries int `json:"industries"`
	Stopwords  int `json:"stopwords"`
	Entities   int `json:"entityPatterns"`
}

func (c *Catalog) Stats() Stats {
	return Stats{
		Skills:     len(c.allSkills),
		Technical:  len(c.data.TechnicalSkills),
		Soft:       len(c.data.SoftSkills),
		JobTitles:  len(c.jobTitles),
		Industries: len(c.data.Industries),
		Stopwords:  len(c.stopwords),
		Entities:   len(c.entities),
	}
}

func flatten(groups []Group) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g.Items...)
	}
	return out
}

func sortedUnique(lists ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range lists {
		for _, item := range list {
			key := strings.ToLower(item)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, item)
		}
	}
	sort.Strings(out)
	return out
}

func dedupeGroups(groups []Group) []Group {
	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		seen := make(map[string]struct{}, len(g.Items))
		items := make([]string, 0, len(g.Items))
		for _, item := range g.Items {
			item = strings.TrimSpace(item)
			key := strings.ToLower(item)
			if item == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			items = append(items, item)
		}
		out = append(out, Group{Name: g.Name, Items: items})
	}
	return out
}

func cloneGroups(groups []Group) []Group {
	out := make([]Group, len(groups))
	for i, g := range groups {
		out[i] = Group{Name: g.Name, Items: slices.Clone(g.Items)}
	}
	return out
}

func cloneIndustries(in []Industry) []Industry {
	out := make([]Industry, len(in))
	for i, ind := range in {
		out[i] = Industry{Name: ind.Name, Subcategories: slices.Clone(ind.Subcategories), CommonTerms: slices.Clone(ind.CommonTerms)}
	}
	return out
}

func cloneMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
