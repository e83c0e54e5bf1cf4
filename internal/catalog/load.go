package catalog

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the on-disk catalog override format. With Replace unset the lists
// extend the built-in catalog; with Replace set, every section present in the
// file replaces the built-in section of the same name.
type File struct {
	Replace bool `yaml:"replace"`
	Data    `yaml:",inline"`
}

// Load reads a YAML catalog file and combines it with the built-in data
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse builds a catalog from YAML bytes in the File format
func Parse(raw []byte) (*Catalog, error) {
	var file File
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	base := builtinData()
	if file.Replace {
		return New(replaceData(base, file.Data))
	}
	return New(mergeData(base, file.Data))
}

// Marshal renders catalog data as YAML in the File format
func Marshal(data Data) ([]byte, error) {
	return yaml.Marshal(File{Replace: true, Data: data})
}

func replaceData(base, override Data) Data {
	if override.TechnicalSkills != nil {
		base.TechnicalSkills = override.TechnicalSkills
	}
	if override.SoftSkills != nil {
		base.SoftSkills = override.SoftSkills
	}
	if override.ProfessionalSkills != nil {
		base.ProfessionalSkills = override.ProfessionalSkills
	}
	if override.JobTitles != nil {
		base.JobTitles = override.JobTitles
	}
	if override.CommonJobTitles != nil {
		base.CommonJobTitles = override.CommonJobTitles
	}
	if override.DegreeNames != nil {
		base.DegreeNames = override.DegreeNames
	}
	if override.DegreeTypes != nil {
		base.DegreeTypes = override.DegreeTypes
	}
	if override.FieldsOfStudy != nil {
		base.FieldsOfStudy = override.FieldsOfStudy
	}
	if override.Institutions != nil {
		base.Institutions = override.Institutions
	}
	if override.Industries != nil {
		base.Industries = override.Industries
	}
	if override.Stopwords != nil {
		base.Stopwords = override.Stopwords
	}
	if override.CertificationPatterns != nil {
		base.CertificationPatterns = override.CertificationPatterns
	}
	if override.EntityPatterns != nil {
		base.EntityPatterns = override.EntityPatterns
	}
	return base
}

func mergeData(base, extra Data) Data {
	base.TechnicalSkills = mergeGroups(base.TechnicalSkills, extra.TechnicalSkills)
	base.SoftSkills = mergeGroups(base.SoftSkills, extra.SoftSkills)
	base.ProfessionalSkills = mergeGroups(base.ProfessionalSkills, extra.ProfessionalSkills)
	base.JobTitles = mergeGroups(base.JobTitles, extra.JobTitles)
	base.CommonJobTitles = mergeGroups(base.CommonJobTitles, extra.CommonJobTitles)
	base.DegreeNames = mergeGroups(base.DegreeNames, extra.DegreeNames)
	base.DegreeTypes = appendUnique(base.DegreeTypes, extra.DegreeTypes)
	base.FieldsOfStudy = appendUnique(base.FieldsOfStudy, extra.FieldsOfStudy)
	base.Institutions = appendUnique(base.Institutions, extra.Institutions)
	base.Stopwords = appendUnique(base.Stopwords, extra.Stopwords)
	base.CertificationPatterns = appendUnique(base.CertificationPatterns, extra.CertificationPatterns)

	for _, ind := range extra.Industries {
		idx := slices.IndexFunc(base.Industries, func(b Industry) bool { return b.Name == ind.Name })
		if idx < 0 {
			base.Industries = append(base.Industries, ind)
			continue
		}
		base.Industries[idx].Subcategories = appendUnique(base.Industries[idx].Subcategories, ind.Subcategories)
		base.Industries[idx].CommonTerms = appendUnique(base.Industries[idx].CommonTerms, ind.CommonTerms)
	}

	for name, pattern := range extra.EntityPatterns {
		base.EntityPatterns[strings.ToLower(name)] = pattern
	}
	return base
}

func mergeGroups(base, extra []Group) []Group {
	for _, g := range extra {
		idx := slices.IndexFunc(base, func(b Group) bool { return b.Name == g.Name })
		if idx < 0 {
			base = append(base, Group{Name: g.Name, Items: slices.Clone(g.Items)})
			continue
		}
		base[idx].Items = appendUnique(base[idx].Items, g.Items)
	}
	return base
}

func appendUnique(base, extra []string) []string {
	for _, item := range extra {
		if !slices.ContainsFunc(base, func(b string) bool { return strings.EqualFold(b, item) }) {
			base = append(base, item)
		}
	}
	return base
}
