package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSkillList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  SkillList
	}{
		{"comma string", `{"skillsRequired": "Python, Django ,  ,SQL"}`, SkillList{"python", "django", "sql"}},
		{"list", `{"skillsRequired": ["Go", " Kubernetes "]}`, SkillList{"go", "kubernetes"}},
		{"empty string", `{"skillsRequired": ""}`, SkillList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var job JobListing
			require.NoError(t, json.Unmarshal([]byte(tt.input), &job))
			assert.Equal(t, tt.want, job.SkillsRequired)
		})
	}
}

func TestSkillList_UnmarshalJSONRejectsObjects(t *testing.T) {
	var job JobListing
	err := json.Unmarshal([]byte(`{"skillsRequired": {"a": 1}}`), &job)
	assert.Error(t, err)
}

func TestSkillList_UnmarshalYAML(t *testing.T) {
	var job JobListing
	require.NoError(t, yaml.Unmarshal([]byte("title: Dev\nskillsRequired: React, Node.js\n"), &job))
	assert.Equal(t, SkillList{"react", "node.js"}, job.SkillsRequired)

	require.NoError(t, yaml.Unmarshal([]byte("skillsRequired:\n  - AWS\n  - Docker\n"), &job))
	assert.Equal(t, SkillList{"aws", "docker"}, job.SkillsRequired)
}

func TestJobListing_FullText(t *testing.T) {
	job := JobListing{Description: "Build APIs.", Requirements: "5 years of experience"}
	assert.Equal(t, "Build APIs.\n\n5 years of experience", job.FullText())

	job.Description = "Build APIs. 5 years of experience"
	assert.Equal(t, job.Description, job.FullText())
}

func TestJobListing_Validate(t *testing.T) {
	valid := JobListing{Title: "Backend Engineer", Description: "Write Go services"}
	assert.NoError(t, valid.Validate())

	missingTitle := JobListing{Description: "Write Go services"}
	err := missingTitle.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Title")
}

func TestRankRequest_ValidateDivesIntoCandidates(t *testing.T) {
	req := RankRequest{
		Job:        &JobListing{Title: "Dev", Description: "desc"},
		Candidates: []Candidate{{ID: "c1", ResumeText: "x"}, {Name: "no id"}},
	}
	assert.Error(t, req.Validate())

	req.Candidates[1].ID = "c2"
	assert.NoError(t, req.Validate())
}

func TestDegreeLevel(t *testing.T) {
	assert.True(t, DegreeHighSchool < DegreeAssociate)
	assert.True(t, DegreeMaster < DegreeDoctorate)
	assert.Equal(t, "Bachelor's", DegreeBachelor.String())
	assert.Equal(t, "", DegreeNone.String())
	assert.Len(t, DegreeLevels(), 5)

	for _, level := range DegreeLevels() {
		parsed, err := ParseDegreeLevel(level.Key())
		require.NoError(t, err)
		assert.Equal(t, level, parsed)

		parsed, err = ParseDegreeLevel(level.String())
		require.NoError(t, err)
		assert.Equal(t, level, parsed)
	}

	_, err := ParseDegreeLevel("wizard")
	assert.Error(t, err)
}

func TestDegreeLevel_JSON(t *testing.T) {
	req := EducationRequirement{MinDegree: DegreeMaster, Required: true}
	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"minDegreeLevel":"master"`)

	var decoded EducationRequirement
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, DegreeMaster, decoded.MinDegree)

	data, err = json.Marshal(EducationRequirement{})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "minDegreeLevel")
}

func TestParseDocumentKind(t *testing.T) {
	kind, err := ParseDocumentKind("")
	require.NoError(t, err)
	assert.Equal(t, KindResume, kind)

	kind, err = ParseDocumentKind("JD")
	require.NoError(t, err)
	assert.Equal(t, KindJobDescription, kind)

	_, err = ParseDocumentKind("poem")
	assert.Error(t, err)
}
