package types

import (
	"fmt"
	"strings"
)

// DegreeLevel is the ordinal rank of an educational attainment.
// Comparisons always use the numeric rank.
type DegreeLevel int

const (
	DegreeNone DegreeLevel = iota
	DegreeHighSchool
	DegreeAssociate
	DegreeBachelor
	DegreeMaster
	DegreeDoctorate
)

var degreeNames = map[DegreeLevel]string{
	DegreeHighSchool: "High School",
	DegreeAssociate:  "Associate's",
	DegreeBachelor:   "Bachelor's",
	DegreeMaster:     "Master's",
	DegreeDoctorate:  "PhD",
}

var degreeKeys = map[DegreeLevel]string{
	DegreeHighSchool: "high_school",
	DegreeAssociate:  "associate",
	DegreeBachelor:   "bachelor",
	DegreeMaster:     "master",
	DegreeDoctorate:  "doctorate",
}

// DegreeLevels lists every level from lowest to highest
func DegreeLevels() []DegreeLevel {
	return []DegreeLevel{DegreeHighSchool, DegreeAssociate, DegreeBachelor, DegreeMaster, DegreeDoctorate}
}

func (d DegreeLevel) String() string {
	if name, ok := degreeNames[d]; ok {
		return name
	}
	return ""
}

// Key returns the stable machine name of the level
func (d DegreeLevel) Key() string {
	return degreeKeys[d]
}

func (d DegreeLevel) MarshalText() ([]byte, error) {
	return []byte(d.Key()), nil
}

func (d *DegreeLevel) UnmarshalText(text []byte) error {
	level, err := ParseDegreeLevel(string(text))
	if err != nil {
		return err
	}
	*d = level
	return nil
}

// ParseDegreeLevel accepts either a key ("bachelor") or a display name ("Bachelor's")
func ParseDegreeLevel(s string) (DegreeLevel, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" {
		return DegreeNone, nil
	}
	for level, key := range degreeKeys {
		if s == key || s == strings.ToLower(degreeNames[level]) {
			return level, nil
		}
	}
	switch s {
	case "phd", "doctoral":
		return DegreeDoctorate, nil
	case "high school", "highschool":
		return DegreeHighSchool, nil
	}
	return DegreeNone, fmt.Errorf("unknown degree level: %s", s)
}
