// Package types provides type definitions for structured data used throughout the resume-extractor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// EntityLabel is the fixed vocabulary of model-produced entity types.
type EntityLabel string

// Entity labels understood by the NER contract.
const (
	EntitySkill         EntityLabel = "Skill"
	EntityLanguage      EntityLabel = "Language"
	EntityDegree        EntityLabel = "Degree"
	EntityJobTitle      EntityLabel = "Job Title"
	EntityOrganization  EntityLabel = "Organization"
	EntityLocation      EntityLabel = "Location"
	EntityPerson        EntityLabel = "Person"
	EntityCertification EntityLabel = "Certification"
	EntityAward         EntityLabel = "Award"
	EntityActivity      EntityLabel = "Activity"
	EntityProject       EntityLabel = "Project"
	EntityDate          EntityLabel = "Date"
)

// EntityLabels returns every entity label.
func EntityLabels() []EntityLabel {
	return []EntityLabel{
		EntitySkill, EntityLanguage, EntityDegree, EntityJobTitle, EntityOrganization,
		EntityLocation, EntityPerson, EntityCertification, EntityAward, EntityActivity,
		EntityProject, EntityDate,
	}
}

// ParseEntityLabel maps a raw model label to the entity vocabulary.
// Company and School are folded into Organization.
func ParseEntityLabel(raw string) (EntityLabel, bool) {
	switch squash(raw) {
	case "skill", "skills":
		return EntitySkill, true
	case "language", "languages":
		return EntityLanguage, true
	case "degree", "major", "qualification":
		return EntityDegree, true
	case "jobtitle", "title", "position", "role":
		return EntityJobTitle, true
	case "organization", "organisation", "company", "school", "university", "institution", "employer":
		return EntityOrganization, true
	case "location", "city", "address":
		return EntityLocation, true
	case "person", "name":
		return EntityPerson, true
	case "certification", "certificate":
		return EntityCertification, true
	case "award", "achievement":
		return EntityAward, true
	case "activity":
		return EntityActivity, true
	case "project":
		return EntityProject, true
	case "date":
		return EntityDate, true
	}
	return "", false
}

// Entity is a span predicted by a model-based extractor.
type Entity struct {
	Text  string      `json:"text"`
	Label EntityLabel `json:"label"`
	Score float64     `json:"score"`
	Start int         `json:"start"`
	End   int         `json:"end"`
}

// FilterEntities returns the entities with the given label, in input order.
func FilterEntities(entities []Entity, label EntityLabel) []Entity {
	var out []Entity
	for _, e := range entities {
		if e.Label == label && strings.TrimSpace(e.Text) != "" {
			out = append(out, e)
		}
	}
	return out
}
