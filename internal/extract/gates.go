// Package extract implements the field extractor set: independent extractors
// scoped by section label, and the experience and activity block splitters.
package extract

import "github.com/jonathan/resume-extractor/internal/types"

type gate struct {
	allowed   []types.Label // empty means any label
	forbidden []types.Label
}

// gates is the label filter policy. Fields missing from the table run for
// every label.
var gates = map[types.Field]gate{
	types.FieldName: {
		allowed: []types.Label{types.LabelPersonalInfo},
	},
	types.FieldDegree: {
		allowed: []types.Label{types.LabelEducation},
	},
	types.FieldInstitution: {
		allowed: []types.Label{types.LabelEducation},
	},
	types.FieldJobTitle: {
		allowed:   []types.Label{types.LabelExperience, types.LabelInternships},
		forbidden: []types.Label{types.LabelEducation, types.LabelSkills, types.LabelPersonalInfo},
	},
	types.FieldCompany: {
		allowed:   []types.Label{types.LabelExperience, types.LabelInternships},
		forbidden: []types.Label{types.LabelSkills, types.LabelPersonalInfo},
	},
}

// contactFields are extracted from any text and then kept only for PersonalInfo.
var contactFields = map[types.Field]bool{
	types.FieldEmail: true,
	types.FieldPhone: true,
}

// Allowed reports whether the extractor for field runs on segments with label.
func Allowed(field types.Field, label types.Label) bool {
	g, ok := gates[field]
	if !ok {
		return true
	}
	for _, l := range g.forbidden {
		if l == label {
			return false
		}
	}
	if len(g.allowed) == 0 {
		return true
	}
	for _, l := range g.allowed {
		if l == label {
			return true
		}
	}
	return false
}

// Kept reports whether extracted values of field survive the post-hoc filter
// for label.
func Kept(field types.Field, label types.Label) bool {
	if contactFields[field] {
		return label == types.LabelPersonalInfo
	}
	return Allowed(field, label)
}
