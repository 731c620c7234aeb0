// Package types provides type definitions for structured data used throughout the roster-reconciler system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// CategoryTag identifies one hardship/eligibility classification. The set of
// tags is closed: every tag corresponds to exactly one source agency's roster
// layout, registered in internal/registry.
type CategoryTag string

// The ten classification kinds of the reference deployment.
const (
	TagPovertyAlleviatedContinuePolicy CategoryTag = "poverty_alleviated_continue_policy"
	TagPovertyAlleviatedNoPolicy       CategoryTag = "poverty_alleviated_no_policy"
	TagDisabledWithCertificate         CategoryTag = "disabled_with_certificate"
	TagRuralMinimumLiving              CategoryTag = "rural_minimum_living"
	TagUrbanMinimumLiving              CategoryTag = "urban_minimum_living"
	TagRuralSpecialDifficulty          CategoryTag = "rural_special_difficulty"
	TagMonitoringRiskNotEliminated     CategoryTag = "monitoring_risk_not_eliminated"
	TagMonitoringRiskEliminated        CategoryTag = "monitoring_risk_eliminated"
	TagOrphanUnsupportedChild          CategoryTag = "orphan_unsupported_child"
	TagLowIncomePopulation             CategoryTag = "low_income_population"
)

// tagLabels maps each tag to the display label used by the upstream agencies.
// Labels appear in exported reports and must match the agencies' terminology
// character for character.
var tagLabels = map[CategoryTag]string{
	TagPovertyAlleviatedContinuePolicy: "脱贫户(继续享受政策)",
	TagPovertyAlleviatedNoPolicy:       "脱贫户(不享受政策)",
	TagDisabledWithCertificate:         "持证残疾人",
	TagRuralMinimumLiving:              "农村低保",
	TagUrbanMinimumLiving:              "城镇低保",
	TagRuralSpecialDifficulty:          "城乡特困",
	TagMonitoringRiskNotEliminated:     "防返贫监测对象(风险未消除)",
	TagMonitoringRiskEliminated:        "防返贫监测对象(风险已消除)",
	TagOrphanUnsupportedChild:          "孤儿及事实无人抚养儿童",
	TagLowIncomePopulation:             "低收入人口",
}

// String returns the tag identifier itself.
func (t CategoryTag) String() string {
	return string(t)
}

// Label returns the Chinese display label for the tag, or the raw tag string
// if the tag is outside the known set.
func (t CategoryTag) Label() string {
	if label, ok := tagLabels[t]; ok {
		return label
	}
	return string(t)
}

// Known reports whether the tag belongs to the closed set.
func (t CategoryTag) Known() bool {
	_, ok := tagLabels[t]
	return ok
}

// ParseTag resolves a string to a CategoryTag. It accepts either the tag
// identifier ("rural_minimum_living") or the display label ("农村低保").
func ParseTag(s string) (CategoryTag, error) {
	tag := CategoryTag(s)
	if tag.Known() {
		return tag, nil
	}
	for t, label := range tagLabels {
		if label == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown category tag: %q", s)
}
