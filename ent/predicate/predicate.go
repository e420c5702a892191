// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentRun is the predicate function for agentrun builders.
type AgentRun func(*sql.Selector)

// AlertLog is the predicate function for alertlog builders.
type AlertLog func(*sql.Selector)

// AlertRule is the predicate function for alertrule builders.
type AlertRule func(*sql.Selector)

// AssetOverride is the predicate function for assetoverride builders.
type AssetOverride func(*sql.Selector)

// Build is the predicate function for build builders.
type Build func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// MeasurementComparison is the predicate function for measurementcomparison builders.
type MeasurementComparison func(*sql.Selector)

// Page is the predicate function for page builders.
type Page func(*sql.Selector)

// SettingsHistory is the predicate function for settingshistory builders.
type SettingsHistory func(*sql.Selector)

// Site is the predicate function for site builders.
type Site func(*sql.Selector)
