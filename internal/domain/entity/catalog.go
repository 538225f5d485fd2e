package entity

import (
	"fmt"
	"time"
)

// Plugin types supported by the deployment tooling.
const (
	PluginCanvasLTI   = "CanvasLTI"
	PluginVERA        = "VERA"
	PluginEdStem      = "EdStem"
	PluginBlackboard  = "Blackboard"
	PluginCommandLine = "CommandLine"
)

// PluginTypes lists the supported plugin types in presentation order.
func PluginTypes() []string {
	return []string{PluginCanvasLTI, PluginVERA, PluginEdStem, PluginBlackboard, PluginCommandLine}
}

// Organizations lists the institutions a course can belong to.
func Organizations() []string {
	return []string{
		"Georgia Institute of Technology",
		"Wiregrass College",
	}
}

// TermYears lists the selectable terms: every season of the current year
// followed by every season of the next.
func TermYears(now time.Time) []string {
	seasons := []string{"Fall", "Winter", "Spring", "Summer"}
	terms := make([]string, 0, len(seasons)*2)
	for _, year := range []int{now.Year(), now.Year() + 1} {
		for _, season := range seasons {
			terms = append(terms, fmt.Sprintf("%s %d", season, year))
		}
	}

	return terms
}
