// Package archetype labels a user with one of twelve behavioral archetypes.
//
// Every scorer maps one signal from the aggregated features to a score of
// roughly 0-100. Classify returns the label with the strictly highest score;
// equal scores resolve to the earlier entry in Scorers, so the all-zero case
// is LabelNightOwl.
package archetype
