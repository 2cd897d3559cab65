// Package render turns decoded device data into terminal text.
//
// Text output follows the messages of the command line: a one-line playback
// sentence, a preset table drawn with lipgloss/table, and a volume line with
// a 20 cell bar. Encode writes the same values as JSON or YAML for
// --output json|yaml.
package render
