// Package logging builds the slog logger shared by every component.
//
// Two handler formats are supported: a pretty console handler for
// interactive runs and a line-per-record JSON handler for log files and
// non-interactive capture. Components receive child loggers tagged with a
// component attribute so output stays attributable.
package logging
