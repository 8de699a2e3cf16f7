// Package logger provides leveled, colored logging for netctl2iwd commands.
//
// Verbosity is controlled by two flags:
//
//   - --verbose: shows info and warning messages
//   - --debug: shows everything, including debug details
//
// Without flags, only errors and critical warnings are shown. Per-file
// conversion results are not logged through this package; they are printed
// directly by the convert command so they remain visible at every
// verbosity level.
package logger
