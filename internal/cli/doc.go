// Package cli handles command-line argument parsing and validation for the
// symtab binary, translating flags into an app.Config and usage errors
// into process exit codes.
package cli
