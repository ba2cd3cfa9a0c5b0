// Package flag carries the parsed command line options handed to worker
// jobs. Kept separate from cobra so job handlers stay testable.
package flag

type Job struct {
	JobName  string
	Version  string
	TenantID string
	ActorID  string
	Date     string
}
