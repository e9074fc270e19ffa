package pipeline

import (
	"fmt"
)

type Status int

const (
	OK Status = iota
	Failed
)

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

type Stage string

const (
	StageLanguages Stage = "languages"
	StageLoad      Stage = "load"
	StageScan      Stage = "scan"
	StageBackup    Stage = "backup"
	StageWrite     Stage = "write"
)

// Result is the outcome of an upload. A failed upload records the stage that
// failed and why; the counts reflect whatever had been computed by then.
type Result struct {
	Status    Status
	Stage     Stage
	Reason    error
	Languages []string
	Existing  int
	Used      int
	Unused    int
	New       int
	Written   bool
}

func (r Result) OK() bool {
	return r.Status == OK
}

func (r Result) String() string {
	if r.Status != OK {
		return fmt.Sprintf("upload failed at %v (%v)", r.Stage, r.Reason)
	}

	return fmt.Sprintf("languages:%v existing:%v used:%v unused:%v new:%v",
		r.Languages, r.Existing, r.Used, r.Unused, r.New)
}

func (r *Result) fail(stage Stage, err error) Result {
	r.Status = Failed
	r.Stage = stage
	r.Reason = err

	return *r
}
