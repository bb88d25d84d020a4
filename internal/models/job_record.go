package models

import "strings"

// Number of '|' separated fields in one accounting row.
const AccountingFieldCount = 11

// Field positions within an accounting row.
const (
	FieldJobID = iota
	FieldState
	FieldElapsedRaw
	FieldTimelimitRaw
	FieldNCPUs
	FieldNNodes
	FieldTotalCPU
	FieldMaxRSS
	FieldReqMem
	FieldTRESUsageInMax
	FieldReqTRES
)

// AccountingFormat is the sacct --format list that yields rows in the field order above.
const AccountingFormat = "JobID,State,ElapsedRaw,TimelimitRaw,NCPUS,NNodes,TotalCPU,MaxRSS,ReqMem,TRESUsageInMax,ReqTRES"

// JobRecord is one main job with its step rows folded in.
type JobRecord struct {
	JobID            string
	State            string
	ElapsedSeconds   int64
	TimelimitMinutes int64
	CPUCount         int64
	NodeCount        int64
	TotalCPUSeconds  float64
	// MaxRSSBytes is the largest memory usage seen on the job or any of its steps.
	MaxRSSBytes int64
	// RequestedMemoryBytes is only meaningful when RequestedMemoryKnown is set.
	RequestedMemoryBytes int64
	RequestedMemoryKnown bool
	RequestedGPUCount    int64
}

func (r *JobRecord) TimelimitSeconds() int64 {
	return r.TimelimitMinutes * 60
}

// MainJobID strips the step suffix from a job id: "100.batch" -> "100".
func MainJobID(jobID string) string {
	if idx := strings.IndexByte(jobID, '.'); idx >= 0 {
		return jobID[:idx]
	}
	return jobID
}

func IsStepJobID(jobID string) bool {
	return strings.Contains(jobID, ".")
}
