package extractors

import (
	"strings"

	"job-efficiency/internal/models"
	"job-efficiency/internal/normalizers"
)

//go:generate mockgen -source=record_extractor.go -destination=./mocks/record_extractor_mock.go -package=mocks
type RecordExtractor interface {
	// Extract turns an accounting snapshot into one record per finished main job.
	Extract(raw string) []*models.JobRecord
}

type recordExtractor struct{}

func NewRecordExtractor() RecordExtractor {
	return &recordExtractor{}
}

// Extract makes two passes over the snapshot. The first records, for every main job id, the
// largest memory usage seen on the job row or any of its step rows. The second builds a
// record for each main row that is no longer in flight, carrying that reconciled memory.
// Rows with fewer than models.AccountingFieldCount fields or without a job id are ignored.
func (e *recordExtractor) Extract(raw string) []*models.JobRecord {
	jobMemory := make(map[string]int64)
	var mainRows [][]string

	for _, line := range strings.Split(raw, "\n") {
		fields := strings.Split(strings.TrimSpace(line), "|")
		if len(fields) < models.AccountingFieldCount {
			continue
		}

		jobID := strings.TrimSpace(fields[models.FieldJobID])
		if jobID == "" {
			continue
		}

		mainJobID := models.MainJobID(jobID)
		if rowMemory := rowMemoryBytes(fields); rowMemory > 0 && rowMemory > jobMemory[mainJobID] {
			jobMemory[mainJobID] = rowMemory
		}

		if models.IsStepJobID(jobID) {
			continue
		}
		mainRows = append(mainRows, fields)
	}

	records := make([]*models.JobRecord, 0, len(mainRows))
	for _, fields := range mainRows {
		state := strings.ToUpper(strings.TrimSpace(fields[models.FieldState]))
		if models.IsInFlight(state) {
			continue
		}
		records = append(records, e.buildRecord(fields, state, jobMemory))
	}

	return records
}

func (e *recordExtractor) buildRecord(fields []string, state string, jobMemory map[string]int64) *models.JobRecord {
	jobID := strings.TrimSpace(fields[models.FieldJobID])
	cpus := normalizers.ParseInteger(fields[models.FieldNCPUs])
	nodes := normalizers.ParseInteger(fields[models.FieldNNodes])

	maxRSS, ok := jobMemory[jobID]
	if !ok {
		maxRSS = rowMemoryBytes(fields)
	}

	requestedMemory, requestedMemoryKnown := normalizers.ParseRequestedMemory(fields[models.FieldReqMem], cpus, nodes)

	return &models.JobRecord{
		JobID:                jobID,
		State:                state,
		ElapsedSeconds:       normalizers.ParseInteger(fields[models.FieldElapsedRaw]),
		TimelimitMinutes:     normalizers.ParseInteger(fields[models.FieldTimelimitRaw]),
		CPUCount:             cpus,
		NodeCount:            nodes,
		TotalCPUSeconds:      normalizers.ParseDuration(fields[models.FieldTotalCPU]),
		MaxRSSBytes:          maxRSS,
		RequestedMemoryBytes: requestedMemory,
		RequestedMemoryKnown: requestedMemoryKnown,
		RequestedGPUCount:    normalizers.ParseRequestedGPUCount(fields[models.FieldReqTRES]),
	}
}

// rowMemoryBytes reads MaxRSS and falls back to the mem entry of TRESUsageInMax when MaxRSS
// is empty or zero.
func rowMemoryBytes(fields []string) int64 {
	if maxRSS := normalizers.ParseMemory(fields[models.FieldMaxRSS]); maxRSS > 0 {
		return maxRSS
	}
	return normalizers.ParseTRESMemory(fields[models.FieldTRESUsageInMax])
}
