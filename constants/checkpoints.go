package constants

// Checkpoint is a named progress stage for a processing job. Progress
// percentages are advisory and monotonic within a job; the final job
// status is authoritative, not the percentage.
type Checkpoint struct {
	Name    string
	Percent int
}

// Scan pipeline checkpoints.
var (
	CheckpointScanDispatched = Checkpoint{Name: "dispatched", Percent: 10}
	CheckpointScanExtracting = Checkpoint{Name: "extracting", Percent: 30}
	CheckpointScanDone       = Checkpoint{Name: "done", Percent: 100}
)

// CV generation checkpoints.
var (
	CheckpointGenDispatched = Checkpoint{Name: "dispatched", Percent: 20}
	CheckpointGenRendering  = Checkpoint{Name: "rendering", Percent: 50}
	CheckpointGenDone       = Checkpoint{Name: "done", Percent: 100}
)

// CheckpointsScan and CheckpointsGenerate list the stages in order, so
// callers can assert "reached stage X" without caring about percentages.
var (
	CheckpointsScan     = []Checkpoint{CheckpointScanDispatched, CheckpointScanExtracting, CheckpointScanDone}
	CheckpointsGenerate = []Checkpoint{CheckpointGenDispatched, CheckpointGenRendering, CheckpointGenDone}
)
