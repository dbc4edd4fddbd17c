package model

// Stage names, in execution order. The tracer uses them as vertex names
// and every stage error is wrapped with one of them.
const (
	StageHash     = "hash"
	StageColor    = "pick colour"
	StageGrid     = "build grid"
	StageFilter   = "filter grid"
	StagePixelMap = "build pixel map"
	StageDraw     = "draw"
	StageSave     = "save"
)

// StartStage and EndStage delimit the trace graph. They are not real
// pipeline stages.
const (
	StartStage = "start"
	EndStage   = "end"
)

// Stages lists the pipeline stages in execution order.
var Stages = []string{
	StageHash,
	StageColor,
	StageGrid,
	StageFilter,
	StagePixelMap,
	StageDraw,
	StageSave,
}
