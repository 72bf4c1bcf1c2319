package ai

import "errors"

// ErrGenerationFailed covers transport failures, non-2xx responses and
// responses without a usable choices[0].message.content.
var ErrGenerationFailed = errors.New("generation failed")

// Client produces raw model text. Callers must treat the output as
// untrusted until it passes the parser.
type Client interface {
	GenerateRoadmap(goal, level string, totalDays int, completedTopics []string, kbCtx string) (string, error)
	GeneratePrerequisiteGraph(goal string, taskTitles []string) (string, error)
}
