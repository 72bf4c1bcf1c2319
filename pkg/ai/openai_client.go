package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type openAI struct {
	endpoint string
	key      string
	model    string
	httpc    *http.Client
}

func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{
		endpoint: endpoint,
		key:      key,
		model:    model,
		httpc:    &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *openAI) GenerateRoadmap(goal, level string, totalDays int, completedTopics []string, kbCtx string) (string, error) {
	return c.complete(renderRoadmapPrompt(goal, level, totalDays, completedTopics, kbCtx))
}

func (c *openAI) GeneratePrerequisiteGraph(goal string, taskTitles []string) (string, error) {
	return c.complete(renderGraphPrompt(goal, taskTitles))
}

// complete sends one chat-completion request and returns the first choice's
// content. Single attempt, no retry.
func (c *openAI) complete(prompt string) (string, error) {
	type chatReq struct {
		Model       string              `json:"model"`
		Messages    []map[string]string `json:"messages"`
		Temperature float64             `json:"temperature"`
	}
	reqBody := chatReq{
		Model: c.model,
		Messages: []map[string]string{
			{"role": "system", "content": "You are a learning assistant. Reply ONLY with valid JSON, no prose, no markdown."},
			{"role": "user", "content": prompt},
		},
		Temperature: 0.2,
	}

	b, _ := json.Marshal(reqBody)
	req, err := http.NewRequest("POST", strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d", ErrGenerationFailed, resp.StatusCode)
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", ErrGenerationFailed)
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("%w: empty content", ErrGenerationFailed)
	}
	return content, nil
}

func renderRoadmapPrompt(goal, level string, totalDays int, completedTopics []string, kbCtx string) string {
	known := ""
	if len(completedTopics) > 0 {
		known = fmt.Sprintf("They already know: %s.\n", strings.Join(completedTopics, ", "))
	}
	notes := ""
	if kbCtx != "" {
		notes = fmt.Sprintf("\nREFERENCE NOTES (use for grounding, do not copy verbatim):\n%s\n", kbCtx)
	}
	return fmt.Sprintf(`Create a study roadmap for the goal: %q.
The user's proficiency level is: %s.
They want to finish in %d days.
%s
Return ONLY a JSON array. Each element must be:
{"title":"...","description":"short summary of what to learn/do","dueDay":N}
where dueDay is an integer from 1 to %d.
%s`, goal, level, totalDays, known, totalDays, notes)
}

func renderGraphPrompt(goal string, taskTitles []string) string {
	return fmt.Sprintf(`For the study goal %q the roadmap has these tasks:
- %s

Build a prerequisite dependency graph between these tasks.
Use ONLY the task titles above; do not invent new topics.
Return ONLY JSON shaped exactly like:
{"nodes":[{"id":"n1","title":"<task title>","description":"...","difficulty":"easy|medium|hard","estimatedHours":2}],
 "edges":[{"from":"n1","to":"n2","relationship":"prerequisite"}]}`,
		goal, strings.Join(taskTitles, "\n- "))
}
