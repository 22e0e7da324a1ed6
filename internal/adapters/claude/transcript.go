package claude

import (
	"bufio"
	"encoding/json"
	"os"

	"barra/internal/domain"
	"barra/internal/logging"
	"barra/internal/ports"
)

// TranscriptFile reads a Claude session JSONL file and exposes it as a
// transcript source. The file is re-read on every Turns call so renders
// always observe the current transcript, per the freshness contract.
type TranscriptFile struct {
	path       string
	model      domain.Model
	workingDir string
}

// Verify interface compliance at compile time
var _ ports.TranscriptSource = (*TranscriptFile)(nil)

// NewTranscriptFile creates a transcript source over a session JSONL file.
func NewTranscriptFile(path string, model domain.Model, workingDir string) *TranscriptFile {
	return &TranscriptFile{
		path:       path,
		model:      model,
		workingDir: workingDir,
	}
}

// Model implements ports.TranscriptSource.
func (t *TranscriptFile) Model() domain.Model {
	return t.model
}

// WorkingDir implements ports.TranscriptSource.
func (t *TranscriptFile) WorkingDir() string {
	return t.workingDir
}

// Turns parses the session file into ordered turns. Unreadable files and
// malformed lines degrade to fewer turns, never to an error: the worst case
// for the statusline is zero metrics, not a crash.
func (t *TranscriptFile) Turns() []domain.Turn {
	file, err := os.Open(t.path)
	if err != nil {
		logging.Logger.Debug("Failed to open transcript", "path", t.path, "error", err)
		return nil
	}
	defer file.Close()

	var turns []domain.Turn

	scanner := bufio.NewScanner(file)
	// Tool results can produce very long lines
	buf := make([]byte, 0, 1024*1024)
	scanner.Buffer(buf, 10*1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var entry jsonlEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		if entry.Type != domain.RoleUser && entry.Type != domain.RoleAssistant {
			continue
		}

		turns = append(turns, entry.toTurn())
	}

	if err := scanner.Err(); err != nil {
		logging.Logger.Debug("Transcript scan failed", "path", t.path, "error", err)
	}

	return turns
}

// jsonlEntry is a single line of the session file.
type jsonlEntry struct {
	Type    string        `json:"type"`
	CostUSD float64       `json:"costUSD"`
	Message *jsonlMessage `json:"message"`
}

type jsonlMessage struct {
	StopReason string          `json:"stop_reason"`
	Content    json.RawMessage `json:"content"`
	Usage      *jsonlUsage     `json:"usage"`
}

type jsonlUsage struct {
	InputTokens              int `json:"input_tokens"`
	OutputTokens             int `json:"output_tokens"`
	CacheCreationInputTokens int `json:"cache_creation_input_tokens"`
	CacheReadInputTokens     int `json:"cache_read_input_tokens"`
}

type jsonlBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func (e *jsonlEntry) toTurn() domain.Turn {
	turn := domain.Turn{
		Role:  e.Type,
		Usage: domain.Usage{CostUSD: e.CostUSD},
	}
	if e.Message == nil {
		return turn
	}

	turn.StopReason = e.Message.StopReason
	if e.Message.Usage != nil {
		turn.Usage.InputTokens = e.Message.Usage.InputTokens
		turn.Usage.OutputTokens = e.Message.Usage.OutputTokens
		turn.Usage.CacheCreation = e.Message.Usage.CacheCreationInputTokens
		turn.Usage.CacheRead = e.Message.Usage.CacheReadInputTokens
	}
	turn.Content = parseContent(e.Message.Content)

	return turn
}

// parseContent accepts both content shapes the session format uses: a plain
// string or an array of typed blocks.
func parseContent(raw json.RawMessage) []domain.ContentBlock {
	if len(raw) == 0 {
		return nil
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return []domain.ContentBlock{{Type: "text", Text: text}}
	}

	var blocks []jsonlBlock
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return nil
	}

	content := make([]domain.ContentBlock, 0, len(blocks))
	for _, block := range blocks {
		content = append(content, domain.ContentBlock{
			Type: block.Type,
			Text: block.Text,
		})
	}
	return content
}
