package llm

import (
	_ "embed"
	"strings"
)

var (
	//go:embed prompts/document_summary.txt
	documentSummaryPrompt string
	//go:embed prompts/project_overview.txt
	projectOverviewPrompt string
)

// DocumentSummaryPrompt is the fixed instruction for per-document ingestion.
func DocumentSummaryPrompt() string {
	return strings.TrimSpace(documentSummaryPrompt)
}

// ProjectOverviewPrompt is the fixed instruction for project-level aggregation.
func ProjectOverviewPrompt() string {
	return strings.TrimSpace(projectOverviewPrompt)
}
