package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"

	"github.com/yumyai/taxaboard/pkg/model"
)

// Classifier runs the taxonomic classification pipeline over an uploaded
// sequence file. The classification algorithm itself is an external
// dependency; this repository only consumes its output.
type Classifier interface {
	Process(ctx context.Context, path string, filename string) (*model.AnalysisResult, error)
}

// ExecClassifier shells out to a classifier command that prints the analysis
// result as JSON on stdout. The uploaded file path is appended as the final
// argument:
//
//	taxaformer classify /tmp/upload-123.fasta
type ExecClassifier struct {
	Command string
	Args    []string
}

func NewExecClassifier(command string, args ...string) *ExecClassifier {
	return &ExecClassifier{Command: command, Args: args}
}

func (c *ExecClassifier) Process(ctx context.Context, path string, filename string) (*model.AnalysisResult, error) {

	args := append(append([]string{}, c.Args...), path)
	cmd := exec.CommandContext(ctx, c.Command, args...)

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("classifier failed on %s: %w - %s", filename, err, exitErr.Stderr)
		}
		return nil, fmt.Errorf("classifier failed on %s: %w", filename, err)
	}

	var result model.AnalysisResult
	if err := json.Unmarshal(output, &result); err != nil {
		return nil, fmt.Errorf("classifier output for %s is not valid JSON: %w", filename, err)
	}

	if result.Metadata == nil {
		result.Metadata = map[string]any{}
	}
	if _, ok := result.Metadata["sampleName"]; !ok {
		result.Metadata["sampleName"] = filename
	}
	result.Metadata["totalSequences"] = len(result.Sequences)

	return &result, nil
}
