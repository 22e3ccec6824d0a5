// AngelaMos | 2026
// invoker.go

package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"slices"
	"strings"
	"time"
)

var (
	ErrInvocation = errors.New("classifier invocation failed")
	ErrBadOutput  = errors.New("classifier produced no parseable output")
)

// Result is the top prediction extracted from one classifier run. Raw is the
// classifier's complete stdout payload, preserved byte-for-byte.
type Result struct {
	ClassName  string
	Confidence float64
	Raw        json.RawMessage
}

type resultEntry struct {
	ClassName  string   `json:"class_name"`
	Confidence *float64 `json:"confidence"`
}

// Invoker runs the external classifier, one process per call. The uploaded
// image path is appended as the final argument; stdout must be one JSON
// result object or an ordered array of them.
type Invoker struct {
	command string
	args    []string
	timeout time.Duration
	logger  *slog.Logger
}

func NewInvoker(
	command string,
	args []string,
	timeout time.Duration,
	logger *slog.Logger,
) *Invoker {
	return &Invoker{
		command: command,
		args:    slices.Clone(args),
		timeout: timeout,
		logger:  logger,
	}
}

// Classify spawns the classifier and waits for it to exit. The process is
// killed when the timeout elapses or the request context is canceled.
// Diagnostic output on stderr is logged but does not fail the run as long
// as stdout parses; a nonzero exit with parseable stdout is likewise
// accepted.
func (i *Invoker) Classify(
	ctx context.Context,
	imagePath string,
) (*Result, error) {
	runCtx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	argv := append(slices.Clone(i.args), imagePath)
	cmd := exec.CommandContext(runCtx, i.command, argv...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	runErr := cmd.Run()

	if stderr.Len() > 0 {
		i.logger.Warn("classifier stderr",
			"command", i.command,
			"output", truncate(stderr.String(), 2048),
		)
	}

	result, parseErr := parseOutput(stdout.Bytes())
	if parseErr == nil {
		i.logger.Info("classifier completed",
			"command", i.command,
			"class", result.ClassName,
			"confidence", result.Confidence,
			"duration_ms", time.Since(start).Milliseconds(),
			"exit_error", runErr != nil,
		)
		return result, nil
	}

	if runCtx.Err() != nil {
		return nil, fmt.Errorf(
			"classifier timed out after %s: %w",
			i.timeout,
			ErrInvocation,
		)
	}

	if runErr != nil {
		return nil, fmt.Errorf("run classifier: %v: %w", runErr, ErrInvocation)
	}

	return nil, fmt.Errorf("parse classifier output: %w", ErrBadOutput)
}

// parseOutput accepts either a single result object or an ordered array of
// them; the first element is the top prediction.
func parseOutput(raw []byte) (*Result, error) {
	payload := bytes.TrimSpace(raw)
	if len(payload) == 0 {
		return nil, fmt.Errorf("empty output")
	}

	var top resultEntry

	if payload[0] == '[' {
		var entries []resultEntry
		if err := json.Unmarshal(payload, &entries); err != nil {
			return nil, fmt.Errorf("decode result array: %w", err)
		}
		if len(entries) == 0 {
			return nil, fmt.Errorf("empty result array")
		}
		top = entries[0]
	} else {
		if err := json.Unmarshal(payload, &top); err != nil {
			return nil, fmt.Errorf("decode result object: %w", err)
		}
	}

	if top.ClassName == "" {
		return nil, fmt.Errorf("result missing class_name")
	}
	if top.Confidence == nil {
		return nil, fmt.Errorf("result missing confidence")
	}

	return &Result{
		ClassName:  top.ClassName,
		Confidence: *top.Confidence,
		Raw:        json.RawMessage(slices.Clone(payload)),
	}, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return strings.ToValidUTF8(s[:max], "") + "..."
}
