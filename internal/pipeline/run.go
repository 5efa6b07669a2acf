// Package pipeline provides the high-level orchestration for the resume generation process.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jonathan/resume-generator/internal/fileutil"
	"github.com/jonathan/resume-generator/internal/pipeline/steps"
	"github.com/jonathan/resume-generator/internal/profile"
	"github.com/jonathan/resume-generator/internal/rendering"
	"github.com/jonathan/resume-generator/internal/types"
)

const (
	// DefaultInputPath is the profile read when no input is given
	DefaultInputPath = "data.json"
	// DefaultOutputPath is the document written when no output is given
	DefaultOutputPath = "resume.tex"
	// DefaultQRCodePath is the QR image written when no path is given
	DefaultQRCodePath = rendering.DefaultQRCodeFile

	documentPerm = 0644
)

// Progress event categories
const (
	CategoryInfo    = "info"
	CategoryWarning = "warning"
	CategoryDebug   = "debug"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// CodeImageGenerator writes a scannable image encoding url to path
type CodeImageGenerator interface {
	Generate(url, path string) error
}

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	InputPath  string
	OutputPath string
	QRCodePath string
	// QRGenerator is required when the profile has a website URL
	QRGenerator CodeImageGenerator
	// Logger receives debug records; nil discards them
	Logger     *slog.Logger
	OnProgress ProgressCallback
}

// Result describes what a run produced
type Result struct {
	RunID           uuid.UUID
	InputPath       string
	OutputPath      string
	QRCodePath      string
	QRCodeGenerated bool
	Profile         *types.Profile
	Warnings        []string
	// Steps lists every step in run order with its final status
	Steps []StepOutcome
}

// StepOutcome is the final status of one step
type StepOutcome struct {
	Step   string
	Status string
}

// runner carries per-run state
type runner struct {
	opts     RunOptions
	runID    uuid.UUID
	logger   *slog.Logger
	tracker  *steps.Tracker
	result   *Result
	document string
}

// Run loads the profile, generates the QR code when a website URL is present,
// renders the LaTeX document and writes it. Any error aborts the run.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	opts = withDefaults(opts)

	r := &runner{
		opts:    opts,
		runID:   uuid.New(),
		tracker: steps.NewTracker(),
	}
	r.logger = opts.Logger
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	r.logger = r.logger.With("run_id", r.runID.String())
	r.result = &Result{
		RunID:      r.runID,
		InputPath:  opts.InputPath,
		OutputPath: opts.OutputPath,
		QRCodePath: opts.QRCodePath,
	}

	// A path the document cannot embed fails before anything is written
	if err := rendering.CheckQRCodeFile(types.Trusted(opts.QRCodePath)); err != nil {
		return nil, fmt.Errorf("invalid QR code path: %w", err)
	}

	for _, step := range steps.Order {
		if err := r.begin(ctx, step); err != nil {
			return nil, err
		}
		if err := r.runStep(step); err != nil {
			return nil, err
		}
	}

	r.result.QRCodeGenerated = r.tracker.Completed(steps.StepGenerateQR)
	for _, step := range steps.Order {
		r.result.Steps = append(r.result.Steps, StepOutcome{
			Step:   step,
			Status: r.tracker.Status(step),
		})
	}

	return r.result, nil
}

// runStep executes one step and records it in the tracker
func (r *runner) runStep(step string) error {
	opts := r.opts

	switch step {
	case steps.StepLoadProfile:
		p, err := profile.Load(opts.InputPath)
		if err != nil {
			return fmt.Errorf("loading profile failed: %w", err)
		}
		r.result.Profile = p
		r.logger.Debug("profile loaded",
			"path", opts.InputPath,
			"companies", len(p.Experience),
			"positions", p.PositionCount())
		r.emit(step, CategoryDebug, fmt.Sprintf("Loaded profile from %s", opts.InputPath), p)

	case steps.StepGenerateQR:
		// The QR code runs before the document that references it
		personal := r.result.Profile.Personal
		if !personal.HasWebsite() {
			r.tracker.Skip(step)
			warning := fmt.Sprintf("no website URL in profile; %s is referenced but was not generated", opts.QRCodePath)
			r.result.Warnings = append(r.result.Warnings, warning)
			r.logger.Debug("QR code skipped", "reason", "no website URL")
			r.emit(step, CategoryWarning, warning, nil)
			return nil
		}
		if opts.QRGenerator == nil {
			return fmt.Errorf("QR code generation failed: no generator configured")
		}
		url := string(personal.WebsiteURL)
		if err := opts.QRGenerator.Generate(url, opts.QRCodePath); err != nil {
			return fmt.Errorf("QR code generation failed: %w", err)
		}
		r.logger.Debug("QR code written", "path", opts.QRCodePath, "url", url)
		r.emit(step, CategoryInfo, fmt.Sprintf("Generated QR code: %s", opts.QRCodePath), nil)

	case steps.StepRenderLaTeX:
		document, err := rendering.RenderLaTeX(r.result.Profile, rendering.RenderOptions{
			QRCodeFile: types.Trusted(opts.QRCodePath),
		})
		if err != nil {
			return fmt.Errorf("LaTeX rendering failed: %w", err)
		}
		r.document = document
		r.logger.Debug("document rendered", "bytes", len(document))

	case steps.StepWriteDocument:
		if err := fileutil.WriteFileAtomic(opts.OutputPath, []byte(r.document), documentPerm); err != nil {
			return fmt.Errorf("failed to write document: %w", err)
		}
		r.logger.Debug("document written", "path", opts.OutputPath)
		r.emit(step, CategoryInfo,
			fmt.Sprintf("Generated %s from %s", opts.OutputPath, opts.InputPath), nil)

	default:
		return fmt.Errorf("unknown step: %s", step)
	}

	r.tracker.Complete(step)
	return nil
}

// begin checks for cancellation and step ordering before a step runs
func (r *runner) begin(ctx context.Context, step string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("run cancelled before %s: %w", step, err)
	}
	if err := r.tracker.ValidateDependencies(step); err != nil {
		return err
	}
	r.logger.Debug("step started", "step", step)
	return nil
}

// emit calls the progress callback if configured
func (r *runner) emit(step, category, message string, content any) {
	if r.opts.OnProgress != nil {
		r.opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			RunID:    r.runID.String(),
			Content:  content,
		})
	}
}

func withDefaults(opts RunOptions) RunOptions {
	if opts.InputPath == "" {
		opts.InputPath = DefaultInputPath
	}
	if opts.OutputPath == "" {
		opts.OutputPath = DefaultOutputPath
	}
	if opts.QRCodePath == "" {
		opts.QRCodePath = DefaultQRCodePath
	}
	return opts
}
