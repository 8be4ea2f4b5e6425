// Package pipeline drives one symbol upload from validation to the HTTP request.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"

	"go.trai.ch/symup/internal/core/domain"
	"go.trai.ch/symup/internal/core/ports"
	"go.trai.ch/symup/internal/engine/assembler"
	"go.trai.ch/symup/internal/engine/taskgroup"
	"go.trai.ch/zerr"
)

// Result describes how far a run got.
type Result struct {
	// Stage is StageDone or StageFailed once Run returns.
	Stage domain.Stage
	// FailedAt is the stage that aborted the run, empty on success.
	FailedAt domain.Stage
	// Stages lists every stage entered, in order.
	Stages []domain.Stage
	// Artifacts are the uploaded archives in part order.
	Artifacts []*domain.PackagedArtifact
	// Skipped lists bundles dropped because they could not be inspected.
	Skipped []string
	// Request is the request as sent, after identifier merging.
	Request domain.UploadRequest
}

// Pipeline orchestrates discovery, packaging, and upload of symbol files.
type Pipeline struct {
	resolver    ports.IdentifierResolver
	locator     ports.BundleLocator
	inspector   ports.BinaryInspector
	packager    ports.Packager
	uploader    ports.Uploader
	telemetry   ports.Telemetry
	logger      ports.Logger
	parallelism int
}

// NewPipeline creates a Pipeline packaging with runtime.NumCPU() parallel tasks.
func NewPipeline(
	resolver ports.IdentifierResolver,
	locator ports.BundleLocator,
	inspector ports.BinaryInspector,
	packager ports.Packager,
	uploader ports.Uploader,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Pipeline {
	return &Pipeline{
		resolver:    resolver,
		locator:     locator,
		inspector:   inspector,
		packager:    packager,
		uploader:    uploader,
		telemetry:   telemetry,
		logger:      logger,
		parallelism: runtime.NumCPU(),
	}
}

// WithParallelism sets the maximum number of bundles packaged at once.
func (p *Pipeline) WithParallelism(n int) *Pipeline {
	p.parallelism = n
	return p
}

// Check is a precondition evaluated after the request validates.
type Check func(req domain.UploadRequest) error

// run carries the state of one invocation.
type run struct {
	req    domain.UploadRequest
	checks []Check
	result *Result
}

// validate runs in StageValidating: required fields and the source path first, then the checks.
func (r *run) validate() error {
	if err := validate(r.req); err != nil {
		return err
	}
	for _, check := range r.checks {
		if err := check(r.req); err != nil {
			return err
		}
	}
	return nil
}

func (r *run) enter(stage domain.Stage) {
	r.result.Stage = stage
	r.result.Stages = append(r.result.Stages, stage)
}

func (r *run) fail(err error) (*Result, error) {
	r.result.FailedAt = r.result.Stage
	r.result.Stage = domain.StageFailed
	return r.result, err
}

// Run executes the pipeline for req. The returned Result is never nil.
// Checks run once req has validated, after identifier resolution for apple.
func (p *Pipeline) Run(ctx context.Context, req domain.UploadRequest, checks ...Check) (*Result, error) {
	r := &run{req: req, checks: checks, result: &Result{}}

	if req.Platform == domain.PlatformApple {
		return p.runApple(ctx, r)
	}
	return p.runAndroid(ctx, r)
}

func (p *Pipeline) runAndroid(ctx context.Context, r *run) (*Result, error) {
	r.enter(domain.StageValidating)
	if err := r.validate(); err != nil {
		return r.fail(err)
	}
	return p.upload(ctx, r, nil)
}

func (p *Pipeline) runApple(ctx context.Context, r *run) (*Result, error) {
	// Resolved identifiers may satisfy required fields, so they are merged before validation.
	r.enter(domain.StageResolvingIdentifiers)
	if r.req.Path != "" {
		if ids := p.resolver.Resolve(ctx, r.req.Path); ids != nil {
			r.req = r.req.WithIdentifiers(ids)
		}
	}

	r.enter(domain.StageValidating)
	if err := r.validate(); err != nil {
		return r.fail(err)
	}

	r.enter(domain.StageDiscovering)
	bundles, err := p.locator.Locate(ctx, r.req.Path, r.req.Platform)
	if err != nil {
		return r.fail(zerr.With(zerr.Wrap(err, "failed to discover bundles"), "path", r.req.Path))
	}
	if len(bundles) == 0 {
		return r.fail(zerr.With(zerr.Wrap(domain.ErrNoSymbolFiles, "no bundles found"), "path", r.req.Path))
	}
	p.logger.Info(fmt.Sprintf("found %d debug symbol bundles", len(bundles)))

	workDir, err := p.packager.Workspace()
	if err != nil {
		return r.fail(err)
	}
	defer func() {
		if err := p.packager.Cleanup(workDir); err != nil {
			p.logger.Warn(fmt.Sprintf("failed to clean up %s: %v", workDir, err))
		}
	}()

	r.enter(domain.StageInspecting)
	artifacts, skipped, err := p.packageAll(ctx, r, workDir, bundles)
	r.result.Skipped = skipped
	if err != nil {
		return r.fail(err)
	}
	if len(artifacts) == 0 {
		return r.fail(zerr.With(zerr.Wrap(domain.ErrNoSymbolFiles, "no bundle could be inspected"), "path", r.req.Path))
	}

	return p.upload(ctx, r, artifacts)
}

// packageAll inspects and packs every bundle in parallel.
// Bundles that cannot be inspected are skipped; any packaging failure aborts the batch.
// The run enters the packaging stage when the first bundle starts packing.
func (p *Pipeline) packageAll(
	ctx context.Context,
	r *run,
	workDir string,
	bundles []string,
) ([]*domain.PackagedArtifact, []string, error) {
	skippedSlots := make([]string, len(bundles))
	var packing sync.Once

	results, err := taskgroup.Run(ctx, p.parallelism, bundles,
		func(ctx context.Context, i int, bundle string) (*domain.PackagedArtifact, error) {
			vctx, vertex := p.telemetry.Record(ctx, "package "+bundle)

			info, err := p.inspector.Inspect(vctx, bundle)
			if err != nil {
				// A canceled batch is not a skip.
				if ctxErr := ctx.Err(); ctxErr != nil {
					vertex.Complete(ctxErr)
					return nil, ctxErr
				}
				p.logger.Warn(fmt.Sprintf("skipping %s: %v", bundle, err))
				vertex.Log(domain.LogLevelWarn, "skipped: "+err.Error())
				vertex.Complete(nil)
				skippedSlots[i] = bundle
				return nil, nil
			}
			p.logger.Debug(fmt.Sprintf("inspected %s: uuid=%s arch=%s", bundle, info.UUID, info.Arch))

			packing.Do(func() { r.enter(domain.StagePackaging) })
			artifact, err := p.packager.Pack(vctx, workDir, info)
			vertex.Complete(err)
			if err != nil {
				if !errors.Is(err, domain.ErrPackagingFailed) {
					err = zerr.With(zerr.Wrap(domain.ErrPackagingFailed, err.Error()), "path", bundle)
				}
				return nil, err
			}
			return artifact, nil
		})
	skipped := compact(skippedSlots)
	if err != nil {
		return nil, skipped, err
	}

	artifacts := make([]*domain.PackagedArtifact, 0, len(results))
	for _, a := range results {
		if a != nil {
			artifacts = append(artifacts, a)
		}
	}
	return artifacts, skipped, nil
}

func (p *Pipeline) upload(ctx context.Context, r *run, artifacts []*domain.PackagedArtifact) (*Result, error) {
	r.enter(domain.StageAssembling)
	opts, err := assembler.Assemble(r.req, artifacts)
	if err != nil {
		return r.fail(err)
	}

	r.enter(domain.StageUploading)
	vctx, vertex := p.telemetry.Record(ctx, "upload")
	err = p.uploader.Upload(vctx, r.req.DestinationURL(), opts)
	vertex.Complete(err)
	if err != nil {
		return r.fail(err)
	}

	r.result.Artifacts = artifacts
	r.result.Request = r.req
	r.enter(domain.StageDone)
	return r.result, nil
}

// validate checks required fields and that the source path exists.
func validate(req domain.UploadRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if _, err := os.Stat(req.Path); err != nil {
		return zerr.With(domain.InvalidArgument("path", req.Path), "reason", err.Error())
	}
	return nil
}

func compact(slots []string) []string {
	var out []string
	for _, s := range slots {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
