package typf

// Context is the traveling envelope a pipeline invocation carries through
// its stages (C7): the caller's inputs, plus each stage's output as it
// completes. A Context belongs to exactly one invocation and is never
// shared across goroutines or reused across calls.
type Context struct {
	Text          string
	Font          Font
	ShapingParams ShapingParams
	RenderParams  RenderParams

	// Shaper, Renderer, and Exporter are the stage backends this
	// invocation ran with, populated by Executor.Run. Exporter is nil when
	// the executor was built without one.
	Shaper   Shaper
	Renderer Renderer
	Exporter Exporter

	Shaped   *ShapingResult
	Rendered *RenderOutput
	Exported *ExportedFile
}

// Executor runs the fixed shape -> render -> (export) pipeline over a
// Context (C8). It holds shareable backend references; construct one with
// ExecutorBuilder.
type Executor struct {
	shaper   Shaper
	renderer Renderer
	exporter Exporter
}

// ExecutorBuilder assembles an Executor. A shaper and renderer are required;
// the exporter is optional — callers that only need the render output can
// omit it.
type ExecutorBuilder struct {
	shaper   Shaper
	renderer Renderer
	exporter Exporter
}

// NewExecutorBuilder starts a fresh builder.
func NewExecutorBuilder() *ExecutorBuilder {
	return &ExecutorBuilder{}
}

func (b *ExecutorBuilder) WithShaper(s Shaper) *ExecutorBuilder {
	b.shaper = s
	return b
}

func (b *ExecutorBuilder) WithRenderer(r Renderer) *ExecutorBuilder {
	b.renderer = r
	return b
}

func (b *ExecutorBuilder) WithExporter(e Exporter) *ExecutorBuilder {
	b.exporter = e
	return b
}

// Build validates stage presence and returns the ready-to-run Executor.
// Missing shaper or renderer is a configuration error (spec §4.5), never a
// panic.
func (b *ExecutorBuilder) Build() (*Executor, error) {
	if b.shaper == nil {
		return nil, &PipelineError{Kind: PipelineBuilderMissingStage, Err: errMissingShaper}
	}
	if b.renderer == nil {
		return nil, &PipelineError{Kind: PipelineBuilderMissingStage, Err: errMissingRenderer}
	}
	return &Executor{shaper: b.shaper, renderer: b.renderer, exporter: b.exporter}, nil
}

var (
	errMissingShaper   = pipelineConfigError("executor requires a shaper")
	errMissingRenderer = pipelineConfigError("executor requires a renderer")
)

type pipelineConfigError string

func (e pipelineConfigError) Error() string { return string(e) }

// Run executes one (text, font, shaping-params, render-params) invocation
// to completion: shape, then render, then export if an exporter was
// configured. Each stage's error is returned unchanged, carrying its own
// stage-identifying Kind/Backend context (spec §4.5, Testable Property 10).
// There is no retry and no partial recovery: the first failing stage
// aborts the run.
func (e *Executor) Run(text string, font Font, shapingParams ShapingParams, renderParams RenderParams) (*Context, error) {
	ctx := &Context{
		Text:          text,
		Font:          font,
		ShapingParams: shapingParams,
		RenderParams:  renderParams,
		Shaper:        e.shaper,
		Renderer:      e.renderer,
		Exporter:      e.exporter,
	}

	shaped, err := e.shaper.Shape(text, font, shapingParams)
	if err != nil {
		return ctx, err
	}
	ctx.Shaped = &shaped

	rendered, err := e.renderer.Render(shaped, font, renderParams)
	if err != nil {
		return ctx, err
	}
	ctx.Rendered = &rendered

	if e.exporter == nil {
		return ctx, nil
	}

	exported, err := e.exporter.Export(rendered)
	if err != nil {
		return ctx, err
	}
	ctx.Exported = &exported
	return ctx, nil
}
