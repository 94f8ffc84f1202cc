// Package resumate assembles the resume engine for embedding: configuration,
// the persistent document store, the template registry, the live preview
// controller, and the collaborator services (analysis, suggestions, PDF
// export, HR screening). Hosts construct an App and drive everything through
// it; the internal packages stay wiring details.
package resumate

import (
	"context"
	"os"

	"github.com/Koushiik20/ResuMate/internal/analysis"
	"github.com/Koushiik20/ResuMate/internal/config"
	"github.com/Koushiik20/ResuMate/internal/export"
	"github.com/Koushiik20/ResuMate/internal/llm"
	"github.com/Koushiik20/ResuMate/internal/observability"
	"github.com/Koushiik20/ResuMate/internal/preview"
	"github.com/Koushiik20/ResuMate/internal/rendering"
	"github.com/Koushiik20/ResuMate/internal/screening"
	"github.com/Koushiik20/ResuMate/internal/store"
	"github.com/Koushiik20/ResuMate/internal/suggest"
	"github.com/Koushiik20/ResuMate/internal/types"
	"github.com/Koushiik20/ResuMate/internal/validation"
)

// Aliases exposing the engine's data types to embedders.
type (
	Config = config.Config

	Document     = types.ResumeDocument
	PersonalInfo = types.PersonalInfo
	Experience   = types.Experience
	Education    = types.Education
	Skill        = types.Skill

	Store             = store.Store
	PersonalInfoPatch = store.PersonalInfoPatch
	ExperiencePatch   = store.ExperiencePatch
	EducationPatch    = store.EducationPatch
	SkillPatch        = store.SkillPatch

	Surface        = preview.Surface
	ResumeAnalysis = types.ResumeAnalysis
	Candidate      = types.Candidate
	ExportJob      = export.Job
)

// ErrLastEntry is returned when a removal would empty a collection
var ErrLastEntry = store.ErrLastEntry

// LoadConfigFile loads configuration from a JSON file
func LoadConfigFile(path string) (*Config, error) {
	return config.LoadConfig(path)
}

// ConfigFromEnv builds configuration from the environment (.env honored)
func ConfigFromEnv() *Config {
	return config.FromEnv()
}

// CheckReady reports whether the document has the required personal info
// (full name, valid email) for analysis and export.
func CheckReady(doc *Document) error {
	return validation.CheckReady(doc)
}

// App is a fully wired engine instance for one user session
type App struct {
	cfg        Config
	store      *store.Store
	registry   *rendering.Registry
	controller *preview.Controller
	analyzer   *analysis.Analyzer
	screener   *screening.Screener
	exporter   export.Exporter
	suggester  *suggest.Service
	llmClient  llm.Client
	printer    *observability.Printer
}

// New wires an App from the configuration. Empty config fields fall back to
// defaults, so New(resumate.Config{}) yields a working instance persisting
// to the per-user default path.
func New(cfg Config) (*App, error) {
	merged := cfg.MergeWithDefaults(Config{})
	if err := merged.Validate(); err != nil {
		return nil, err
	}

	st := store.New(store.NewFileStorage(merged.StoragePath))

	registry, err := rendering.NewRegistry()
	if err != nil {
		return nil, err
	}

	app := &App{
		cfg:        merged,
		store:      st,
		registry:   registry,
		controller: preview.NewController(st, registry),
		analyzer:   analysis.NewAnalyzer(),
		screener:   screening.NewScreener(),
		exporter:   export.NewPDFExporter(merged.ChromePath),
	}
	if merged.Verbose {
		app.printer = observability.NewPrinter(os.Stdout)
	}
	return app, nil
}

// Close releases resources held by the app
func (a *App) Close() error {
	if a.llmClient != nil {
		return a.llmClient.Close()
	}
	return nil
}

// Store returns the document store; all editing goes through it
func (a *App) Store() *Store {
	return a.store
}

// Preview returns the current rendered preview surface
func (a *App) Preview() Surface {
	return a.controller.Surface()
}

// TemplateIDs returns the available template identifiers in sorted order
func (a *App) TemplateIDs() []string {
	return a.registry.IDs()
}

// Analyzer returns the analysis service, exposed so hosts can tune the
// simulated processing delay.
func (a *App) Analyzer() *analysis.Analyzer {
	return a.analyzer
}

// Screener returns the HR screening service
func (a *App) Screener() *screening.Screener {
	return a.screener
}

// Analyze scores the current preview surface against a target role. The
// document must pass the readiness gate first.
func (a *App) Analyze(ctx context.Context, role string) (*ResumeAnalysis, error) {
	if err := validation.CheckReady(a.store.Document()); err != nil {
		return nil, err
	}

	result, err := a.analyzer.Analyze(ctx, a.controller.Surface().HTML, role)
	if err != nil {
		return nil, err
	}
	if a.printer != nil {
		a.printer.PrintAnalysis(result, role)
	}
	return result, nil
}

// Suggest generates an improvement paragraph for an analysis. The Gemini
// client is created on first use; a missing API key surfaces as a
// configuration error and only disables this feature. The bool reports
// whether fallback content is being shown.
func (a *App) Suggest(ctx context.Context, report *ResumeAnalysis, role string) (string, bool, error) {
	if a.suggester == nil {
		client, err := llm.NewGeminiClient(ctx, a.cfg.APIKey, llm.DefaultModel)
		if err != nil {
			return "", false, err
		}
		a.llmClient = client
		a.suggester = suggest.NewService(client)
	}

	text, fallback := a.suggester.Generate(ctx, report, role)
	if a.printer != nil {
		a.printer.PrintSuggestion(text, fallback)
	}
	return text, fallback, nil
}

// ExportPDF starts a background export of the current preview surface and
// returns the job handle. The document must pass the readiness gate first.
func (a *App) ExportPDF() (*ExportJob, error) {
	doc := a.store.Document()
	if err := validation.CheckReady(doc); err != nil {
		return nil, err
	}
	return export.StartJob(a.exporter, a.controller.Surface().HTML, doc.PersonalInfo.FullName), nil
}

// Screen runs a screening pass over the candidate pool for the role
func (a *App) Screen(ctx context.Context, role string) ([]Candidate, error) {
	candidates, err := a.screener.Screen(ctx, role)
	if err != nil {
		return nil, err
	}
	if a.printer != nil {
		a.printer.PrintCandidates(candidates)
	}
	return candidates, nil
}
