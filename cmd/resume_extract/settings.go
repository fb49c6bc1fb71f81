package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/jonathan/resume-extractor/internal/config"
	"github.com/jonathan/resume-extractor/internal/llm"
	"github.com/jonathan/resume-extractor/internal/logging"
	"github.com/jonathan/resume-extractor/internal/models"
	"github.com/jonathan/resume-extractor/internal/pipeline"
)

// commonFlags are the model and storage flags shared by every command.
type commonFlags struct {
	configPath  string
	backend     string
	apiKey      string
	profile     string
	databaseURL string
	parallelism int
	region      string
	logLevel    string
	verbose     bool
}

// settings resolves flags over the config file over the environment.
func (f commonFlags) settings(env config.Config) (config.Config, error) {
	cfg := config.Config{
		Backend:       f.backend,
		APIKey:        f.apiKey,
		Profile:       f.profile,
		DatabaseURL:   f.databaseURL,
		Parallelism:   f.parallelism,
		DefaultRegion: f.region,
		LogLevel:      f.logLevel,
		Verbose:       f.verbose,
	}

	if f.configPath != "" {
		fileCfg, err := config.LoadConfig(f.configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		if err := fileCfg.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
		cfg.Verbose = cfg.Verbose || fileCfg.Verbose
	}
	cfg = cfg.MergeWithDefaults(env)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	if cfg.EffectiveBackend() == config.BackendGemini && cfg.APIKey == "" {
		return config.Config{}, fmt.Errorf("API key is required for the gemini backend (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}
	return cfg, nil
}

func (f *commonFlags) register(cmd *pflag.FlagSet) {
	cmd.StringVar(&f.configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	cmd.StringVar(&f.backend, "backend", "", "Model backend: rules or gemini (defaults to RESUME_BACKEND, then rules)")
	cmd.StringVar(&f.apiKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	cmd.StringVar(&f.profile, "profile", "", "Path to YAML extraction profile")
	cmd.StringVar(&f.region, "region", "", "Default phone region, e.g. MY")
	cmd.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.BoolVarP(&f.verbose, "verbose", "v", false, "Print detailed debug information")
}

func loadProfile(cfg config.Config) (*config.Profile, error) {
	profile := config.DefaultProfile()
	if cfg.Profile != "" {
		loaded, err := config.LoadProfile(cfg.Profile)
		if err != nil {
			return nil, fmt.Errorf("failed to load profile: %w", err)
		}
		profile = loaded
	}
	if cfg.DefaultRegion != "" {
		profile.DefaultRegion = strings.ToUpper(cfg.DefaultRegion)
	}
	return profile, nil
}

func newRegistry(cfg config.Config, profile *config.Profile) *models.Registry {
	if cfg.EffectiveBackend() == config.BackendGemini {
		return models.NewRegistry(config.BackendGemini, models.GeminiLoader(profile, llm.DefaultConfig(), cfg.APIKey))
	}
	return models.NewRegistry(config.BackendRules, models.RulesLoader(profile))
}

func newLogger(cfg config.Config) zerolog.Logger {
	level := cfg.LogLevel
	if level == "" && !cfg.Verbose {
		level = "warn"
	}
	return logging.Init(logging.Config{Level: level, Format: cfg.LogFormat})
}

// runtime bundles what a command needs to run the pipeline.
type runtime struct {
	cfg      config.Config
	profile  *config.Profile
	registry *models.Registry
	logger   zerolog.Logger
}

func newRuntime(flags commonFlags) (*runtime, error) {
	cfg, err := flags.settings(config.FromEnv())
	if err != nil {
		return nil, err
	}
	profile, err := loadProfile(cfg)
	if err != nil {
		return nil, err
	}
	return &runtime{
		cfg:      cfg,
		profile:  profile,
		registry: newRegistry(cfg, profile),
		logger:   newLogger(cfg),
	}, nil
}

func (r *runtime) pipeline(onProgress pipeline.ProgressCallback) (*pipeline.Pipeline, error) {
	return pipeline.New(r.registry, r.profile, r.logger, pipeline.Options{
		Parallelism: r.cfg.Parallelism,
		OnProgress:  onProgress,
	})
}

func (r *runtime) close() {
	if err := r.registry.Close(); err != nil {
		r.logger.Warn().Err(err).Msg("failed to release model handles")
	}
}
