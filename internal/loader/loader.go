package loader

import (
	"context"
	"fmt"
	"log"

	"thyroidrisk/adapters/datareadiness/synthesizer"
	"thyroidrisk/adapters/excel"
	"thyroidrisk/domain/dataset"
	"thyroidrisk/internal/config"
	"thyroidrisk/internal/errors"
)

// Notice texts shown on the dashboard
const (
	MsgLoadedCleaned  = "Loaded cleaned dataset successfully!"
	MsgLoadedOriginal = "Loaded original dataset successfully!"
	MsgCreatingSample = "Data files not found. Creating sample data for demonstration."
	msgLoadErrorFmt   = "Error loading data: %s"
)

// Loader reads the Record Table from the primary file, then the fallback
// file, then falls back to generated sample data. Only a missing file is
// recovered from; any other failure ends the load.
type Loader struct {
	Primary  string
	Fallback string
	Sample   synthesizer.SynthesisConfig
	Sink     NoticeSink
}

// New builds a loader from application configuration
func New(cfg config.DataConfig, sink NoticeSink) *Loader {
	return &Loader{
		Primary:  cfg.PrimaryFile,
		Fallback: cfg.FallbackFile,
		Sample:   synthesizer.SynthesisConfig{Rows: cfg.SampleRows, Seed: cfg.SampleSeed},
		Sink:     sink,
	}
}

// WithSink returns a copy of the loader that reports to sink
func (l *Loader) WithSink(sink NoticeSink) *Loader {
	clone := *l
	clone.Sink = sink
	return &clone
}

// Load returns the table or an error with code LOAD_FAILED
func (l *Loader) Load(ctx context.Context) (*dataset.Table, error) {
	table, err := l.load(ctx)
	if err != nil {
		l.notify(LevelError, fmt.Sprintf(msgLoadErrorFmt, err.Error()))
		return nil, errors.LoadFailed(err)
	}
	return table, nil
}

func (l *Loader) load(ctx context.Context) (*dataset.Table, error) {
	attempts := []struct {
		path    string
		success string
	}{
		{l.Primary, MsgLoadedCleaned},
		{l.Fallback, MsgLoadedOriginal},
	}

	for _, attempt := range attempts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if attempt.path == "" {
			continue
		}

		table, err := excel.NewDataReader(attempt.path).ReadTable()
		if err == nil {
			l.notify(LevelSuccess, attempt.success)
			return table, nil
		}
		if !errors.IsMissingFile(err) {
			return nil, err
		}
		log.Printf("[Loader] %s not found, trying next source", attempt.path)
	}

	l.notify(LevelError, MsgCreatingSample)
	return synthesizer.NewSampleGenerator(l.Sample).Generate()
}

func (l *Loader) notify(level NoticeLevel, message string) {
	if l.Sink != nil {
		l.Sink.Notify(Notice{Level: level, Message: message})
	}
}
