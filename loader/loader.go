// Package loader fetches the two optimizer-produced JSON documents and
// assembles them into an immutable model.Dataset. The two fetches run
// concurrently and fail as a unit: a dataset is either complete or absent.
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"nanodash/model"
)

// Relative names of the two documents under a source base.
const (
	ExperimentsFile     = "experiments.json"
	RecommendationsFile = "recommendations.json"
)

// Source resolves a named document to its raw bytes.
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
	// Base describes the source for display ("/data" or an URL).
	Base() string
}

// NewSource returns an HTTP source for http(s) bases and a directory
// source otherwise.
func NewSource(base string, timeout time.Duration) Source {
	if strings.HasPrefix(base, "http://") || strings.HasPrefix(base, "https://") {
		return &httpSource{
			base:   strings.TrimRight(base, "/"),
			client: &http.Client{Timeout: timeout},
		}
	}
	return &fileSource{dir: base}
}

type fileSource struct {
	dir string
}

func (s *fileSource) Base() string { return s.dir }

func (s *fileSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(filepath.Join(s.dir, name))
}

type httpSource struct {
	base   string
	client *http.Client
}

func (s *httpSource) Base() string { return s.base }

func (s *httpSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.base+"/"+name, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &statusError{code: resp.StatusCode}
	}
	return io.ReadAll(resp.Body)
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.code)
}

// experimentsDoc and recommendationsDoc mirror the on-disk document shapes.
// A missing key decodes to a nil slice; an empty payload is a valid load.
type experimentsDoc struct {
	Experiments []model.Experiment `json:"experiments"`
}

type recommendationsDoc struct {
	Recommendations []model.Recommendation `json:"recommendations"`
}

// Load fetches both documents concurrently and joins the results.
// Either failure aborts the whole load with a *model.LoadError; partial
// datasets are never returned.
func Load(ctx context.Context, src Source) (*model.Dataset, error) {
	var (
		exps experimentsDoc
		recs recommendationsDoc
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return fetchInto(ctx, src, ExperimentsFile, "experiments", &exps)
	})
	g.Go(func() error {
		return fetchInto(ctx, src, RecommendationsFile, "recommendations", &recs)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ds := &model.Dataset{
		Experiments:     exps.Experiments,
		Recommendations: recs.Recommendations,
		LoadedAt:        time.Now(),
	}
	if ds.Experiments == nil {
		ds.Experiments = []model.Experiment{}
	}
	if ds.Recommendations == nil {
		ds.Recommendations = []model.Recommendation{}
	}
	return ds, nil
}

func fetchInto(ctx context.Context, src Source, name, label string, v any) error {
	data, err := src.Fetch(ctx, name)
	if err != nil {
		stage := model.LoadStageFetch
		if _, ok := err.(*statusError); ok {
			stage = model.LoadStageStatus
		}
		return &model.LoadError{Source: label, Stage: stage, Err: err}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &model.LoadError{Source: label, Stage: model.LoadStageParse, Err: err}
	}
	return nil
}
