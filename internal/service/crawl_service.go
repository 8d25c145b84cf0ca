package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fuzumoe/watercrawl-datasource/internal/model"
	"github.com/fuzumoe/watercrawl-datasource/internal/repository"
	"github.com/fuzumoe/watercrawl-datasource/internal/watercrawl"
)

// Terminal crawl errors surfaced to the host.
var (
	// ErrJobFailed means the service reported the job as failed.
	ErrJobFailed = errors.New("crawl job failed")
	// ErrPollTimeout means the job did not reach a terminal status within the
	// polling bound. Reported distinctly, never as a silent truncation.
	ErrPollTimeout = errors.New("crawl job polling timed out")
)

// CrawlService runs one crawl job per invocation: submit, poll, map results.
type CrawlService interface {
	// Crawl submits the request and returns a finite stream of progress
	// messages. The stream ends with a terminal message (completed, failed,
	// or timeout) and is tied to one job; it cannot be restarted.
	Crawl(ctx context.Context, req *model.CrawlRequest) (<-chan model.CrawlMessage, error)
}

type crawlService struct {
	client       watercrawl.Client
	jobs         repository.CrawlJobRepository
	pollInterval time.Duration
	pollTimeout  time.Duration
	log          *zap.Logger
}

// NewCrawlService constructs a CrawlService.
func NewCrawlService(
	client watercrawl.Client,
	jobs repository.CrawlJobRepository,
	pollInterval, pollTimeout time.Duration,
	log *zap.Logger,
) CrawlService {
	if pollInterval <= 0 {
		pollInterval = 5 * time.Second
	}
	if pollTimeout <= 0 {
		pollTimeout = 300 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &crawlService{
		client:       client,
		jobs:         jobs,
		pollInterval: pollInterval,
		pollTimeout:  pollTimeout,
		log:          log,
	}
}

func (s *crawlService) Crawl(ctx context.Context, req *model.CrawlRequest) (<-chan model.CrawlMessage, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", watercrawl.ErrValidation, err.Error())
	}
	normalized := req.Normalize()

	pageOpts, err := pageOptions(&normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", watercrawl.ErrValidation, err.Error())
	}

	job, err := s.client.CreateCrawlRequest(ctx, normalized.URL, spiderOptions(&normalized), pageOpts)
	if err != nil {
		return nil, err
	}

	// History row; the crawl itself does not depend on it.
	if s.jobs != nil {
		if err := s.jobs.Create(model.JobFromRequest(job.UUID, &normalized)); err != nil {
			s.log.Warn("record crawl job", zap.String("uuid", job.UUID), zap.Error(err))
		}
	}

	total := job.Options.SpiderOptions.PageLimit
	if total <= 0 {
		total = normalized.Limit
	}

	msgs := make(chan model.CrawlMessage, 4)
	go s.monitor(ctx, job, total, msgs)
	return msgs, nil
}

// monitor polls the job to a terminal status, then fetches and maps results.
// The only suspension point is the wait between poll attempts.
func (s *crawlService) monitor(ctx context.Context, job *watercrawl.CrawlJob, total int, msgs chan<- model.CrawlMessage) {
	defer close(msgs)

	s.emit(ctx, msgs, model.CrawlMessage{Status: model.MessageProcessing, Total: total})

	deadline := time.Now().Add(s.pollTimeout)
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	cur := job
	running := false
	for {
		switch cur.Status {
		case model.StatusCompleted:
			s.complete(ctx, cur.UUID, total, msgs)
			return
		case model.StatusFailed:
			err := fmt.Errorf("%w: job %s", ErrJobFailed, cur.UUID)
			s.finish(cur.UUID, model.StatusFailed, 0, err.Error())
			s.emit(ctx, msgs, model.CrawlMessage{Status: model.MessageFailed, Total: total, Error: err.Error()})
			return
		case model.StatusRunning:
			if !running {
				running = true
				if s.jobs != nil {
					if err := s.jobs.UpdateStatus(cur.UUID, model.StatusRunning); err != nil {
						s.log.Warn("update crawl job status", zap.String("uuid", cur.UUID), zap.Error(err))
					}
				}
			}
		}

		if time.Now().After(deadline) {
			err := fmt.Errorf("%w after %s: job %s", ErrPollTimeout, s.pollTimeout, cur.UUID)
			s.finish(cur.UUID, model.StatusFailed, 0, err.Error())
			s.emit(ctx, msgs, model.CrawlMessage{Status: model.MessageTimeout, Total: total, Error: err.Error()})
			return
		}

		select {
		case <-ctx.Done():
			// Host abandoned the call; polling simply stops.
			s.finish(cur.UUID, model.StatusFailed, 0, ctx.Err().Error())
			return
		case <-ticker.C:
		}

		next, err := s.client.GetCrawlRequest(ctx, cur.UUID)
		if err != nil {
			s.finish(cur.UUID, model.StatusFailed, 0, err.Error())
			s.emit(ctx, msgs, model.CrawlMessage{Status: model.MessageFailed, Total: total, Error: err.Error()})
			return
		}
		cur = next
	}
}

// complete fetches the result pages and emits the final message.
func (s *crawlService) complete(ctx context.Context, jobUUID string, total int, msgs chan<- model.CrawlMessage) {
	pages, err := s.client.GetCrawlResults(ctx, jobUUID)
	if err != nil {
		s.finish(jobUUID, model.StatusFailed, 0, err.Error())
		s.emit(ctx, msgs, model.CrawlMessage{Status: model.MessageFailed, Total: total, Error: err.Error()})
		return
	}

	records := make([]model.CrawledPage, len(pages))
	for i, p := range pages {
		records[i] = pageRecord(p)
	}

	s.finish(jobUUID, model.StatusCompleted, len(records), "")
	s.log.Info("crawl completed", zap.String("uuid", jobUUID), zap.Int("pages", len(records)))
	s.emit(ctx, msgs, model.CrawlMessage{
		Status:      model.MessageCompleted,
		Total:       total,
		Completed:   len(records),
		WebInfoList: records,
	})
}

// emit sends unless the host has gone away.
func (s *crawlService) emit(ctx context.Context, msgs chan<- model.CrawlMessage, m model.CrawlMessage) {
	select {
	case msgs <- m:
	case <-ctx.Done():
	}
}

// finish records the terminal state in the history row.
func (s *crawlService) finish(jobUUID, status string, pageCount int, jobErr string) {
	if s.jobs == nil {
		return
	}
	if err := s.jobs.Finish(jobUUID, status, pageCount, jobErr); err != nil {
		s.log.Warn("finish crawl job", zap.String("uuid", jobUUID), zap.Error(err))
	}
}

// pageRecord maps one service result onto the host's record format. Fields
// pass through 1:1; title and description fall back to their og: variants.
func pageRecord(p watercrawl.ResultPage) model.CrawledPage {
	title := p.Result.Metadata.Title
	if title == "" {
		title = p.Result.Metadata.OGTitle
	}
	desc := p.Result.Metadata.Description
	if desc == "" {
		desc = p.Result.Metadata.OGDescription
	}
	return model.CrawledPage{
		SourceURL:   p.URL,
		Title:       title,
		Description: desc,
		Content:     p.Result.Markdown,
	}
}

// spiderOptions translates the host parameters into service spider options.
func spiderOptions(req *model.CrawlRequest) watercrawl.SpiderOptions {
	return watercrawl.SpiderOptions{
		MaxDepth:       req.MaxDepth,
		PageLimit:      req.Limit,
		ExcludePaths:   model.SplitList(req.ExcludePaths),
		IncludePaths:   model.SplitList(req.IncludePaths),
		AllowedDomains: model.SplitList(req.AllowedDomains),
		ProxyServer:    req.ProxyServerSlug,
	}
}

// pageOptions translates the host parameters into service page options.
func pageOptions(req *model.CrawlRequest) (watercrawl.PageOptions, error) {
	headers, err := req.ExtraHeaderMap()
	if err != nil {
		return watercrawl.PageOptions{}, err
	}
	opts := watercrawl.PageOptions{
		OnlyMainContent: req.OnlyMainContent,
		IgnoreRendering: req.IgnoreRendering,
		Locale:          req.Locale,
		ExtraHeaders:    headers,
	}
	if tags := model.SplitList(req.ExcludeTags); len(tags) > 0 {
		opts.ExcludeTags = tags
	}
	if tags := model.SplitList(req.IncludeTags); len(tags) > 0 {
		opts.IncludeTags = tags
	}
	return opts, nil
}
