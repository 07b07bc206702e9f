package report

import (
	"context"
	"time"

	"go-shopbook/internal/events"
	"go-shopbook/internal/period"
	reporterrors "go-shopbook/internal/report/errors"
	"go-shopbook/internal/shared/contextutil"
	"go-shopbook/internal/summary"

	"go.uber.org/zap"
)

//go:generate mockgen -source=statement_service.go -destination=mock/statement_service_mock.go -package=mock
type Service interface {
	// Render computes the month from the submitted figures and returns the PDF.
	Render(ctx context.Context, shopID, periodLabel string, req summary.ComputeSummaryRequest) (Statement, error)
	// ArchivePeriod renders the statement carried by a saved period and stores it.
	ArchivePeriod(ctx context.Context, event events.PeriodClosedEvent) (Statement, error)
	GetArchived(ctx context.Context, shopID, periodLabel string) (Statement, error)
}

type service struct {
	summaries summary.Service
	archive   ArchiveRepository
	now       func() time.Time
}

// NewService accepts a nil summaries (consumer) or nil archive (api without
// MongoDB); the operations needing them then fail.
func NewService(summaries summary.Service, archive ArchiveRepository) Service {
	return &service{
		summaries: summaries,
		archive:   archive,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Render(ctx context.Context, shopID, periodLabel string, req summary.ComputeSummaryRequest) (Statement, error) {
	resp, err := s.summaries.Compute(ctx, shopID, periodLabel, req)
	if err != nil {
		return Statement{}, err
	}

	return s.build(resp.ShopID, resp.ShopName, resp.PeriodLabel, resp.Summary)
}

func (s *service) ArchivePeriod(ctx context.Context, event events.PeriodClosedEvent) (Statement, error) {
	if s.archive == nil {
		return Statement{}, reporterrors.ErrArchiveUnavailable
	}

	statement, err := s.build(event.ShopID, event.ShopName, event.PeriodLabel, summary.FromEvent(event))
	if err != nil {
		return Statement{}, err
	}

	if err := s.archive.Save(ctx, statement); err != nil {
		return Statement{}, err
	}

	contextutil.GetLogger(ctx, zap.L()).Info("statement archived",
		zap.String("shop_id", statement.ShopID),
		zap.String("period", statement.PeriodLabel),
		zap.Int("bytes", len(statement.Content)),
	)
	return statement, nil
}

func (s *service) GetArchived(ctx context.Context, shopID, periodLabel string) (Statement, error) {
	if s.archive == nil {
		return Statement{}, reporterrors.ErrArchiveUnavailable
	}

	p, err := period.ParseLabel(periodLabel)
	if err != nil {
		return Statement{}, err
	}

	return s.archive.Find(ctx, shopID, p.Label())
}

func (s *service) build(shopID, shopName, periodLabel string, raw summary.PeriodSummary) (Statement, error) {
	doc, err := FormatReport(shopName, periodLabel, summary.Present(raw))
	if err != nil {
		return Statement{}, err
	}

	content, err := RenderPDF(doc)
	if err != nil {
		return Statement{}, err
	}

	p, err := period.ParseLabel(periodLabel)
	if err != nil {
		return Statement{}, err
	}

	return Statement{
		ShopID:      shopID,
		PeriodLabel: p.Label(),
		FileName:    StatementFileName(shopID, p),
		ContentType: ContentTypePDF,
		Content:     content,
		GeneratedAt: s.now(),
	}, nil
}

// StatementFileName is "<shop id>_<Month>.pdf", e.g. "shop-1_March.pdf".
func StatementFileName(shopID string, p period.Period) string {
	return shopID + "_" + p.Month.String() + ".pdf"
}
