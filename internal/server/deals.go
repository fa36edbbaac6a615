package server

import (
	"context"
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/cast"

	"realty_analyzer/internal/domain/entity"
	"realty_analyzer/internal/domain/service/calculator"
	"realty_analyzer/internal/domain/service/deal"
	"realty_analyzer/internal/domain/value"
	"realty_analyzer/pkg/errcodes"
	"realty_analyzer/pkg/httpx/reply"
	"realty_analyzer/pkg/httpx/req"
	"realty_analyzer/pkg/metrics"
	"realty_analyzer/pkg/rest"
)

type dealService interface {
	Save(ctx context.Context, ownerID int64, in deal.SaveInput) (entity.Deal, entity.FinancialReport, error)
	List(ctx context.Context, ownerID int64, limit, offset int) ([]entity.Deal, error)
	Get(ctx context.Context, id value.DealID, ownerID int64) (entity.Deal, error)
	Delete(ctx context.Context, id value.DealID, ownerID int64) error
}

type DealServer struct {
	dealService dealService
}

func NewDealServer(dealService dealService) DealServer {
	return DealServer{
		dealService: dealService,
	}
}

func (s DealServer) postDeal(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	raw, err := req.ReadObject(r)
	if err != nil {
		return fmt.Errorf("req.ReadObject: %w", err)
	}

	params, err := calculator.ParametersFromMap(raw, calculator.DefaultParameters())
	if err != nil {
		return fmt.Errorf("calculator.ParametersFromMap: %w", err)
	}

	saved, report, err := s.dealService.Save(ctx, userID.Int64(), deal.SaveInput{
		Name:     cast.ToString(raw["name"]),
		Location: locationFrom(raw),
		Params:   params,
	})
	if err != nil {
		return fmt.Errorf("dealService.Save: %w", err)
	}

	metrics.IncAnalysis(report.Recommendation.Verdict.String())

	analysis := newRESTAnalysis(report)

	reply.JSON(ctx, w, http.StatusCreated, rest.DealResponse{
		Success:  true,
		Deal:     newRESTDeal(saved),
		Analysis: &analysis,
	})

	return nil
}

func (s DealServer) getDeals(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	limit, err := req.QueryInt(r, "limit", deal.DefaultPageSize)
	if err != nil {
		return fmt.Errorf("req.QueryInt: %w", err)
	}

	offset, err := req.QueryInt(r, "offset", 0)
	if err != nil {
		return fmt.Errorf("req.QueryInt: %w", err)
	}

	deals, err := s.dealService.List(ctx, userID.Int64(), limit, offset)
	if err != nil {
		return fmt.Errorf("dealService.List: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.DealListResponse{
		Success: true,
		Deals:   newRESTDeals(deals),
		Limit:   deal.PageLimit(limit),
		Offset:  offset,
	})

	return nil
}

func (s DealServer) getDeal(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	id, err := dealIDParam(r)
	if err != nil {
		return err
	}

	found, err := s.dealService.Get(ctx, id, userID.Int64())
	if err != nil {
		return fmt.Errorf("dealService.Get: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.DealResponse{
		Success: true,
		Deal:    newRESTDeal(found),
	})

	return nil
}

func (s DealServer) deleteDeal(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	id, err := dealIDParam(r)
	if err != nil {
		return err
	}

	if err = s.dealService.Delete(ctx, id, userID.Int64()); err != nil {
		return fmt.Errorf("dealService.Delete: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.Success{
		Success: true,
		Message: "Deal deleted",
	})

	return nil
}

func dealIDParam(r *http.Request) (value.DealID, error) {
	id, err := value.ParseDealID(chi.URLParam(r, "id"))
	if err != nil {
		return value.DealID{}, failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParseDealID: %w", err),
			failure.WithCode(errcodes.InvalidDealID),
			failure.WithDescription("deal id must be a UUID"),
		)
	}

	return id, nil
}
