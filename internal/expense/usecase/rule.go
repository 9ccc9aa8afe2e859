package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/expensio/internal/expense/entity"
	"github.com/shandysiswandi/expensio/internal/pkg/goerror"
)

type RuleCreateInput struct {
	Category       string `validate:"required"`
	Currency       string `validate:"required,len=3,alpha"`
	MaxAmountCents int64  `validate:"required,gt=0"`
}

type RuleCreateOutput struct {
	Rule entity.ApprovalRule
}

// RuleCreate installs an auto-approval threshold for a category. One rule per
// category and currency; creating a duplicate is a conflict.
func (s *Usecase) RuleCreate(ctx context.Context, in RuleCreateInput) (*RuleCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "RuleCreate")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	in.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	category := entity.ParseCategory(in.Category)
	if category.IsUnknown() {
		return nil, goerror.NewInvalidInput(nil, "category", "is not a recognized expense category")
	}

	rule := entity.NewApprovalRule{
		ID:             s.uid.Generate(),
		Category:       category,
		Currency:       in.Currency,
		MaxAmountCents: in.MaxAmountCents,
		CreatedBy:      clm.UserID,
	}

	if err := s.repoDB.CreateApprovalRule(ctx, rule); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return nil, goerror.NewBusiness("An approval rule for this category already exists", goerror.CodeConflict)
		}

		slog.ErrorContext(ctx, "failed to repo create approval rule", "category", category, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &RuleCreateOutput{Rule: entity.ApprovalRule{
		ID:             rule.ID,
		Category:       rule.Category,
		Currency:       rule.Currency,
		MaxAmountCents: rule.MaxAmountCents,
		CreatedBy:      rule.CreatedBy,
	}}, nil
}

type RuleListOutput struct {
	Rules []entity.ApprovalRule
}

func (s *Usecase) RuleList(ctx context.Context) (*RuleListOutput, error) {
	ctx, span := s.startSpan(ctx, "RuleList")
	defer span.End()

	if _, err := s.authenticated(ctx); err != nil {
		return nil, err
	}

	rules, err := s.repoDB.GetApprovalRuleList(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list approval rules", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &RuleListOutput{Rules: rules}, nil
}

type RuleDeleteInput struct {
	RuleID int64 `validate:"required,gt=0"`
}

func (s *Usecase) RuleDelete(ctx context.Context, in RuleDeleteInput) error {
	ctx, span := s.startSpan(ctx, "RuleDelete")
	defer span.End()

	if _, err := s.authenticated(ctx); err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoDB.DeleteApprovalRule(ctx, in.RuleID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("Approval rule not found", goerror.CodeNotFound)
		}

		slog.ErrorContext(ctx, "failed to repo delete approval rule", "rule_id", in.RuleID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
