package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/shandysiswandi/expensio/internal/pkg/goerror"
)

type ReceiptUploadInput struct {
	ExpenseID   int64 `validate:"required,gt=0"`
	File        io.Reader
	ContentType string
}

type ReceiptUploadOutput struct {
	ExpenseID  int64
	ReceiptKey string
}

// ReceiptUpload attaches a receipt file to the caller's expense. Re-uploading
// replaces the stored key; the previous object is left to bucket lifecycle
// rules.
func (s *Usecase) ReceiptUpload(ctx context.Context, in ReceiptUploadInput) (*ReceiptUploadOutput, error) {
	ctx, span := s.startSpan(ctx, "ReceiptUpload")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}
	if in.File == nil {
		return nil, goerror.NewInvalidFormat("Receipt file is required")
	}

	exp, err := s.repoDB.GetExpenseByID(ctx, in.ExpenseID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Expense not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get expense", "expense_id", in.ExpenseID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if exp.UserID != clm.UserID {
		return nil, goerror.NewBusiness("Expense not found", goerror.CodeNotFound)
	}

	key := "receipts/" + s.uuid.Generate()
	if err := s.repoReceipt.Store(ctx, key, in.File, in.ContentType); err != nil {
		slog.ErrorContext(ctx, "failed to store receipt", "expense_id", exp.ID, "error", err)
		return nil, goerror.NewServerMsg(err, "Failed to store receipt")
	}

	if err := s.repoDB.UpdateExpenseReceipt(ctx, exp.ID, key); err != nil {
		slog.ErrorContext(ctx, "failed to repo update receipt key", "expense_id", exp.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ReceiptUploadOutput{ExpenseID: exp.ID, ReceiptKey: key}, nil
}

type ReceiptURLInput struct {
	ExpenseID int64 `validate:"required,gt=0"`
}

type ReceiptURLOutput struct {
	URL string
}

// ReceiptURL returns a short-lived download link for the receipt.
func (s *Usecase) ReceiptURL(ctx context.Context, in ReceiptURLInput) (*ReceiptURLOutput, error) {
	ctx, span := s.startSpan(ctx, "ReceiptURL")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	exp, err := s.repoDB.GetExpenseByID(ctx, in.ExpenseID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Expense not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get expense", "expense_id", in.ExpenseID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if exp.UserID != clm.UserID && !canModerate(clm.UserRole) {
		return nil, goerror.NewBusiness("Expense not found", goerror.CodeNotFound)
	}

	if exp.ReceiptKey == "" {
		return nil, goerror.NewBusiness("Expense has no receipt", goerror.CodeNotFound)
	}

	expiry := s.cfg.GetMinute("modules.expense.receipt_url_ttl_minutes")
	url, err := s.repoReceipt.SignedURL(ctx, exp.ReceiptKey, expiry)
	if err != nil {
		slog.ErrorContext(ctx, "failed to sign receipt url", "expense_id", exp.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ReceiptURLOutput{URL: url}, nil
}
