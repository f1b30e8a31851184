package http

import (
	"errors"
	"net/http"

	borrowerDomain "trustchain-backend/internal/domain/borrower"
	regionDomain "trustchain-backend/internal/domain/region"
	uc "trustchain-backend/internal/usecase/borrower"
	"trustchain-backend/internal/usecase/scoring"

	"github.com/labstack/echo/v4"
)

type BorrowerHandler struct{ uc *uc.Usecase }

func NewBorrowerHandler(u *uc.Usecase) *BorrowerHandler { return &BorrowerHandler{uc: u} }

type createBorrowerReq struct {
	FirstName  string   `json:"first_name"  validate:"required"`
	LastName   string   `json:"last_name"   validate:"required"`
	Email      *string  `json:"email"       validate:"omitempty,email"`
	Phone      *string  `json:"phone"`
	LoanAmount *float64 `json:"loan_amount" validate:"omitempty,gte=0,dec2"`
	// Accept canonical date `YYYY-MM-DD` (aligns with schema DATE)
	LoanDate string `json:"loan_date" validate:"required,datetime=2006-01-02"`
	Decision string `json:"decision"  validate:"omitempty,oneof=Pending Approved Denied"`

	RegionName *string  `json:"region_name"`
	Latitude   *float64 `json:"latitude"  validate:"omitempty,finite,gte=-90,lte=90"`
	Longitude  *float64 `json:"longitude" validate:"omitempty,finite,gte=-180,lte=180"`

	Features *scoring.FeatureInput `json:"features"`
}

func (h *BorrowerHandler) CreateBorrower(c echo.Context) error {
	var req createBorrowerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Create(c.Request().Context(), uc.CreateBorrowerInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		LoanAmount: req.LoanAmount,
		LoanDate:   req.LoanDate,
		Decision:   req.Decision,
		RegionName: req.RegionName,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Features:   req.Features,
	})
	if err != nil {
		return scoringErrJSON(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *BorrowerHandler) ListBorrowers(c echo.Context) error {
	skip, ok := queryInt(c, "skip", 0)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "skip must be an integer"})
	}
	limit, ok := queryInt(c, "limit", 100)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be an integer"})
	}

	page, err := h.uc.List(c.Request().Context(), skip, limit)
	if err != nil {
		if errors.Is(err, borrowerDomain.ErrInvalidPage) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, page)
}

func (h *BorrowerHandler) GetBorrower(c echo.Context) error {
	borrowerID, ok := pathID(c, "borrower_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "borrower_id must be a positive integer"})
	}
	dto, err := h.uc.Get(c.Request().Context(), borrowerID)
	if err != nil {
		return notFoundOr500(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BorrowerHandler) DeleteBorrower(c echo.Context) error {
	borrowerID, ok := pathID(c, "borrower_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "borrower_id must be a positive integer"})
	}
	if err := h.uc.Delete(c.Request().Context(), borrowerID); err != nil {
		return notFoundOr500(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *BorrowerHandler) ListTransactions(c echo.Context) error {
	borrowerID, ok := pathID(c, "borrower_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "borrower_id must be a positive integer"})
	}
	list, err := h.uc.Transactions(c.Request().Context(), borrowerID)
	if err != nil {
		return notFoundOr500(c, err)
	}
	if list == nil {
		list = []borrowerDomain.Transaction{}
	}
	return c.JSON(http.StatusOK, list)
}

type addTransactionReq struct {
	TransactionDate string  `json:"transaction_date" validate:"required,datetime=2006-01-02"`
	Amount          float64 `json:"amount"           validate:"required,finite,dec2"`
	Type            string  `json:"type"             validate:"required"`
}

func (h *BorrowerHandler) AddTransaction(c echo.Context) error {
	borrowerID, ok := pathID(c, "borrower_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "borrower_id must be a positive integer"})
	}
	var req addTransactionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	t, err := h.uc.AddTransaction(c.Request().Context(), borrowerID, uc.AddTransactionInput(req))
	if err != nil {
		return notFoundOr500(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *BorrowerHandler) ListDocuments(c echo.Context) error {
	borrowerID, ok := pathID(c, "borrower_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "borrower_id must be a positive integer"})
	}
	list, err := h.uc.Documents(c.Request().Context(), borrowerID)
	if err != nil {
		return notFoundOr500(c, err)
	}
	if list == nil {
		list = []borrowerDomain.Document{}
	}
	return c.JSON(http.StatusOK, list)
}

type addDocumentReq struct {
	Name       string `json:"name"        validate:"required"`
	Type       string `json:"type"        validate:"required"`
	UploadDate string `json:"upload_date" validate:"required,datetime=2006-01-02"`
}

func (h *BorrowerHandler) AddDocument(c echo.Context) error {
	borrowerID, ok := pathID(c, "borrower_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "borrower_id must be a positive integer"})
	}
	var req addDocumentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	d, err := h.uc.AddDocument(c.Request().Context(), borrowerID, uc.AddDocumentInput(req))
	if err != nil {
		return notFoundOr500(c, err)
	}
	return c.JSON(http.StatusCreated, d)
}

// notFoundOr500 maps domain not-found sentinels to 404. Everything else
// that reaches a handler is usecase input validation and answers 400
// with the message.
func notFoundOr500(c echo.Context, err error) error {
	switch {
	case errors.Is(err, borrowerDomain.ErrNotFound), errors.Is(err, regionDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
}
