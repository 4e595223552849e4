package service

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mmynk/billkeeper/internal/models"
	"github.com/mmynk/billkeeper/internal/storage"
)

// BillService handles the bill listing and record operations.
type BillService struct {
	bills  storage.BillStore
	logger *slog.Logger
}

// NewBillService creates a new bill service with the given storage
// backend.
func NewBillService(bills storage.BillStore, logger *slog.Logger) *BillService {
	return &BillService{bills: bills, logger: logger}
}

type billRequest struct {
	GeneratingID   string  `json:"generatingId"`
	FullName       string  `json:"fullName"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Amount         float64 `json:"amount"`
	Time           int64   `json:"time"`
	AddedUserEmail string  `json:"AddedUserEmail"`
}

func (r *billRequest) toModel() *models.Bill {
	return &models.Bill{
		GeneratingID:   r.GeneratingID,
		FullName:       r.FullName,
		Email:          r.Email,
		Phone:          r.Phone,
		Amount:         r.Amount,
		Time:           r.Time,
		AddedUserEmail: r.AddedUserEmail,
	}
}

// pageQuery reads the required page and size query parameters.
// Both must be non-negative integers.
func pageQuery(c echo.Context) (page, size int64, err error) {
	page, err = strconv.ParseInt(c.QueryParam("page"), 10, 64)
	if err != nil || page < 0 {
		return 0, 0, fmt.Errorf("invalid page %q", c.QueryParam("page"))
	}
	size, err = strconv.ParseInt(c.QueryParam("size"), 10, 64)
	if err != nil || size < 0 {
		return 0, 0, fmt.Errorf("invalid size %q", c.QueryParam("size"))
	}
	return page, size, nil
}

// list executes one listing query and writes the page. The unfiltered
// and filtered paths share it: sorting and the full-match count apply
// to both.
func (s *BillService) list(c echo.Context, search string) error {
	page, size, err := pageQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error"})
	}

	result, err := s.bills.ListBills(c.Request().Context(), storage.BillQuery{
		Search: search,
		Page:   page,
		Size:   size,
	})
	if err != nil {
		s.logger.Error("failed to list bills", "search", search, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"count": result.Count, "bills": result.Bills})
}

// List returns one page of all bills, newest first.
func (s *BillService) List(c echo.Context) error {
	return s.list(c, "")
}

// Search returns one page of bills whose full name, email or phone
// contains the search term.
func (s *BillService) Search(c echo.Context) error {
	return s.list(c, c.Param("search"))
}

// Add creates a new bill record. The server assigns the generatingId;
// one supplied by the caller is ignored.
func (s *BillService) Add(c echo.Context) error {
	var req billRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid request body"})
	}

	bill := req.toModel()
	bill.GeneratingID = "" // always freshly assigned by the store

	if err := s.bills.CreateBill(c.Request().Context(), bill); err != nil {
		s.logger.Error("failed to create bill", "fullName", req.FullName, "error", err)
		return c.JSON(http.StatusOK, echo.Map{"success": false, "message": "Can't insert bill"})
	}

	s.logger.Info("bill created", "generatingId", bill.GeneratingID, "addedBy", bill.AddedUserEmail)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": fmt.Sprintf("Success Created %s", bill.FullName),
	})
}

// Update replaces the bill under the given id with the request body.
// An unknown id is a success=false payload, not an error.
func (s *BillService) Update(c echo.Context) error {
	id := c.Param("id")

	var req billRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid request body"})
	}

	matched, err := s.bills.ReplaceBill(c.Request().Context(), id, req.toModel())
	if err != nil {
		if errors.Is(err, storage.ErrInvalidID) {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid bill id"})
		}
		s.logger.Error("failed to update bill", "id", id, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Couldn't update  the Bill"})
	}
	if !matched {
		return c.JSON(http.StatusOK, echo.Map{"success": false, "message": "Couldn't update  the Bill"})
	}

	s.logger.Info("bill updated", "id", id)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": fmt.Sprintf("successfully updated %s", req.FullName),
		"data":    echo.Map{"matchedCount": 1},
	})
}

// Delete removes the bill under the given id. Every path responds,
// including not-found.
func (s *BillService) Delete(c echo.Context) error {
	id := c.Param("id")

	deleted, err := s.bills.DeleteBill(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidID) {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "data": echo.Map{"deletedCount": 0}})
		}
		s.logger.Error("failed to delete bill", "id", id, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "data": echo.Map{"deletedCount": 0}})
	}
	if !deleted {
		return c.JSON(http.StatusOK, echo.Map{"success": false, "data": echo.Map{"deletedCount": 0}})
	}

	s.logger.Info("bill deleted", "id", id)
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"deletedCount": 1}})
}
